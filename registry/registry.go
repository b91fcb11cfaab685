// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package registry holds the commands available in the ":" bar.
package registry

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/args"
)

// Context is what a command operates on.
type Context struct {
	System *partita.System
}

type Command interface {
	Name() string
	Description() string
	// Usage is the argument synopsis shown by help, e.g. "<component> [--stack=name]".
	Usage() string
	Execute(ctx Context, a args.Args) (tea.Cmd, error)
}

var commands = map[string]Command{}

// Register adds cmd, replacing any command of the same name.
func Register(cmd Command) {
	commands[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// All returns every command sorted by name.
func All() []Command {
	out := make([]Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Command) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// Suggest returns the sorted command names starting with prefix.
func Suggest(prefix string) []string {
	var out []string
	for name := range commands {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
