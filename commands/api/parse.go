// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"strings"

	"github.com/valesdev/partita/args"
	"github.com/valesdev/partita/registry"
)

// ParseInput takes a full input string like:
// "stack show sheet --verbose --steps=2"
// It returns the matching Command and parsed Args.
func ParseInput(input string) (registry.Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	// Find longest matching command name
	for i := len(parts); i > 0; i-- {
		if c, found := registry.Get(strings.Join(parts[:i], " ")); found {
			return c, parseArgs(parts[i:]), nil
		}
	}
	return nil, args.Args{}, ErrUnknownCommand(input)
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	a := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") && len(p) > 2 {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				a.Flags[p[:eq]] = p[eq+1:]
			} else {
				a.Flags[p] = "true"
			}
		} else {
			a.Positionals = append(a.Positionals, p)
		}
	}

	return a
}
