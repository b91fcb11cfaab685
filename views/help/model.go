// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/views/helpbar"
	"github.com/valesdev/partita/views/view"
)

type Model struct {
	view.NopHooks

	viewport viewport.Model
	commands []CommandInfo
}

type CommandInfo struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists the registered commands.
func Commands() []CommandInfo {
	var out []CommandInfo
	for _, c := range registry.All() {
		out = append(out, CommandInfo{Name: c.Name(), Usage: c.Usage(), Description: c.Description()})
	}
	return out
}

func New(width, height int, cmds []CommandInfo) *Model {
	vp := viewport.New(width, height)
	m := &Model{viewport: vp, commands: cmds}
	vp.SetContent(m.render())
	m.viewport = vp
	return m
}

// Factory mounts the help screen listing the registered commands.
func Factory(ctx view.Context, _ view.Params) (view.View, tea.Cmd) {
	return New(ctx.Width, ctx.Height, Commands()), nil
}

func (m *Model) render() string {
	var b strings.Builder
	for _, c := range m.commands {
		name := c.Name
		if c.Usage != "" {
			name += " " + c.Usage
		}
		fmt.Fprintf(&b, ":%-40s %s\n", name, c.Description)
	}
	return b.String()
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string {
	return view.NameHelp
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "↑/↓", Desc: "scroll"},
	}
}
