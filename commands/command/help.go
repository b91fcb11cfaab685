// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/args"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/views/view"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }
func (Help) Usage() string       { return "" }

func (Help) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	return func() tea.Msg {
		return view.NavigateToMsg{ViewName: view.NameHelp}
	}, nil
}

func init() {
	register(Help{}, "?")
}
