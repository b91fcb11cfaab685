// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package detailview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/views/view"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return m.open(m.depth+1, false)
		case "r":
			return m.open(m.depth, true)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// open navigates to a new detail on the same stack as this one.
func (m *Model) open(depth int, replace bool) tea.Cmd {
	params := view.Params{"title": m.params.String("title"), "depth": depth}
	return func() tea.Msg {
		return view.NavigateToMsg{ViewName: Name, Payload: params, Replace: replace}
	}
}
