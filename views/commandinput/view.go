// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valesdev/partita/ui"
)

var (
	cmdBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Padding(0, 1)
)

// View renders the command bar and optional error message.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	view := cmdBarStyle.Render(m.input.View())

	if m.errorMsg != "" {
		view += "\n" + errStyle.Render(m.errorMsg)
	} else if len(m.suggestions) > 0 {
		typed := strings.TrimSpace(m.input.Value())
		parts := make([]string, len(m.suggestions))
		for i, sug := range m.suggestions {
			parts[i] = ui.Highlight(sug, typed)
		}
		view += "\n" + suggestionStyle.Render("tab: "+strings.Join(parts, "  "))
	}

	return view
}
