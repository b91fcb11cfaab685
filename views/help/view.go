// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview

import (
	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00d7ff"))

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Available Commands"),
		"",
		m.viewport.View(),
	)
}
