// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package dialogbox renders the top dialog of the queue.
package dialogbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/ui"
)

const maxWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("250"))

	highlightedStyle = buttonStyle.
				Foreground(lipgloss.Color("39")).
				Bold(true)

	focusedStyle = buttonStyle.
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("63")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ButtonZone is the mouse zone id of the button at index i.
func ButtonZone(i int) string {
	return fmt.Sprintf("partita-dialog-button-%d", i)
}

// Render draws item with the focused button inverted. A custom component
// is named in the footer since its rendering belongs to the host. When
// zones is set every button is marked with its ButtonZone.
func Render(item dialog.Item, focused int, zones *zone.Manager) string {
	var lines []string
	if item.Title != "" {
		lines = append(lines, titleStyle.Render(item.Title), "")
	}
	if item.Content != "" {
		lines = append(lines, ui.WrapText(item.Content, maxWidth)...)
	}
	if item.Component != nil {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("[%s]", item.Component.Name)))
	}

	if len(item.Buttons) > 0 {
		lines = append(lines, "", renderButtons(item.Buttons, focused, zones))
	}

	help := "←/→ select · enter confirm"
	if item.Cancelable {
		help += " · esc cancel"
	}
	lines = append(lines, "", helpStyle.Render(help))

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderButtons(buttons []dialog.Button, focused int, zones *zone.Manager) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		label := "[ " + b.Label + " ]"
		switch {
		case i == focused:
			parts[i] = focusedStyle.Render(label)
		case b.Highlighted:
			parts[i] = highlightedStyle.Render(label)
		default:
			parts[i] = buttonStyle.Render(label)
		}
		if zones != nil {
			parts[i] = zones.Mark(ButtonZone(i), parts[i])
		}
	}
	return strings.Join(parts, " ")
}

// DefaultFocus returns the index of the first highlighted button, or 0.
func DefaultFocus(item dialog.Item) int {
	for i, b := range item.Buttons {
		if b.Highlighted {
			return i
		}
	}
	return 0
}
