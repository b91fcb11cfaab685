// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package toaststrip renders live toasts as a column of one-line badges,
// newest at the bottom.
package toaststrip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valesdev/partita/overlays/toast"
	"github.com/valesdev/partita/ui"
)

var style = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// Render returns "" when there is nothing to show. frame advances the
// marker glyph.
func Render(items []toast.Item, frame, width int) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, it := range items {
		text := it.Content
		if it.Component != nil {
			text = "[" + it.Component.Name + "] " + text
		}
		badge := style.MaxWidth(width).Render(ui.SpinnerCharAt(frame+i) + " " + text)
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, badge)
	}
	return strings.Join(lines, "\n")
}
