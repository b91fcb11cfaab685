// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameBorderColor = lipgloss.Color("117")

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	FaintStyle = lipgloss.NewStyle().Faint(true)

	// Rainbow colors consecutive crumbs of the stack bar.
	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("230")),
		lipgloss.NewStyle().Background(lipgloss.Color("69")).Foreground(lipgloss.Color("230")),
		lipgloss.NewStyle().Background(lipgloss.Color("75")).Foreground(lipgloss.Color("235")),
		lipgloss.NewStyle().Background(lipgloss.Color("81")).Foreground(lipgloss.Color("235")),
		lipgloss.NewStyle().Background(lipgloss.Color("87")).Foreground(lipgloss.Color("235")),
	}
)

// RenderFramedBox draws a rounded frame with a centered title around
// content. A width <= 0 fits the frame to the content. ANSI sequences in
// content are preserved.
func RenderFramedBox(title, content string, width int) string {
	lines := strings.Split(content, "\n")
	if width <= 0 {
		for _, l := range lines {
			if w := lipgloss.Width(l) + 4; w > width {
				width = w
			}
		}
	}
	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	border := lipgloss.NewStyle().Foreground(FrameBorderColor)
	titled := ""
	if title != "" {
		titled = FrameTitleStyle.Render(" " + title + " ")
	}
	left := max((inner-lipgloss.Width(titled))/2, 0)
	right := max(inner-left-lipgloss.Width(titled), 0)

	out := make([]string, 0, len(lines)+2)
	out = append(out, fmt.Sprintf("%s%s%s%s%s",
		border.Render("╭"),
		border.Render(strings.Repeat("─", left)),
		titled,
		border.Render(strings.Repeat("─", right)),
		border.Render("╮"),
	))
	for _, l := range lines {
		out = append(out, border.Render("│")+padLine(l, inner)+border.Render("│"))
	}
	out = append(out, border.Render("╰")+border.Render(strings.Repeat("─", inner))+border.Render("╯"))
	return strings.Join(out, "\n")
}

// padLine fits a line to width, preserving ANSI sequences.
func padLine(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// OverlayCentered paints overlay over the middle rows of base. Covered
// rows are replaced entirely so ANSI sequences of base are never split.
func OverlayCentered(base, overlay string, width int) string {
	if overlay == "" {
		return base
	}
	canvas := strings.Split(base, "\n")
	rows := strings.Split(overlay, "\n")

	if width <= 0 {
		for _, l := range canvas {
			width = max(width, lipgloss.Width(l))
		}
	}
	for len(canvas) < len(rows) {
		canvas = append(canvas, "")
	}

	start := (len(canvas) - len(rows)) / 2
	for i, row := range rows {
		pad := max((width-lipgloss.Width(row))/2, 0)
		canvas[start+i] = padLine(strings.Repeat(" ", pad)+row, width)
	}
	return strings.Join(canvas, "\n")
}

// Crumb is one entry of the stack bar.
type Crumb struct {
	Label  string
	Active bool
}

// StackBar renders crumbs joined by arrows. Inactive crumbs are faint.
func StackBar(crumbs []Crumb) string {
	var parts []string
	for i, c := range crumbs {
		if i > 0 {
			parts = append(parts, FaintStyle.Render(" → "))
		}
		label := fmt.Sprintf(" %s ", c.Label)
		if c.Active {
			parts = append(parts, Rainbow[i%len(Rainbow)].Render(label))
		} else {
			parts = append(parts, FaintStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

// WrapText breaks text on word boundaries so no line exceeds width.
// Words longer than width are split.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}
