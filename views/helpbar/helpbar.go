// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp    []HelpEntry
	viewHelp      []HelpEntry
	width         int
	rowsPerColumn int
	minColWidth   int
}

const (
	defaultMinColWidth   = 20
	defaultRowsPerColumn = 3
)

func New(width int) *Model {
	return &Model{
		globalHelp:    []HelpEntry{{Key: "esc", Desc: "back"}, {Key: ":", Desc: "command"}},
		width:         width,
		rowsPerColumn: defaultRowsPerColumn,
		minColWidth:   defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

func (m *Model) SetRowsPerColumn(rows int) *Model {
	if rows > 0 {
		m.rowsPerColumn = rows
	}
	return m
}

// View renders the status block on the left and the help columns next to it.
func (m *Model) View(status string) string {
	allHelp := append(append([]HelpEntry{}, m.globalHelp...), m.viewHelp...)
	if len(allHelp) == 0 {
		return status
	}

	statusWidth := lipgloss.Width(status)
	availableWidth := m.width - statusWidth - 2
	if availableWidth < m.minColWidth {
		return status
	}

	numCols := (len(allHelp) + m.rowsPerColumn - 1) / m.rowsPerColumn
	maxCols := availableWidth / m.minColWidth
	if maxCols < 1 {
		maxCols = 1
	}
	if numCols > maxCols {
		numCols = maxCols
	}

	// Columns are filled top-to-bottom; entries that do not fit are dropped.
	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / m.rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			if w := lipgloss.Width("<" + entry.Key + ">"); w > maxKeyLen {
				maxKeyLen = w
			}
		}

		var lines []string
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, keyStyle.Render(keyText)+strings.Repeat(" ", padding+2)+entry.Desc)
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)
	helpAligned := Style.
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(helpBlock)

	if status == "" {
		return helpAligned
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", helpAligned)
}
