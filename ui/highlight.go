// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

// Highlight styles every case-insensitive occurrence of term in text.
func Highlight(text, term string) string {
	matches := FindAllMatches(text, term)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		b.WriteString(text[last:idx])
		b.WriteString(highlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindAllMatches returns the byte offsets of the non-overlapping
// case-insensitive occurrences of term in text.
func FindAllMatches(text, term string) []int {
	if term == "" || len(term) > len(text) {
		return nil
	}
	var matches []int
	lower, needle := strings.ToLower(text), strings.ToLower(term)
	// Lowering may change byte lengths; fall back to exact matching then.
	if len(lower) != len(text) || len(needle) != len(term) {
		lower, needle = text, term
	}
	for idx := 0; ; {
		i := strings.Index(lower[idx:], needle)
		if i == -1 {
			return matches
		}
		matches = append(matches, idx+i)
		idx += i + len(needle)
	}
}
