// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the command input bar (like in k9s).
type Model struct {
	input    textinput.Model
	visible  bool
	history  []string
	histPos  int
	errorMsg string

	suggest     func(prefix string) []string
	suggestions []string
	selected    int
}

// New creates a new command input model. suggest may be nil.
func New(suggest func(prefix string) []string) *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256

	return &Model{
		input:   ti,
		suggest: suggest,
	}
}

// Visible returns true if the command bar is visible.
func (m *Model) Visible() bool { return m.visible }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.input.Reset()
	m.refreshSuggestions()
	return m.input.Focus()
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.visible = false
	m.errorMsg = ""
	m.suggestions = nil
	m.input.Blur()
	m.input.Reset()
}

// ShowError displays an error message (without losing focus).
func (m *Model) ShowError(msg string) {
	m.errorMsg = msg
	m.visible = true
	m.input.Focus()
}

// Error returns the message shown under the input, if any.
func (m *Model) Error() string { return m.errorMsg }

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) refreshSuggestions() {
	m.suggestions = nil
	m.selected = 0
	if m.suggest == nil {
		return
	}
	val := strings.TrimLeft(m.input.Value(), " ")
	if val == "" {
		return
	}
	m.suggestions = m.suggest(val)
}
