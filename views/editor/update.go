// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package editorview

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-4, 10)
		return nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			m.saved = m.input.Value()
			m.sys().Toasts.Show("Saved")
			return nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
