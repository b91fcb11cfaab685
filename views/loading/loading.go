// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package loadingview paints the current loading indicator over the body.
package loadingview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valesdev/partita/overlays/loading"
	"github.com/valesdev/partita/ui"
)

type Model struct {
	spinner spinner.Model
}

func New() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.FrameBorderColor)
	return &Model{spinner: s}
}

// Init starts the spinner. It keeps ticking for the life of the program.
func (m *Model) Init() tea.Cmd { return m.spinner.Tick }

// ID identifies the spinner's tick messages.
func (m *Model) ID() int { return m.spinner.ID() }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// View renders item as a small frame. depth > 1 is shown in the title.
func (m *Model) View(item loading.Item, depth int) string {
	title := "Loading"
	if depth > 1 {
		title = fmt.Sprintf("Loading (%d)", depth)
	}
	msg := item.Content
	if msg == "" {
		msg = "Please wait..."
	}
	if item.Component != nil {
		msg = fmt.Sprintf("%s [%s]", msg, item.Component.Name)
	}
	content := strings.TrimSpace(fmt.Sprintf("%s %s", m.spinner.View(), msg))
	return ui.RenderFramedBox(title, content, 0)
}
