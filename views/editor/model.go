// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package editorview is a one-line editor that vetoes its own removal
// while it holds unsaved text.
package editorview

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/views/helpbar"
	"github.com/valesdev/partita/views/view"
)

const Name = "editor"

type Model struct {
	view.NopHooks

	input  textinput.Model
	saved  string
	asking bool
	sys    func() *partita.System
}

func New(width int, initial string, sys func() *partita.System) *Model {
	ti := textinput.New()
	ti.Placeholder = "type something, enter saves"
	ti.Prompt = "> "
	ti.Width = max(width-4, 10)
	ti.SetValue(initial)
	ti.Focus()
	return &Model{input: ti, saved: initial, sys: sys}
}

func Factory(sys func() *partita.System) view.Factory {
	return func(ctx view.Context, params view.Params) (view.View, tea.Cmd) {
		return New(ctx.Width, params.String("text"), sys), nil
	}
}

// Dirty reports whether the text differs from the last save.
func (m *Model) Dirty() bool { return m.input.Value() != m.saved }

// OnDestroy keeps the editor while it is dirty and asks whether to
// discard. Discarding pops the editor again.
func (m *Model) OnDestroy(e view.Event) view.Decision {
	if !m.Dirty() {
		return view.Proceed
	}
	if m.asking {
		return view.Veto
	}
	m.asking = true
	sys := m.sys()
	sys.Dialogs.Confirm("Discard unsaved changes?", "Editor", dialog.WithCallback(func(r dialog.Result) {
		m.asking = false
		if r.Value != true {
			return
		}
		m.saved = m.input.Value()
		sys.Views.Pop(e.Stack, 1)
	}))
	return view.Veto
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Name() string { return Name }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "save"},
	}
}
