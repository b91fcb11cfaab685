// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package homeview is the demo menu. Each entry exercises one partita
// service.
package homeview

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/views/helpbar"
	"github.com/valesdev/partita/views/view"
)

// Name is the component name the home screen registers under.
const Name = "home"

// SheetStack is the overlay stack opened by the "sheet" entry.
const SheetStack = "sheet"

type Model struct {
	view.NopHooks

	list list.Model
	sys  func() *partita.System
}

type entry struct {
	id, title, desc string
}

func (e entry) Title() string       { return e.title }
func (e entry) Description() string { return e.desc }
func (e entry) FilterValue() string { return e.title }

var entries = []list.Item{
	entry{"detail", "Detail", "Push a detail screen on the current stack"},
	entry{"editor", "Editor", "Push an editor that refuses to close while dirty"},
	entry{"sheet", "Sheet", "Open a second stack on top of main"},
	entry{"toast", "Toast", "Show a message that hides itself"},
	entry{"alert", "Alert", "Show a cancelable dialog"},
	entry{"confirm", "Confirm", "Ask a yes/no question"},
	entry{"loading", "Loading", "Show the busy indicator for a moment"},
}

// New builds the menu. sys is read on every action since the screen is
// registered before the System exists.
func New(width, height int, sys func() *partita.System) *Model {
	l := list.New(entries, list.NewDefaultDelegate(), width, height)
	l.Title = "partita"
	l.SetShowHelp(false)
	return &Model{list: l, sys: sys}
}

// Factory returns the component factory for the home screen.
func Factory(sys func() *partita.System) view.Factory {
	return func(ctx view.Context, _ view.Params) (view.View, tea.Cmd) {
		return New(ctx.Width, ctx.Height, sys), nil
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return Name }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "↑/↓", Desc: "move"},
		{Key: "enter", Desc: "open"},
		{Key: "/", Desc: "filter"},
	}
}
