// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package detailview shows its parameters and the lifecycle hooks it has
// received.
package detailview

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/views/helpbar"
	"github.com/valesdev/partita/views/view"
)

const Name = "detail"

type Model struct {
	viewport    viewport.Model
	params      view.Params
	fingerprint string
	depth       int
	events      []string
}

func New(width, height int, params view.Params, fingerprint string) *Model {
	depth, _ := params["depth"].(int)
	m := &Model{viewport: viewport.New(width, height), params: params, fingerprint: fingerprint, depth: depth}
	m.refresh()
	return m
}

func Factory(ctx view.Context, params view.Params) (view.View, tea.Cmd) {
	return New(ctx.Width, ctx.Height, params, ctx.Fingerprint), nil
}

func (m *Model) OnCreate(e view.Event) { m.record(e) }
func (m *Model) OnShow(e view.Event)   { m.record(e) }
func (m *Model) OnHide(e view.Event)   { m.record(e) }

func (m *Model) OnDestroy(e view.Event) view.Decision {
	m.record(e)
	return view.Proceed
}

func (m *Model) record(e view.Event) {
	m.events = append(m.events, fmt.Sprintf("%s on %s (%s)", e.Type, e.Stack, e.Key))
	m.refresh()
}

// Events lists the hooks received so far, oldest first.
func (m *Model) Events() []string { return slices.Clone(m.events) }

func (m *Model) refresh() {
	var b strings.Builder
	title := m.params.String("title")
	if title == "" {
		title = "Detail"
	}
	fmt.Fprintf(&b, "%s (depth %d)\n\n", title, m.depth)

	if m.fingerprint != "" {
		fmt.Fprintf(&b, "Fingerprint: %s\n", m.fingerprint)
	}
	b.WriteString("Params:\n")
	if len(m.params) == 0 {
		b.WriteString("  none\n")
	}
	for _, k := range slices.Sorted(maps.Keys(m.params)) {
		fmt.Fprintf(&b, "  %s = %v\n", k, m.params[k])
	}

	b.WriteString("\nLifecycle:\n")
	for _, e := range m.events {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	m.viewport.SetContent(b.String())
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return Name }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "p", Desc: "push deeper"},
		{Key: "r", Desc: "replace"},
		{Key: "↑/↓", Desc: "scroll"},
	}
}
