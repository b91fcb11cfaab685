// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	"github.com/valesdev/partita/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
)

// HookType discriminates lifecycle notifications.
type HookType int

const (
	HookCreate HookType = iota
	HookShow
	HookHide
	HookDestroy
)

func (h HookType) String() string {
	switch h {
	case HookCreate:
		return "create"
	case HookShow:
		return "show"
	case HookHide:
		return "hide"
	case HookDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Event is delivered with every hook invocation.
type Event struct {
	Type  HookType
	Stack string
	Key   string
}

// Decision is returned from OnDestroy.
type Decision int

const (
	// Proceed lets the engine remove the screen.
	Proceed Decision = iota
	// Veto keeps the screen (and every other screen of the same pop) in place.
	Veto
)

func (d Decision) String() string {
	if d == Veto {
		return "veto"
	}
	return "proceed"
}

// Hooks receives lifecycle notifications for a mounted screen.
type Hooks interface {
	OnCreate(e Event)
	OnShow(e Event)
	OnHide(e Event)
	OnDestroy(e Event) Decision
}

// View is a screen instance as mounted by the bubbletea host.
type View interface {
	Hooks
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string
	ShortHelpItems() []helpbar.HelpEntry
}

// NopHooks can be embedded by screens that ignore some lifecycle hooks.
type NopHooks struct{}

func (NopHooks) OnCreate(Event)           {}
func (NopHooks) OnShow(Event)             {}
func (NopHooks) OnHide(Event)             {}
func (NopHooks) OnDestroy(Event) Decision { return Proceed }
