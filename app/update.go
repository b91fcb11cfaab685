// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/backdispatch"
	"github.com/valesdev/partita/commands/api"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/ui/components/dialogbox"
	"github.com/valesdev/partita/views/commandinput"
	"github.com/valesdev/partita/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncFocus()
	// Mounts and scheduled work from this message are flushed last.
	return m, tea.Batch(cmd, m.host.Cmd(), m.sched.Cmd())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scheduler.FlushMsg, scheduler.TimerMsg, scheduler.CallMsg:
		m.sched.Handle(msg)
		return nil

	case tea.WindowSizeMsg:
		return m.resize(msg)

	case spinner.TickMsg:
		if msg.ID == m.loading.ID() {
			m.frame++
			return m.loading.Update(msg)
		}
		return m.delegate(msg)

	case commandinput.SubmitMsg:
		return m.execute(msg.Command)

	case view.NavigateToMsg:
		m.navigate(msg)
		return nil

	case view.NavigateBackMsg:
		return m.back()

	case view.PopMsg:
		steps := msg.Steps
		if steps < 1 {
			steps = 1
		}
		m.sys.Views.Pop(msg.Stack, steps)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	default:
		return m.delegate(msg)
	}
}

func (m *Model) delegate(msg tea.Msg) tea.Cmd {
	v := m.topView()
	if v == nil {
		return nil
	}
	return v.Update(msg)
}

func (m *Model) resize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.viewport.Width = max(msg.Width-4, 0)
	m.viewport.Height = max(msg.Height-chromeHeight, 0)
	return m.host.Resize(m.viewport.Width, m.viewport.Height)
}

func (m *Model) execute(raw string) tea.Cmd {
	cmd, parsed, err := api.ParseInput(raw)
	if err != nil {
		m.commandInput.ShowError(err.Error())
		return nil
	}
	out, err := cmd.Execute(registry.Context{System: m.sys}, parsed)
	if err != nil {
		l().Debugw("command failed", "command", cmd.Name(), "args", parsed.String(), "error", err)
		m.commandInput.ShowError(err.Error())
		return nil
	}
	return out
}

func (m *Model) navigate(msg view.NavigateToMsg) {
	var err error
	if msg.Replace {
		err = m.sys.Views.Replace(msg.Stack, msg.ViewName, msg.Payload)
	} else {
		err = m.sys.Views.Push(msg.Stack, msg.ViewName, msg.Payload)
	}
	if err != nil {
		l().Warnw("navigation failed", "error", err)
		m.sys.Toasts.Show(err.Error())
	}
}

// back runs the back chain. Nothing handling it means the user wants out.
func (m *Model) back() tea.Cmd {
	if m.sys.HandleBack() == backdispatch.NotConsumed {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	// If command input is visible, forward all keys to it exclusively
	if m.commandInput.Visible() {
		return m.commandInput.Update(msg)
	}

	m.syncFocus()
	if top, ok := m.sys.Dialogs.Top(); ok {
		return m.handleDialogKey(top.Key, len(top.Buttons), msg)
	}

	switch msg.String() {
	case ":":
		return m.commandInput.Show()
	case "esc":
		return m.back()
	}
	return m.delegate(msg)
}

// handleDialogKey gives the top dialog every key. Screens underneath
// never see input while a dialog is up.
func (m *Model) handleDialogKey(key string, buttons int, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h", "shift+tab":
		if buttons > 0 {
			m.focus = (m.focus - 1 + buttons) % buttons
		}
	case "right", "l", "tab":
		if buttons > 0 {
			m.focus = (m.focus + 1) % buttons
		}
	case "enter", " ":
		m.sys.Dialogs.Choose(key, m.focus)
	case "esc":
		return m.back()
	}
	return nil
}

// handleMouse chooses a dialog button on left click. Without a dialog the
// event goes to the top screen.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	top, ok := m.sys.Dialogs.Top()
	if !ok {
		return m.delegate(msg)
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for i := range top.Buttons {
		if z := m.zones.Get(dialogbox.ButtonZone(i)); z != nil && z.InBounds(msg) {
			m.sys.Dialogs.Choose(top.Key, i)
			return nil
		}
	}
	return nil
}

// syncFocus moves focus to the default button whenever a different
// dialog reaches the top.
func (m *Model) syncFocus() {
	top, ok := m.sys.Dialogs.Top()
	if !ok {
		m.dialogKey = ""
		return
	}
	if top.Key != m.dialogKey {
		m.dialogKey = top.Key
		m.focus = dialogbox.DefaultFocus(top)
	}
}
