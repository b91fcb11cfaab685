// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package homeview

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/view"
)

// loadingFor is how long the loading entry keeps the indicator up.
var loadingFor = 1500 * time.Millisecond

const loadingContent = "Working…"

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if msg.String() == "enter" && m.list.FilterState() != list.Filtering {
			if e, ok := m.list.SelectedItem().(entry); ok {
				return m.activate(e.id)
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) activate(id string) tea.Cmd {
	sys := m.sys()
	switch id {
	case "detail":
		return navigate("detail", view.Params{"title": "Detail"})
	case "editor":
		return navigate("editor", nil)
	case "sheet":
		sys.Views.RegisterStack(SheetStack)
		if err := sys.Views.Push(SheetStack, "detail", view.Params{"title": "Sheet"}); err != nil {
			sys.Toasts.Show(err.Error())
			return nil
		}
		sys.Views.Show(SheetStack)
	case "toast":
		sys.Toasts.Show("Hello from home")
	case "alert":
		sys.Dialogs.Alert("Dialogs queue up. Esc or enter closes this one.", "Alert")
	case "confirm":
		sys.Dialogs.Confirm("Show a toast?", "Confirm", dialog.WithCallback(func(r dialog.Result) {
			if r.Value == true {
				sys.Toasts.Show("You said yes")
			}
		}))
	case "loading":
		sys.Loading.Show(loadingContent)
		return tea.Tick(loadingFor, func(time.Time) tea.Msg {
			return scheduler.CallMsg{Fn: func() { sys.Loading.HideContent(loadingContent) }}
		})
	}
	return nil
}

func navigate(name string, params view.Params) tea.Cmd {
	return func() tea.Msg {
		return view.NavigateToMsg{ViewName: name, Payload: params}
	}
}
