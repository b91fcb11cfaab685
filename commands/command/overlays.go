// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/args"
	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/overlays/loading"
	"github.com/valesdev/partita/overlays/toast"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/views/view"
)

type Toast struct{}

func (Toast) Name() string        { return "toast" }
func (Toast) Description() string { return "Show a transient message" }
func (Toast) Usage() string       { return "<text...> [--timeout=2s]" }

func (Toast) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	text := a.Text(0)
	if text == "" {
		return nil, errors.New("usage: toast <text...>")
	}
	d, err := a.Duration("timeout")
	if err != nil {
		return nil, err
	}
	ctx.System.Toasts.Show(text, toast.WithTimeout(d))
	return nil, nil
}

type Alert struct{}

func (Alert) Name() string        { return "alert" }
func (Alert) Description() string { return "Show a dialog with a single OK button" }
func (Alert) Usage() string       { return "<text...> [--title=text]" }

func (Alert) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	ctx.System.Dialogs.Alert(a.Text(0), a.Get("title"))
	return nil, nil
}

type Confirm struct{}

func (Confirm) Name() string        { return "confirm" }
func (Confirm) Description() string { return "Ask a yes/no question and toast the answer" }
func (Confirm) Usage() string       { return "<text...> [--title=text]" }

func (Confirm) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	sys := ctx.System
	sys.Dialogs.Confirm(a.Text(0), a.Get("title"), dialog.WithCallback(func(r dialog.Result) {
		if r.Cancelled {
			sys.Toasts.Show("confirm: cancelled")
			return
		}
		sys.Toasts.Show(fmt.Sprintf("confirm: %v", r.Value))
	}))
	return nil, nil
}

type Loading struct{}

func (Loading) Name() string        { return "loading" }
func (Loading) Description() string { return "Push a loading indicator" }
func (Loading) Usage() string       { return "[text...] [--component=name]" }

func (Loading) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	var opts []loading.ShowOption
	if c := a.Get("component"); c != "" {
		opts = append(opts, loading.WithComponent(view.Descriptor{Name: c}))
	}
	ctx.System.Loading.Show(a.Text(0), opts...)
	return nil, nil
}

type LoadingDone struct{}

func (LoadingDone) Name() string        { return "loading done" }
func (LoadingDone) Description() string { return "Hide the last indicator, or the one showing text" }
func (LoadingDone) Usage() string       { return "[text...]" }

func (LoadingDone) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if text := a.Text(0); text != "" {
		if !ctx.System.Loading.HideContent(text) {
			return nil, fmt.Errorf("no loading indicator shows %q", text)
		}
		return nil, nil
	}
	ctx.System.Loading.Hide()
	return nil, nil
}

type Back struct{}

func (Back) Name() string        { return "back" }
func (Back) Description() string { return "Press the back button" }
func (Back) Usage() string       { return "" }

func (Back) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	return func() tea.Msg { return view.NavigateBackMsg{} }, nil
}

func init() {
	register(Toast{})
	register(Alert{})
	register(Confirm{})
	register(Loading{})
	register(LoadingDone{}, "done")
	register(Back{})
}
