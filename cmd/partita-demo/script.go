// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/backdispatch"
	"github.com/valesdev/partita/config"
	"github.com/valesdev/partita/overlays/toast"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/view"
	"github.com/valesdev/partita/views/viewstack"
)

// headless screens exist only as hook printers.
func headless(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

// printHost mounts a hook printer for every screen.
type printHost struct {
	out     io.Writer
	mounted map[string]view.Hooks
}

type printHooks struct {
	out  io.Writer
	name string
}

func (h printHooks) print(e view.Event) {
	fmt.Fprintf(h.out, "  %-7s %s on %s\n", e.Type, h.name, e.Stack)
}

func (h printHooks) OnCreate(e view.Event) { h.print(e) }
func (h printHooks) OnShow(e view.Event)   { h.print(e) }
func (h printHooks) OnHide(e view.Event)   { h.print(e) }
func (h printHooks) OnDestroy(e view.Event) view.Decision {
	h.print(e)
	return view.Proceed
}

func (p *printHost) Mount(_ string, sc *viewstack.Screen) {
	p.mounted[sc.Key] = printHooks{out: p.out, name: sc.Name}
}

func (p *printHost) Unmount(_ string, sc *viewstack.Screen) {
	delete(p.mounted, sc.Key)
}

func (p *printHost) Lookup(key string) (view.Hooks, bool) {
	h, ok := p.mounted[key]
	return h, ok
}

// runScript drives a System from a second goroutine through a Loop and
// prints what happens. It returns when the script is done or ctx ends.
func runScript(ctx context.Context, out io.Writer, opts *config.Options) error {
	loop := scheduler.NewLoop()
	reg := components.New()
	for _, name := range []string{"home", "detail", "settings"} {
		reg.Register(name, headless)
	}
	host := &printHost{out: out, mounted: map[string]view.Hooks{}}
	sys, err := partita.New(partita.Deps{Registry: reg, Host: host, Scheduler: loop}, opts)
	if err != nil {
		return err
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return script(gctx, out, loop, sys)
	})

	// An interrupted script is not a failure.
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && parent.Err() == nil {
		return err
	}
	return nil
}

func script(ctx context.Context, out io.Writer, loop *scheduler.Loop, sys *partita.System) error {
	step := func(title string, fn func()) error {
		fmt.Fprintf(out, "> %s\n", title)
		return loop.Call(ctx, fn)
	}
	var pushErr error
	push := func(stack, name string) func() {
		return func() { pushErr = errors.Join(pushErr, sys.Views.Push(stack, name, nil)) }
	}

	steps := []struct {
		title string
		fn    func()
	}{
		{"show main", func() { sys.Views.Show(view.DefaultStack) }},
		{"push home", push("", "home")},
		{"push detail", push("", "detail")},
		{"open settings sheet", func() {
			sys.Views.RegisterStack("sheet")
			push("sheet", "settings")()
			sys.Views.Show("sheet")
		}},
		{"push unknown", func() {
			if err := sys.Views.Push("", "missing", nil); err != nil {
				fmt.Fprintf(out, "  error   %v\n", err)
			}
		}},
	}
	for _, s := range steps {
		if err := step(s.title, s.fn); err != nil {
			return err
		}
	}
	if pushErr != nil {
		return pushErr
	}

	var (
		toastKey string
		key      string
	)
	if err := step("toast with short timeout", func() {
		toastKey = sys.Toasts.Show("saved", toast.WithTimeout(20*time.Millisecond))
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "  toast   %s\n", toastKey)
	time.Sleep(100 * time.Millisecond)
	if err := step("check toasts", func() {
		fmt.Fprintf(out, "  toasts  %d\n", sys.Toasts.Len())
	}); err != nil {
		return err
	}

	if err := step("confirm and answer yes", func() {
		k, pending := sys.Dialogs.Confirm("Continue?", "Script")
		key = k
		go func() {
			v, err := pending.Wait(ctx)
			_ = loop.Do(func() { fmt.Fprintf(out, "  answer  %v %v\n", v, err) })
		}()
	}); err != nil {
		return err
	}
	if err := step("choose yes", func() { sys.Dialogs.Choose(key, 1) }); err != nil {
		return err
	}

	if err := step("loading", func() {
		sys.Loading.Show("fetching")
		sys.Loading.Show("saving")
		sys.Loading.HideContent("fetching")
		cur, _ := sys.Loading.Current()
		fmt.Fprintf(out, "  loading %s\n", cur.Content)
		sys.Loading.Hide()
	}); err != nil {
		return err
	}

	for {
		var res backdispatch.Result
		if err := step("back", func() { res = sys.HandleBack() }); err != nil {
			return err
		}
		fmt.Fprintf(out, "  back    %s\n", res)
		if res == backdispatch.NotConsumed {
			break
		}
	}
	return step("done", func() {})
}
