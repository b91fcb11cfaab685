// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package backdispatch routes the back action through toasts, dialogs
// and view stacks, in that order, stopping at the first that handles it.
package backdispatch

import (
	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/overlays/toast"
	partitalog "github.com/valesdev/partita/utils/log"
)

func l() *partitalog.Logger {
	return partitalog.L().Component("backdispatch")
}

type Result int

const (
	// NotConsumed means nothing handled the action; the caller may apply
	// its platform default, such as exiting.
	NotConsumed Result = iota
	// Consumed means something was dismissed or navigated.
	Consumed
	// Blocked means a non-cancelable dialog absorbed the action.
	Blocked
)

func (r Result) String() string {
	switch r {
	case Consumed:
		return "consumed"
	case Blocked:
		return "blocked"
	default:
		return "not-consumed"
	}
}

type Toasts interface {
	Last() (toast.Item, bool)
	HideByKey(key string) bool
}

type Dialogs interface {
	Top() (dialog.Item, bool)
	HideByKey(key string) bool
}

type Views interface {
	Visibles() []string
	Resolve(stack string) string
	Size(stack string) (int, bool)
	Pop(stack string, steps int) bool
	Hide(stack string)
}

type Dispatcher struct {
	toasts  Toasts
	dialogs Dialogs
	views   Views
}

func New(toasts Toasts, dialogs Dialogs, views Views) *Dispatcher {
	return &Dispatcher{toasts: toasts, dialogs: dialogs, views: views}
}

// HandleBack performs one back action.
func (d *Dispatcher) HandleBack() Result {
	r := d.handle()
	l().Debugw("back", "result", r)
	return r
}

func (d *Dispatcher) handle() Result {
	if t, ok := d.toasts.Last(); ok {
		d.toasts.HideByKey(t.Key)
		return Consumed
	}

	if dl, ok := d.dialogs.Top(); ok {
		if !dl.Cancelable {
			return Blocked
		}
		d.dialogs.HideByKey(dl.Key)
		return Consumed
	}

	// An overlay stack is popped, or hidden once only its root remains.
	if vis := d.views.Visibles(); len(vis) >= 2 {
		front := vis[len(vis)-1]
		if n, ok := d.views.Size(front); ok && n >= 2 {
			d.views.Pop(front, 1)
		} else {
			d.views.Hide(front)
		}
		return Consumed
	}

	stack := d.views.Resolve("")
	if n, ok := d.views.Size(stack); ok && n >= 2 {
		d.views.Pop(stack, 1)
		return Consumed
	}
	return NotConsumed
}
