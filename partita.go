// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package partita wires one instance of every orchestration service: the
// view stack engine, the dialog, toast and loading queues and the back
// dispatcher composing them.
package partita

import (
	"errors"

	"github.com/valesdev/partita/backdispatch"
	"github.com/valesdev/partita/config"
	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/overlays/loading"
	"github.com/valesdev/partita/overlays/toast"
	"github.com/valesdev/partita/scheduler"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/navigator"
)

var (
	ErrNoRegistry  = errors.New("partita: component registry is required")
	ErrNoScheduler = errors.New("partita: scheduler is required")
)

// Deps are the collaborators the host supplies. Host may be nil, in which
// case lifecycle hooks are never delivered.
type Deps struct {
	Registry  navigator.Registry
	Host      navigator.RenderHost
	Scheduler scheduler.Scheduler
}

type System struct {
	Options *config.Options

	Views   *navigator.Navigator
	Dialogs *dialog.Queue
	Toasts  *toast.Queue
	Loading *loading.Queue
	Back    *backdispatch.Dispatcher
}

// New builds the system. A nil opts means config.Default().
func New(deps Deps, opts *config.Options) (*System, error) {
	if deps.Registry == nil {
		return nil, ErrNoRegistry
	}
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if opts == nil {
		opts = config.Default()
	}

	labels := opts.Labels()
	s := &System{
		Options: opts,
		Views:   navigator.New(deps.Registry, deps.Host, deps.Scheduler),
		Dialogs: dialog.New(dialog.Labels{
			OK:  labels.OK.Func("OK"),
			Yes: labels.Yes.Func("Yes"),
			No:  labels.No.Func("No"),
		}),
		Toasts:  toast.New(deps.Scheduler, opts.Toast.Timeout.Duration),
		Loading: loading.New(opts.Loading.Component),
	}
	s.Back = backdispatch.New(s.Toasts, s.Dialogs, s.Views)

	partitalog.L().Infow("partita initialized",
		"locale", opts.Locale,
		"toast_timeout", opts.Toast.Timeout.Duration,
	)
	return s, nil
}

// HandleBack runs one back action through the dispatcher.
func (s *System) HandleBack() backdispatch.Result {
	return s.Back.HandleBack()
}
