// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	partitalog "github.com/valesdev/partita/utils/log"
)

// ErrLoopClosed is returned when work is posted to a stopped Loop.
var ErrLoopClosed = errors.New("scheduler: loop closed")

func l() *partitalog.Logger {
	return partitalog.L().Component("scheduler")
}

// Loop is a single-owner actor. Every callback posted to it, deferred on
// it or fired by one of its timers runs on the goroutine executing Run,
// one at a time. Hosts that call partita from several goroutines wrap
// every call in Do or Call.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	closed  bool
	wake    chan struct{}
	stopped chan struct{}
	running atomic.Bool
}

// NewLoop returns an idle Loop; start it with Run.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1), stopped: make(chan struct{})}
}

// Run processes posted work until ctx is cancelled.
func (lp *Loop) Run(ctx context.Context) error {
	if !lp.running.CompareAndSwap(false, true) {
		return errors.New("scheduler: loop already running")
	}
	defer lp.stop()

	for {
		for {
			fn, ok := lp.next()
			if !ok {
				break
			}
			lp.exec(fn)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-lp.wake:
		}
	}
}

// stop rejects further work and drops whatever was queued but never ran.
func (lp *Loop) stop() {
	lp.mu.Lock()
	lp.closed = true
	dropped := len(lp.queue)
	lp.queue = nil
	lp.mu.Unlock()
	close(lp.stopped)
	if dropped > 0 {
		l().Debugw("loop stopped with pending work", "dropped", dropped)
	}
}

func (lp *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l().Errorw("loop callback panicked", "panic", r)
		}
	}()
	fn()
}

func (lp *Loop) next() (func(), bool) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if len(lp.queue) == 0 {
		return nil, false
	}
	fn := lp.queue[0]
	lp.queue[0] = nil
	lp.queue = lp.queue[1:]
	return fn, true
}

// Do posts fn to the loop without waiting for it to run.
func (lp *Loop) Do(fn func()) error {
	lp.mu.Lock()
	if lp.closed {
		lp.mu.Unlock()
		return ErrLoopClosed
	}
	lp.queue = append(lp.queue, fn)
	lp.mu.Unlock()

	select {
	case lp.wake <- struct{}{}:
	default:
	}
	return nil
}

// Call posts fn and blocks until it has run, ctx is done or the loop
// stops. Calling it from the loop goroutine deadlocks.
func (lp *Loop) Call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := lp.Do(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-lp.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrLoopClosed
		}
	}
}

func (lp *Loop) Defer(fn func()) {
	if err := lp.Do(fn); err != nil {
		l().Debugw("deferred callback dropped", "error", err)
	}
}

type loopTimer struct {
	t    *time.Timer
	done atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if !t.done.CompareAndSwap(false, true) {
		return false
	}
	t.t.Stop()
	return true
}

func (lp *Loop) After(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		_ = lp.Do(func() {
			// Stop may have been called between expiry and this callback.
			if lt.done.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return lt
}
