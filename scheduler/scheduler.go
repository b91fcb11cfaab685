// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package scheduler provides the two deferral points partita needs: a
// "run on the next tick" queue and cancellable timers.
//
// All implementations run callbacks on a single logical thread of
// control; callers never need locks around the state they mutate.
package scheduler

import "time"

// Scheduler defers work onto the owning thread of control.
type Scheduler interface {
	// Defer runs fn on the next tick. Deferred callbacks run in the order
	// they were enqueued.
	Defer(fn func())
	// After runs fn once d has elapsed unless the returned Timer is
	// stopped first.
	After(d time.Duration, fn func()) Timer
}

// Timer is a cancellable handle for a callback scheduled with After.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the timer; false means it already fired or was stopped.
	Stop() bool
}
