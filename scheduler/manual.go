// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package scheduler

import (
	"sort"
	"time"

	"go.uber.org/atomic"
)

// Manual is a deterministic Scheduler driven explicitly by the caller.
// Nothing runs until Flush or Advance is called.
type Manual struct {
	now    time.Duration
	queue  []func()
	timers []*manualTimer
	seq    uint64
}

type manualTimer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	stopped atomic.Bool
}

func (t *manualTimer) Stop() bool {
	return t.stopped.CompareAndSwap(false, true)
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Defer(fn func()) {
	m.queue = append(m.queue, fn)
}

func (m *Manual) After(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of deferred callbacks waiting for Flush.
func (m *Manual) Pending() int { return len(m.queue) }

// Timers returns the number of timers that have neither fired nor been stopped.
func (m *Manual) Timers() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped.Load() {
			n++
		}
	}
	return n
}

// Flush runs deferred callbacks until the queue is empty, including any
// enqueued while flushing.
func (m *Manual) Flush() {
	for len(m.queue) > 0 {
		fn := m.queue[0]
		m.queue = m.queue[1:]
		fn()
	}
}

// Advance moves virtual time forward by d, firing due timers in
// deadline order and flushing deferred work after each one.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	m.Flush()
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.at
		if t.stopped.CompareAndSwap(false, true) {
			t.fn()
		}
		m.Flush()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.stopped.Load() && t.at <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at == live[j].at {
			return live[i].seq < live[j].seq
		}
		return live[i].at < live[j].at
	})
	return live[0]
}

func (m *Manual) compact() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped.Load() {
			kept = append(kept, t)
		}
	}
	m.timers = kept
}
