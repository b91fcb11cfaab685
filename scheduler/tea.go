// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package scheduler

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlushMsg asks the owning model to run deferred callbacks.
type FlushMsg struct{}

// TimerMsg fires the timer with the given id.
type TimerMsg struct{ ID uint64 }

// CallMsg runs Fn on the Update goroutine. Commands use it to reach
// partita state from their own goroutine.
type CallMsg struct{ Fn func() }

// Tea schedules work on a bubbletea program's Update goroutine. The
// owning model drains Cmd after every Update and forwards FlushMsg and
// TimerMsg back through Handle.
//
// Deferred callbacks run on the message after the render that follows
// the Update which enqueued them, which is when freshly mounted screens
// have been painted once.
type Tea struct {
	pending []func()
	timers  map[uint64]*teaTimer
	cmds    []tea.Cmd
	seq     uint64
	flush   bool
}

type teaTimer struct {
	owner *Tea
	id    uint64
	fn    func()
}

func (t *teaTimer) Stop() bool {
	if _, ok := t.owner.timers[t.id]; !ok {
		return false
	}
	delete(t.owner.timers, t.id)
	return true
}

// NewTea returns an empty bubbletea scheduler.
func NewTea() *Tea {
	return &Tea{timers: map[uint64]*teaTimer{}}
}

func (s *Tea) Defer(fn func()) {
	s.pending = append(s.pending, fn)
	s.flush = true
}

func (s *Tea) After(d time.Duration, fn func()) Timer {
	s.seq++
	id := s.seq
	t := &teaTimer{owner: s, id: id, fn: fn}
	s.timers[id] = t
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{ID: id}
	}))
	return t
}

// Cmd drains the commands accumulated since the last call.
func (s *Tea) Cmd() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	if s.flush {
		s.flush = false
		cmds = append(cmds, func() tea.Msg { return FlushMsg{} })
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Handle runs the work a scheduler message stands for. It reports false
// for messages that do not belong to the scheduler.
func (s *Tea) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FlushMsg:
		s.runPending()
		return true
	case TimerMsg:
		t, ok := s.timers[msg.ID]
		if !ok {
			return true
		}
		delete(s.timers, msg.ID)
		t.fn()
		return true
	case CallMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return true
	}
	return false
}

func (s *Tea) runPending() {
	// Callbacks enqueued while flushing wait for the next FlushMsg.
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
}
