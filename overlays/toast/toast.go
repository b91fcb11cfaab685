// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package toast keeps the ordered list of transient messages. Every
// toast hides itself after a timeout unless it is dismissed earlier.
package toast

import (
	"slices"
	"time"

	"github.com/valesdev/partita/core/primitives/randkey"
	"github.com/valesdev/partita/scheduler"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/view"
)

// DefaultTimeout is how long a toast stays up when nothing else is configured.
const DefaultTimeout = 2 * time.Second

func l() *partitalog.Logger {
	return partitalog.L().Component("toast")
}

type Item struct {
	Key       string
	Content   string
	Component *view.Descriptor

	timer scheduler.Timer
}

type Queue struct {
	sched   scheduler.Scheduler
	timeout time.Duration
	items   []*Item
}

// New returns an empty queue. A timeout <= 0 selects DefaultTimeout.
func New(sched scheduler.Scheduler, timeout time.Duration) *Queue {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Queue{sched: sched, timeout: timeout}
}

type showOptions struct {
	timeout   time.Duration
	component *view.Descriptor
}

type ShowOption func(*showOptions)

// WithTimeout overrides the queue timeout for one toast.
func WithTimeout(d time.Duration) ShowOption {
	return func(o *showOptions) { o.timeout = d }
}

// WithComponent renders the toast through a custom component.
func WithComponent(d view.Descriptor) ShowOption {
	return func(o *showOptions) { o.component = &d }
}

// Show appends a toast and schedules its removal. It returns the toast key.
func (q *Queue) Show(content string, opts ...ShowOption) string {
	o := showOptions{timeout: q.timeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = q.timeout
	}

	key := randkey.Unique(q.has)
	item := &Item{Key: key, Content: content, Component: o.component}
	item.timer = q.sched.After(o.timeout, func() { q.HideByKey(key) })
	q.items = append(q.items, item)

	l().Debugw("show", "key", key, "content", content, "timeout", o.timeout)
	return key
}

// HideByKey removes the toast and cancels its timer. Unknown keys are
// ignored. It reports whether a toast was removed.
func (q *Queue) HideByKey(key string) bool {
	i := q.index(key)
	if i == -1 {
		return false
	}
	l().Debugw("hide", "key", key)
	q.items[i].timer.Stop()
	q.items = slices.Delete(q.items, i, i+1)
	return true
}

// Items returns the live toasts in show order.
func (q *Queue) Items() []Item {
	out := make([]Item, len(q.items))
	for i, it := range q.items {
		out[i] = Item{Key: it.Key, Content: it.Content, Component: it.Component}
	}
	return out
}

// Last returns the most recently shown toast.
func (q *Queue) Last() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	it := q.items[len(q.items)-1]
	return Item{Key: it.Key, Content: it.Content, Component: it.Component}, true
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) index(key string) int {
	return slices.IndexFunc(q.items, func(it *Item) bool { return it.Key == key })
}

func (q *Queue) has(key string) bool { return q.index(key) != -1 }
