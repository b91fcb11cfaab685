// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package loading implements the busy indicator queue. Shows stack up,
// the most recent one is current.
package loading

import (
	"slices"

	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/view"
)

func l() *partitalog.Logger {
	return partitalog.L().Component("loading")
}

type Item struct {
	Content   string
	Component *view.Descriptor
}

type Queue struct {
	component *view.Descriptor
	items     []Item
}

// New returns an empty queue. A non-nil component becomes the default
// custom component of every item shown without one.
func New(component *view.Descriptor) *Queue {
	return &Queue{component: component}
}

type ShowOption func(*Item)

func WithComponent(d view.Descriptor) ShowOption {
	return func(it *Item) { it.Component = &d }
}

// Show pushes a new indicator.
func (q *Queue) Show(content string, opts ...ShowOption) {
	it := Item{Content: content, Component: q.component}
	for _, opt := range opts {
		opt(&it)
	}
	q.items = append(q.items, it)
	l().Debugw("show", "content", content, "depth", len(q.items))
}

// Hide pops the most recent indicator. It is a no-op on an empty queue.
func (q *Queue) Hide() bool {
	if len(q.items) == 0 {
		return false
	}
	q.items = q.items[:len(q.items)-1]
	l().Debugw("hide", "depth", len(q.items))
	return true
}

// HideContent removes the first indicator showing content, regardless of
// its position.
func (q *Queue) HideContent(content string) bool {
	i := slices.IndexFunc(q.items, func(it Item) bool { return it.Content == content })
	if i == -1 {
		l().Debugw("hide content: no match", "content", content)
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	l().Debugw("hide content", "content", content, "depth", len(q.items))
	return true
}

// Shown reports whether any indicator is up.
func (q *Queue) Shown() bool { return len(q.items) > 0 }

// Current returns the most recent indicator.
func (q *Queue) Current() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[len(q.items)-1], true
}

func (q *Queue) Items() []Item { return slices.Clone(q.items) }

func (q *Queue) Len() int { return len(q.items) }
