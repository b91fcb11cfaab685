// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package dialog keeps the queue of modal requests. The last shown
// dialog is the one on top.
package dialog

import (
	"slices"

	"github.com/valesdev/partita/core/primitives/randkey"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/view"
)

func l() *partitalog.Logger {
	return partitalog.L().Component("dialog")
}

type Button struct {
	Value       any
	Label       string
	Highlighted bool
}

type Item struct {
	Key        string
	Title      string
	Content    string
	Component  *view.Descriptor
	Buttons    []Button
	Cancelable bool

	pending *Pending
}

// Labels produce the default button captions of Alert and Confirm. A nil
// producer falls back to the English caption; a producer's result is used
// as is, "" included.
type Labels struct {
	OK  func() string
	Yes func() string
	No  func() string
}

func (ls Labels) ok() string  { return label(ls.OK, "OK") }
func (ls Labels) yes() string { return label(ls.Yes, "Yes") }
func (ls Labels) no() string  { return label(ls.No, "No") }

func label(fn func() string, fallback string) string {
	if fn == nil {
		return fallback
	}
	return fn()
}

type Queue struct {
	labels Labels
	items  []*Item
}

func New(labels Labels) *Queue {
	return &Queue{labels: labels}
}

type Option func(*options)

type options struct {
	component  *view.Descriptor
	buttons    []Button
	cancelable bool
	callback   func(Result)
}

func WithButtons(b ...Button) Option {
	return func(o *options) { o.buttons = b }
}

func WithCancelable(c bool) Option {
	return func(o *options) { o.cancelable = c }
}

func WithComponent(d view.Descriptor) Option {
	return func(o *options) { o.component = &d }
}

// WithCallback runs fn once when the dialog resolves, before Wait returns.
func WithCallback(fn func(Result)) Option {
	return func(o *options) { o.callback = fn }
}

// Show queues a dialog. Back navigation cannot dismiss it unless
// WithCancelable(true) is given.
func (q *Queue) Show(content, title string, opts ...Option) (string, *Pending) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	key := randkey.Unique(q.has)
	p := newPending(key, o.callback)
	q.items = append(q.items, &Item{
		Key:        key,
		Title:      title,
		Content:    content,
		Component:  o.component,
		Buttons:    o.buttons,
		Cancelable: o.cancelable,
		pending:    p,
	})

	l().Debugw("show", "key", key, "title", title, "buttons", len(o.buttons), "cancelable", o.cancelable)
	return key, p
}

// Alert shows a single OK button resolving to nil.
func (q *Queue) Alert(content, title string, opts ...Option) (string, *Pending) {
	opts = append([]Option{
		WithButtons(Button{Value: nil, Label: q.labels.ok(), Highlighted: true}),
		WithCancelable(true),
	}, opts...)
	return q.Show(content, title, opts...)
}

// Confirm shows No and Yes buttons resolving to false and true. It cannot
// be dismissed by back navigation.
func (q *Queue) Confirm(content, title string, opts ...Option) (string, *Pending) {
	opts = append([]Option{
		WithButtons(
			Button{Value: false, Label: q.labels.no()},
			Button{Value: true, Label: q.labels.yes(), Highlighted: true},
		),
		WithCancelable(false),
	}, opts...)
	return q.Show(content, title, opts...)
}

// HideByKey dismisses a dialog and resolves it as cancelled. Unknown keys
// are ignored.
func (q *Queue) HideByKey(key string) bool {
	it, ok := q.remove(key)
	if !ok {
		return false
	}
	l().Debugw("hide", "key", key)
	it.pending.resolve(Result{Cancelled: true})
	return true
}

// Choose dismisses a dialog with the value of its index-th button.
func (q *Queue) Choose(key string, index int) bool {
	i := q.index(key)
	if i == -1 || index < 0 || index >= len(q.items[i].Buttons) {
		l().Debugw("choose: ignored", "key", key, "index", index)
		return false
	}
	it, _ := q.remove(key)
	l().Debugw("choose", "key", key, "index", index)
	it.pending.resolve(Result{Value: it.Buttons[index].Value})
	return true
}

// Top returns the most recently shown dialog.
func (q *Queue) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[len(q.items)-1].snapshot(), true
}

func (q *Queue) Items() []Item {
	out := make([]Item, len(q.items))
	for i, it := range q.items {
		out[i] = it.snapshot()
	}
	return out
}

func (q *Queue) Len() int { return len(q.items) }

func (it *Item) snapshot() Item {
	c := *it
	c.Buttons = slices.Clone(it.Buttons)
	c.pending = nil
	return c
}

func (q *Queue) remove(key string) (*Item, bool) {
	i := q.index(key)
	if i == -1 {
		return nil, false
	}
	it := q.items[i]
	q.items = slices.Delete(q.items, i, i+1)
	return it, true
}

func (q *Queue) index(key string) int {
	return slices.IndexFunc(q.items, func(it *Item) bool { return it.Key == key })
}

func (q *Queue) has(key string) bool { return q.index(key) != -1 }
