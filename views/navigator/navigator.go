// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package navigator manages named navigation stacks of screens, the
// ordered list of visible stacks, and the lifecycle hooks delivered to
// mounted screen instances.
//
// A Navigator is not safe for concurrent use. Hosts that drive it from
// several goroutines serialize calls through scheduler.Loop.
package navigator

import (
	"slices"

	"github.com/valesdev/partita/core/primitives/hash"
	"github.com/valesdev/partita/core/primitives/randkey"
	"github.com/valesdev/partita/scheduler"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/view"
	"github.com/valesdev/partita/views/viewstack"
)

func l() *partitalog.Logger {
	return partitalog.L().Component("navigator")
}

// Registry resolves component names to factories.
type Registry interface {
	Resolve(name string) (view.Factory, bool)
}

// RenderHost mounts screens into a stack's viewport and hands back the
// live instance of a mounted screen.
type RenderHost interface {
	Mount(stack string, sc *viewstack.Screen)
	Unmount(stack string, sc *viewstack.Screen)
	// Lookup returns false when the screen is not (or no longer) mounted.
	Lookup(key string) (view.Hooks, bool)
}

type Navigator struct {
	registry Registry
	host     RenderHost
	sched    scheduler.Scheduler

	stacks   map[string]*viewstack.Stack
	visibles []string
}

// New returns a Navigator holding the empty default stack.
func New(registry Registry, host RenderHost, sched scheduler.Scheduler) *Navigator {
	if host == nil {
		host = detachedHost{}
	}
	return &Navigator{
		registry: registry,
		host:     host,
		sched:    sched,
		stacks:   map[string]*viewstack.Stack{view.DefaultStack: viewstack.New()},
	}
}

// RegisterStack creates an empty stack. Registering an existing name is a no-op.
func (n *Navigator) RegisterStack(name string) {
	if name == "" {
		return
	}
	if _, ok := n.stacks[name]; ok {
		return
	}
	l().Debugw("register stack", "stack", name)
	n.stacks[name] = viewstack.New()
}

// UnregisterStack drops a stack, unmounting its screens without hooks.
// The default stack cannot be unregistered.
func (n *Navigator) UnregisterStack(name string) {
	st, ok := n.stacks[name]
	if !ok || name == view.DefaultStack {
		return
	}
	l().Debugw("unregister stack", "stack", name)
	for _, sc := range st.Truncate(0) {
		n.host.Unmount(name, sc)
	}
	delete(n.stacks, name)
	n.Hide(name)
}

// Stacks returns the registered stack names in lexical order.
func (n *Navigator) Stacks() []string {
	names := make([]string, 0, len(n.stacks))
	for name := range n.stacks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Visibles returns the visibility list in show order (frontmost last).
func (n *Navigator) Visibles() []string {
	return slices.Clone(n.visibles)
}

// Show appends stack to the visibility list unless it is already visible.
func (n *Navigator) Show(stack string) {
	if stack == "" || slices.Contains(n.visibles, stack) {
		return
	}
	l().Debugw("show stack", "stack", stack)
	n.visibles = append(n.visibles, stack)
}

// Hide removes stack from the visibility list.
func (n *Navigator) Hide(stack string) {
	i := slices.Index(n.visibles, stack)
	if i == -1 {
		return
	}
	l().Debugw("hide stack", "stack", stack)
	n.visibles = slices.Delete(n.visibles, i, i+1)
}

// Resolve applies the fallback rule: an explicit name wins, then the
// frontmost visible stack, then the default stack.
func (n *Navigator) Resolve(stack string) string {
	if stack != "" {
		return stack
	}
	if len(n.visibles) > 0 {
		return n.visibles[len(n.visibles)-1]
	}
	return view.DefaultStack
}

// Size returns the number of screens on the resolved stack. The boolean
// is false when the stack is unknown.
func (n *Navigator) Size(stack string) (int, bool) {
	st, ok := n.stacks[n.Resolve(stack)]
	if !ok {
		return 0, false
	}
	return st.Len(), true
}

// Screens returns a copy of the resolved stack, bottom first.
func (n *Navigator) Screens(stack string) []viewstack.Screen {
	st, ok := n.stacks[n.Resolve(stack)]
	if !ok {
		return nil
	}
	return st.Screens()
}

// Top returns the top screen of the resolved stack.
func (n *Navigator) Top(stack string) (viewstack.Screen, bool) {
	st, ok := n.stacks[n.Resolve(stack)]
	if !ok || st.Len() == 0 {
		return viewstack.Screen{}, false
	}
	return *st.Peek(), true
}

func (n *Navigator) lookup(op, stack string) (string, *viewstack.Stack, bool) {
	name := n.Resolve(stack)
	st, ok := n.stacks[name]
	if !ok {
		l().Debugw("operation on unknown stack ignored", "op", op, "stack", name)
	}
	return name, st, ok
}

// Push instantiates the named component on top of the resolved stack.
// The current top receives hide right away; the new screen receives
// create then show on the next scheduler tick, once the host mounted it.
func (n *Navigator) Push(stack, name string, params view.Params) error {
	target, st, ok := n.lookup("push", stack)
	if !ok {
		return nil
	}
	factory, ok := n.registry.Resolve(name)
	if !ok {
		err := &Error{Op: "push", Stack: target, Component: name, Err: ErrUnknownComponent}
		l().Warnw("push aborted", "error", err)
		return err
	}
	if top := st.Peek(); top != nil {
		n.dispatch(target, top.Key, view.HookHide)
	}

	sc := n.newScreen(name, params, factory)
	l().Debugw("push", "stack", target, "name", name, "key", sc.Key, "fingerprint", sc.Fingerprint, "size", st.Len())
	st.Push(sc)
	n.host.Mount(target, sc)
	n.deferEnter(target, sc.Key)
	return nil
}

// Pop removes the steps topmost screens of the resolved stack. It never
// removes the bottom screen. Each removed screen receives hide then
// destroy, topmost first; a single veto cancels the whole pop. On
// success the new top receives show. Pop reports whether screens were
// removed.
func (n *Navigator) Pop(stack string, steps int) bool {
	target, st, ok := n.lookup("pop", stack)
	if !ok || steps < 1 || st.Len() <= steps {
		return false
	}
	l().Debugw("pop", "stack", target, "steps", steps, "size", st.Len(), "top", st.Peek().Fingerprint)

	vetoed := false
	for i := st.Len() - 1; i >= st.Len()-steps; i-- {
		key := st.At(i).Key
		n.dispatch(target, key, view.HookHide)
		if n.dispatch(target, key, view.HookDestroy) == view.Veto {
			vetoed = true
		}
	}
	if vetoed {
		l().Debugw("pop vetoed", "stack", target, "steps", steps)
		return false
	}

	for _, sc := range st.Truncate(st.Len() - steps) {
		n.host.Unmount(target, sc)
	}
	n.dispatch(target, st.Peek().Key, view.HookShow)
	return true
}

// Replace swaps the top screen of the resolved stack for a new instance
// of the named component. Replacing on an empty stack is a no-op. The
// old top receives hide then destroy and may veto.
func (n *Navigator) Replace(stack, name string, params view.Params) error {
	target, st, ok := n.lookup("replace", stack)
	if !ok || st.Len() == 0 {
		return nil
	}
	factory, ok := n.registry.Resolve(name)
	if !ok {
		err := &Error{Op: "replace", Stack: target, Component: name, Err: ErrUnknownComponent}
		l().Warnw("replace aborted", "error", err)
		return err
	}
	top := st.Peek()
	l().Debugw("replace", "stack", target, "name", name, "old", top.Fingerprint)

	n.dispatch(target, top.Key, view.HookHide)
	if n.dispatch(target, top.Key, view.HookDestroy) == view.Veto {
		l().Debugw("replace vetoed", "stack", target, "key", top.Key)
		return nil
	}

	sc := n.newScreen(name, params, factory)
	l().Debugw("replaced", "stack", target, "key", sc.Key, "fingerprint", sc.Fingerprint)
	old := st.PopAndPush(sc)
	n.host.Unmount(target, old)
	n.host.Mount(target, sc)
	n.deferEnter(target, sc.Key)
	return nil
}

// Clear truncates the resolved stack to its bottom screen. The old top
// receives hide, every removed screen receives destroy (vetoes are
// ignored) and the surviving bottom receives show.
func (n *Navigator) Clear(stack string) {
	target, st, ok := n.lookup("clear", stack)
	if !ok || st.Len() <= 1 {
		return
	}
	l().Debugw("clear", "stack", target, "size", st.Len())

	n.dispatch(target, st.Peek().Key, view.HookHide)
	for _, sc := range st.Truncate(1) {
		if n.dispatch(target, sc.Key, view.HookDestroy) == view.Veto {
			l().Debugw("veto ignored by clear", "stack", target, "key", sc.Key)
		}
		n.host.Unmount(target, sc)
	}
	n.dispatch(target, st.Peek().Key, view.HookShow)
}

func (n *Navigator) newScreen(name string, params view.Params, factory view.Factory) *viewstack.Screen {
	return &viewstack.Screen{
		Key:         randkey.Unique(n.keyTaken),
		Name:        name,
		Params:      params,
		Factory:     factory,
		Fingerprint: hash.Fingerprint(params),
	}
}

func (n *Navigator) keyTaken(key string) bool {
	for _, st := range n.stacks {
		if st.Contains(key) {
			return true
		}
	}
	return false
}

func (n *Navigator) deferEnter(stack, key string) {
	n.sched.Defer(func() {
		n.dispatch(stack, key, view.HookCreate)
		n.dispatch(stack, key, view.HookShow)
	})
}
