// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package navigator

import (
	"github.com/valesdev/partita/views/view"
	"github.com/valesdev/partita/views/viewstack"
)

// dispatch delivers one hook to the live instance of key. Screens that
// are not mounted are skipped and count as Proceed.
func (n *Navigator) dispatch(stack, key string, t view.HookType) view.Decision {
	h, ok := n.host.Lookup(key)
	if !ok {
		l().Debugw("hook skipped, screen not mounted", "hook", t, "stack", stack, "key", key)
		return view.Proceed
	}

	e := view.Event{Type: t, Stack: stack, Key: key}
	switch t {
	case view.HookCreate:
		h.OnCreate(e)
	case view.HookShow:
		h.OnShow(e)
	case view.HookHide:
		h.OnHide(e)
	case view.HookDestroy:
		return h.OnDestroy(e)
	}
	return view.Proceed
}

// detachedHost is used when no render host is attached; every hook is skipped.
type detachedHost struct{}

func (detachedHost) Mount(string, *viewstack.Screen)   {}
func (detachedHost) Unmount(string, *viewstack.Screen) {}
func (detachedHost) Lookup(string) (view.Hooks, bool)  { return nil, false }
