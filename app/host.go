// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/views/view"
	"github.com/valesdev/partita/views/viewstack"
)

// Host instantiates screens when the navigator mounts them and keeps the
// live instances by key.
type Host struct {
	instances map[string]view.View
	cmds      []tea.Cmd
	width     int
	height    int
}

func NewHost() *Host {
	return &Host{instances: map[string]view.View{}}
}

func (h *Host) Mount(stack string, sc *viewstack.Screen) {
	ctx := view.Context{Stack: stack, Key: sc.Key, Fingerprint: sc.Fingerprint, Width: h.width, Height: h.height}
	v, cmd := sc.Factory(ctx, sc.Params)
	if v == nil {
		l().Warnw("factory returned no view", "stack", stack, "component", sc.Name, "key", sc.Key)
		return
	}
	h.instances[sc.Key] = v
	h.cmds = append(h.cmds, v.Init(), cmd)
	l().Debugw("mounted", "stack", stack, "component", sc.Name, "key", sc.Key, "fingerprint", sc.Fingerprint)
}

func (h *Host) Unmount(stack string, sc *viewstack.Screen) {
	delete(h.instances, sc.Key)
	l().Debugw("unmounted", "stack", stack, "component", sc.Name, "key", sc.Key)
}

func (h *Host) Lookup(key string) (view.Hooks, bool) {
	v, ok := h.instances[key]
	if !ok {
		return nil, false
	}
	return v, true
}

// Instance returns the live view mounted under key.
func (h *Host) Instance(key string) (view.View, bool) {
	v, ok := h.instances[key]
	return v, ok
}

// Resize records the body size for future mounts and forwards it to every
// live instance.
func (h *Host) Resize(width, height int) tea.Cmd {
	h.width, h.height = width, height
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	var cmds []tea.Cmd
	for _, v := range h.instances {
		cmds = append(cmds, v.Update(msg))
	}
	return tea.Batch(cmds...)
}

// Cmd drains the commands returned by mounted screens.
func (h *Host) Cmd() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	cmds := h.cmds
	h.cmds = nil
	return tea.Batch(cmds...)
}
