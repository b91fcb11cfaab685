// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import tea "github.com/charmbracelet/bubbletea"

// Params is the opaque parameter set handed to an instantiated screen.
type Params map[string]any

// String returns the value of key when it is a string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Context carries the viewport a screen is mounted into. Fingerprint
// identifies the params the screen was pushed with.
type Context struct {
	Stack       string
	Key         string
	Fingerprint string
	Width       int
	Height      int
}

// Factory instantiates a screen component. The returned command is run
// by the host after mounting (initial loads, spinners).
type Factory func(ctx Context, params Params) (View, tea.Cmd)

// Descriptor names a custom component for dialogs, toasts and loading
// indicators.
type Descriptor struct {
	Name  string `toml:"name" yaml:"name"`
	Props Params `toml:"props" yaml:"props"`
}
