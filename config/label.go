// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"gopkg.in/yaml.v3"
)

// Label is a button caption given either literally or as a producer that
// is asked every time the caption is needed.
type Label struct {
	Text     string
	Producer func() string

	// set marks a literal that was configured explicitly, even as "".
	set bool
}

// Text returns a literal label. An empty literal is kept as an empty
// caption rather than falling back.
func Text(s string) Label { return Label{Text: s, set: true} }

// Producer returns a label computed on every use.
func Producer(fn func() string) Label { return Label{Producer: fn} }

func (lb Label) IsZero() bool { return !lb.set && lb.Text == "" && lb.Producer == nil }

// Resolve returns the caption. Fallback is used when the label is unset
// or its producer yields "". A literal configured as "" resolves to "".
func (lb Label) Resolve(fallback string) string {
	if lb.Producer != nil {
		if s := lb.Producer(); s != "" {
			return s
		}
		return fallback
	}
	if lb.set || lb.Text != "" {
		return lb.Text
	}
	return fallback
}

// Func adapts the label to a caption producer with a fallback.
func (lb Label) Func(fallback string) func() string {
	return func() string { return lb.Resolve(fallback) }
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (lb *Label) UnmarshalText(text []byte) error {
	*lb = Text(string(text))
	return nil
}

func (lb Label) MarshalText() ([]byte, error) {
	return []byte(lb.Resolve("")), nil
}

func (lb *Label) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	return lb.UnmarshalText([]byte(s))
}
