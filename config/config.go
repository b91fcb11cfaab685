// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package config holds the options partita is initialized with and
// loads them from TOML or YAML files.
package config

import (
	"time"

	"github.com/valesdev/partita/views/view"
)

// DefaultPtrThreshold is the pull distance, in rows, that triggers a refresh.
const DefaultPtrThreshold = 60

type Options struct {
	// Locale selects the language of the default dialog labels, e.g. "zh-Hans".
	Locale  string         `toml:"locale" yaml:"locale"`
	Dialog  DialogOptions  `toml:"dialog" yaml:"dialog"`
	Toast   ToastOptions   `toml:"toast" yaml:"toast"`
	Loading LoadingOptions `toml:"loading" yaml:"loading"`
	Ptr     PtrOptions     `toml:"ptr" yaml:"ptr"`
}

type DialogOptions struct {
	OK  Label `toml:"ok" yaml:"ok"`
	Yes Label `toml:"yes" yaml:"yes"`
	No  Label `toml:"no" yaml:"no"`
}

type ToastOptions struct {
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

type LoadingOptions struct {
	Component *view.Descriptor `toml:"component" yaml:"component"`
}

// PtrOptions configures pull-to-refresh. Only the slot is carried here;
// rendering belongs to the host.
type PtrOptions struct {
	Component *view.Descriptor `toml:"component" yaml:"component"`
	Threshold int              `toml:"threshold" yaml:"threshold"`
}

// Default returns the options used when nothing is configured.
func Default() *Options {
	return &Options{
		Toast: ToastOptions{Timeout: Duration{2 * time.Second}},
		Ptr:   PtrOptions{Threshold: DefaultPtrThreshold},
	}
}
