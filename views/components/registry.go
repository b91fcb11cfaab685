// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package components maps screen names to the factories that
// instantiate them.
package components

import (
	"sort"
	"strings"

	"github.com/valesdev/partita/views/view"
)

type Registry struct {
	factories map[string]view.Factory
}

func New() *Registry {
	return &Registry{factories: map[string]view.Factory{}}
}

// Register adds or overwrites the factory for name.
func (r *Registry) Register(name string, factory view.Factory) *Registry {
	r.factories[name] = factory
	return r
}

// Resolve returns the factory registered for name.
func (r *Registry) Resolve(name string) (view.Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered names that start with prefix.
func (r *Registry) Suggest(prefix string) []string {
	var out []string
	for _, name := range r.Names() {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
