// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Args holds both positional arguments and flag values.
type Args struct {
	Positionals []string
	Flags       map[string]string
}

// Get returns the string value of a flag or empty string if not present.
func (a Args) Get(name string) string {
	return a.Flags[name]
}

// Has returns true if a flag was provided.
func (a Args) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// Text joins the positionals from index i on with single spaces.
func (a Args) Text(i int) string {
	if i >= len(a.Positionals) {
		return ""
	}
	return strings.Join(a.Positionals[i:], " ")
}

// Int parses positional i, returning def when it is absent.
func (a Args) Int(i, def int) (int, error) {
	if i >= len(a.Positionals) {
		return def, nil
	}
	n, err := strconv.Atoi(a.Positionals[i])
	if err != nil {
		return 0, fmt.Errorf("argument %q is not a number", a.Positionals[i])
	}
	return n, nil
}

// Duration parses flag name, returning 0 when it is absent.
func (a Args) Duration(name string) (time.Duration, error) {
	v, ok := a.Flags[name]
	if !ok {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Positionals=%v, Flags=%v}", a.Positionals, a.Flags)
}
