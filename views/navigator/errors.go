// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package navigator

import (
	"errors"
	"fmt"
)

// ErrUnknownComponent is returned when a push or replace names a
// component the registry cannot resolve.
var ErrUnknownComponent = errors.New("unknown component")

// Error describes a navigation attempt that was aborted.
type Error struct {
	Op        string // "push" or "replace"
	Stack     string
	Component string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("navigator: %s %q on stack %q: %v", e.Op, e.Component, e.Stack, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnknownComponent reports whether err was caused by an unresolvable
// component name.
func IsUnknownComponent(err error) bool {
	return errors.Is(err, ErrUnknownComponent)
}
