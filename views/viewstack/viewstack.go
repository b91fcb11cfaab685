// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package viewstack

import "github.com/valesdev/partita/views/view"

// Screen is one entry of a navigation stack. The mounted instance is
// owned by the render host and found through Key.
type Screen struct {
	Key     string
	Name    string
	Params  view.Params
	Factory view.Factory
	// Fingerprint identifies the parameter set. Two screens pushed with
	// equal params share it.
	Fingerprint string
}

// Stack is an ordered sequence of screens; index 0 is the bottom.
type Stack struct {
	stack []*Screen
}

func New() *Stack {
	return &Stack{}
}

// Push a screen onto the stack
func (s *Stack) Push(sc *Screen) {
	s.stack = append(s.stack, sc)
}

// PopAndPush replaces the top screen with a new one.
// If the stack is empty, it just pushes the new screen.
func (s *Stack) PopAndPush(sc *Screen) *Screen {
	var old *Screen
	if len(s.stack) > 0 {
		old = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.stack = append(s.stack, sc)
	return old
}

// Truncate keeps the bottom n screens and returns the removed ones,
// topmost first.
func (s *Stack) Truncate(n int) []*Screen {
	if n < 0 {
		n = 0
	}
	if n >= len(s.stack) {
		return nil
	}
	removed := make([]*Screen, 0, len(s.stack)-n)
	for i := len(s.stack) - 1; i >= n; i-- {
		removed = append(removed, s.stack[i])
		s.stack[i] = nil
	}
	s.stack = s.stack[:n]
	return removed
}

// Peek returns the last screen without removing it
func (s *Stack) Peek() *Screen {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// At returns the screen at index i counted from the bottom.
func (s *Stack) At(i int) *Screen {
	if i < 0 || i >= len(s.stack) {
		return nil
	}
	return s.stack[i]
}

// Contains reports whether a screen with key is on the stack.
func (s *Stack) Contains(key string) bool {
	for _, sc := range s.stack {
		if sc.Key == key {
			return true
		}
	}
	return false
}

// Screens returns the full stack (shallow copy)
func (s *Stack) Screens() []Screen {
	cpy := make([]Screen, len(s.stack))
	for i, sc := range s.stack {
		cpy[i] = *sc
	}
	return cpy
}

// Len returns how many screens are on the stack
func (s *Stack) Len() int {
	return len(s.stack)
}
