// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// NavigateToMsg asks the host to push (or replace with) a screen.
// An empty Stack targets the frontmost visible stack.
type NavigateToMsg struct {
	Stack    string
	ViewName string
	Payload  Params
	// Replace swaps the top screen instead of pushing on top of it.
	Replace bool
}

// NavigateBackMsg asks the host to run the back-button chain.
type NavigateBackMsg struct{}

// PopMsg pops Steps screens from Stack without going through the back chain.
type PopMsg struct {
	Stack string
	Steps int
}
