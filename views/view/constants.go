// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// DefaultStack is the stack that exists from system start and receives
// operations when no stack is named and none is visible.
const DefaultStack = "main"

// Screen names used by the bundled views.
const (
	NameHelp    = "help"
	NameLoading = "loading"
)
