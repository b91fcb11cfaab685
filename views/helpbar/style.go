// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import "github.com/charmbracelet/lipgloss"

var Style = lipgloss.NewStyle().
	Padding(0, 0).
	Faint(true)
