// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package editorview

import "github.com/valesdev/partita/ui"

func (m *Model) View() string {
	status := "saved"
	if m.Dirty() {
		status = "modified"
	}
	return m.input.View() + "\n\n" + ui.FaintStyle.Render(status)
}
