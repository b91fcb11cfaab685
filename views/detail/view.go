// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package detailview

func (m *Model) View() string {
	return m.viewport.View()
}
