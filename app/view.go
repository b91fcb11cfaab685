// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/valesdev/partita/ui"
	"github.com/valesdev/partita/ui/components/dialogbox"
	"github.com/valesdev/partita/ui/components/toaststrip"
	"github.com/valesdev/partita/views/helpbar"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	stack := m.sys.Views.Resolve("")
	top := m.topView()

	var viewHelp []helpbar.HelpEntry
	title := stack
	body := ""
	if top != nil {
		viewHelp = top.ShortHelpItems()
		title = fmt.Sprintf("%s · %s", stack, top.Name())
		body = top.View()
	}

	help := helpbar.New(m.width).
		WithViewHelp(viewHelp).
		View(m.status(stack))

	m.viewport.SetContent(body)
	frame := ui.RenderFramedBox(title, m.viewport.View(), m.width)

	if cur, ok := m.sys.Loading.Current(); ok {
		frame = ui.OverlayCentered(frame, m.loading.View(cur, m.sys.Loading.Len()), m.width)
	}
	if dl, ok := m.sys.Dialogs.Top(); ok {
		frame = ui.OverlayCentered(frame, dialogbox.Render(dl, m.focus, m.zones), m.width)
	}

	parts := []string{help}
	if m.commandInput.Visible() {
		parts = append(parts, m.commandInput.View())
	}
	parts = append(parts, frame)
	if strip := toaststrip.Render(m.sys.Toasts.Items(), m.frame, m.width); strip != "" {
		parts = append(parts, strip)
	}
	parts = append(parts, m.stackBar(stack))

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) status(stack string) string {
	n, _ := m.sys.Views.Size(stack)
	return m.printer.Sprintf("%s: %d screens\n%d toasts · %d dialogs\n%d stacks visible",
		stack, n, m.sys.Toasts.Len(), m.sys.Dialogs.Len(), len(m.sys.Views.Visibles()))
}

func (m *Model) stackBar(stack string) string {
	screens := m.sys.Views.Screens(stack)
	crumbs := make([]ui.Crumb, 0, len(screens)+1)
	crumbs = append(crumbs, ui.Crumb{Label: stack})
	for i, sc := range screens {
		crumbs = append(crumbs, ui.Crumb{Label: sc.Name, Active: i == len(screens)-1})
	}
	return ui.StackBar(crumbs)
}
