package helpview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/valesdev/partita/views/view"
)

func TestRenderListsCommands(t *testing.T) {
	m := New(80, 10, []CommandInfo{
		{Name: "push", Usage: "<component>", Description: "Push a screen"},
		{Name: "back", Description: "Press back"},
	})
	out := m.View()
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, ":push <component>")
	assert.Contains(t, out, "Press back")
	assert.Equal(t, view.NameHelp, m.Name())
}

func TestResizeUpdatesViewport(t *testing.T) {
	m := New(10, 2, nil)
	assert.Nil(t, m.Update(tea.WindowSizeMsg{Width: 50, Height: 20}))
	assert.Equal(t, 50, m.viewport.Width)
	assert.Equal(t, 20, m.viewport.Height)
}

func TestHooksAreNoops(t *testing.T) {
	m := New(10, 2, nil)
	assert.Equal(t, view.Proceed, m.OnDestroy(view.Event{Type: view.HookDestroy}))
}
