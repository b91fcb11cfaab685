package homeview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/view"
)

func blank(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

func newHome(t *testing.T) (*Model, *partita.System) {
	t.Helper()
	reg := components.New().Register(Name, blank).Register("detail", blank)
	sys, err := partita.New(partita.Deps{Registry: reg, Scheduler: scheduler.NewManual()}, nil)
	require.NoError(t, err)
	return New(60, 20, func() *partita.System { return sys }), sys
}

func choose(m *Model, id string) tea.Cmd {
	for i, it := range entries {
		if it.(entry).id == id {
			m.list.Select(i)
		}
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestDetailNavigates(t *testing.T) {
	m, _ := newHome(t)
	cmd := choose(m, "detail")
	require.NotNil(t, cmd)
	msg, ok := cmd().(view.NavigateToMsg)
	require.True(t, ok)
	assert.Equal(t, "detail", msg.ViewName)
	assert.Equal(t, "Detail", msg.Payload.String("title"))
}

func TestSheetOpensSecondStack(t *testing.T) {
	m, sys := newHome(t)
	sys.Views.Show(view.DefaultStack)
	choose(m, "sheet")

	assert.Equal(t, []string{view.DefaultStack, SheetStack}, sys.Views.Visibles())
	n, ok := sys.Views.Size(SheetStack)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	// A second sheet stacks on the existing one.
	choose(m, "sheet")
	n, _ = sys.Views.Size(SheetStack)
	assert.Equal(t, 2, n)
}

func TestOverlayEntries(t *testing.T) {
	m, sys := newHome(t)

	choose(m, "toast")
	assert.Equal(t, 1, sys.Toasts.Len())

	choose(m, "alert")
	top, ok := sys.Dialogs.Top()
	require.True(t, ok)
	assert.True(t, top.Cancelable)

	choose(m, "confirm")
	top, _ = sys.Dialogs.Top()
	require.Len(t, top.Buttons, 2)
	require.True(t, sys.Dialogs.Choose(top.Key, 1))
	assert.Equal(t, 2, sys.Toasts.Len())
}

func TestLoadingHidesAfterTick(t *testing.T) {
	old := loadingFor
	loadingFor = time.Millisecond
	t.Cleanup(func() { loadingFor = old })

	m, sys := newHome(t)
	cmd := choose(m, "loading")
	require.NotNil(t, cmd)
	assert.True(t, sys.Loading.Shown())

	require.True(t, scheduler.NewTea().Handle(cmd()))
	assert.False(t, sys.Loading.Shown())
}

func TestResize(t *testing.T) {
	m, _ := newHome(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Equal(t, 40, m.list.Width())
	assert.Equal(t, 12, m.list.Height())
	assert.Contains(t, m.View(), "partita")
}
