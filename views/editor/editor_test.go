package editorview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/app"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/view"
)

func blank(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

func setup(t *testing.T) (*partita.System, *Model) {
	t.Helper()
	var sys *partita.System
	reg := components.New().
		Register("home", blank).
		Register(Name, Factory(func() *partita.System { return sys }))
	host := app.NewHost()
	sched := scheduler.NewManual()

	var err error
	sys, err = partita.New(partita.Deps{Registry: reg, Host: host, Scheduler: sched}, nil)
	require.NoError(t, err)

	require.NoError(t, sys.Views.Push("", "home", nil))
	require.NoError(t, sys.Views.Push("", Name, view.Params{"text": "draft"}))
	sched.Flush()

	top, ok := sys.Views.Top("")
	require.True(t, ok)
	v, ok := host.Instance(top.Key)
	require.True(t, ok)
	return sys, v.(*Model)
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func size(sys *partita.System) int {
	n, _ := sys.Views.Size("")
	return n
}

func TestCleanEditorCloses(t *testing.T) {
	sys, m := setup(t)
	assert.False(t, m.Dirty())
	assert.True(t, sys.Views.Pop("", 1))
	assert.Equal(t, 1, size(sys))
	assert.Zero(t, sys.Dialogs.Len())
}

func TestDirtyEditorVetoesAndAsks(t *testing.T) {
	sys, m := setup(t)
	typeText(m, "!")
	require.True(t, m.Dirty())
	assert.Contains(t, m.View(), "modified")

	assert.False(t, sys.Views.Pop("", 1))
	assert.Equal(t, 2, size(sys))
	require.Equal(t, 1, sys.Dialogs.Len())

	// Asking again while the question is open does not queue a second one.
	assert.False(t, sys.Views.Pop("", 1))
	assert.Equal(t, 1, sys.Dialogs.Len())

	// No keeps the editor.
	top, _ := sys.Dialogs.Top()
	require.True(t, sys.Dialogs.Choose(top.Key, 0))
	assert.Equal(t, 2, size(sys))
	assert.True(t, m.Dirty())

	// Yes discards and pops.
	assert.False(t, sys.Views.Pop("", 1))
	top, _ = sys.Dialogs.Top()
	require.True(t, sys.Dialogs.Choose(top.Key, 1))
	assert.Equal(t, 1, size(sys))
	assert.Zero(t, sys.Dialogs.Len())
}

func TestEnterSaves(t *testing.T) {
	sys, m := setup(t)
	typeText(m, "!")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Dirty())
	assert.Contains(t, m.View(), "saved")
	assert.Equal(t, 1, sys.Toasts.Len())
	assert.True(t, sys.Views.Pop("", 1))
}
