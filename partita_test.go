package partita

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita/backdispatch"
	"github.com/valesdev/partita/config"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/view"
)

func blank(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

func newSystem(t *testing.T, opts *config.Options) (*System, *scheduler.Manual) {
	t.Helper()
	sched := scheduler.NewManual()
	reg := components.New().Register("home", blank).Register("detail", blank)
	s, err := New(Deps{Registry: reg, Scheduler: sched}, opts)
	require.NoError(t, err)
	return s, sched
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Deps{Scheduler: scheduler.NewManual()}, nil)
	assert.ErrorIs(t, err, ErrNoRegistry)

	_, err = New(Deps{Registry: components.New()}, nil)
	assert.ErrorIs(t, err, ErrNoScheduler)
}

func TestBackWalksEveryLayer(t *testing.T) {
	s, sched := newSystem(t, nil)

	require.NoError(t, s.Views.Push("", "home", nil))
	require.NoError(t, s.Views.Push("", "detail", nil))
	sched.Flush()
	s.Dialogs.Alert("hello", "")
	s.Toasts.Show("saved")

	assert.Equal(t, backdispatch.Consumed, s.HandleBack())
	assert.Zero(t, s.Toasts.Len())

	assert.Equal(t, backdispatch.Consumed, s.HandleBack())
	assert.Zero(t, s.Dialogs.Len())

	assert.Equal(t, backdispatch.Consumed, s.HandleBack())
	n, _ := s.Views.Size(view.DefaultStack)
	assert.Equal(t, 1, n)

	assert.Equal(t, backdispatch.NotConsumed, s.HandleBack())
}

func TestOptionsReachQueues(t *testing.T) {
	opts := config.Default()
	opts.Toast.Timeout = config.Duration{Duration: 500 * time.Millisecond}
	opts.Dialog.OK = config.Text("Roger")
	opts.Loading.Component = &view.Descriptor{Name: "dots"}

	s, sched := newSystem(t, opts)

	s.Toasts.Show("quick")
	sched.Advance(500 * time.Millisecond)
	assert.Zero(t, s.Toasts.Len())

	s.Dialogs.Alert("x", "")
	top, _ := s.Dialogs.Top()
	assert.Equal(t, "Roger", top.Buttons[0].Label)

	s.Loading.Show("busy")
	cur, _ := s.Loading.Current()
	assert.Equal(t, "dots", cur.Component.Name)
}

func TestEmptyLabelReachesButtons(t *testing.T) {
	opts := config.Default()
	opts.Dialog.OK = config.Text("")

	s, _ := newSystem(t, opts)
	s.Dialogs.Alert("x", "")
	top, _ := s.Dialogs.Top()
	assert.Equal(t, "", top.Buttons[0].Label)
}

func TestDefaultLabels(t *testing.T) {
	s, _ := newSystem(t, nil)
	s.Dialogs.Confirm("x", "")
	top, _ := s.Dialogs.Top()
	assert.Equal(t, "No", top.Buttons[0].Label)
	assert.Equal(t, "Yes", top.Buttons[1].Label)
}
