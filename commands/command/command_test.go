package command

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/commands/api"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/scheduler"
	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/navigator"
	"github.com/valesdev/partita/views/view"
)

func blank(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

func setup(t *testing.T) (registry.Context, *scheduler.Manual) {
	t.Helper()
	sched := scheduler.NewManual()
	reg := components.New().Register("home", blank).Register("detail", blank)
	sys, err := partita.New(partita.Deps{Registry: reg, Scheduler: sched}, nil)
	require.NoError(t, err)
	return registry.Context{System: sys}, sched
}

func run(t *testing.T, ctx registry.Context, input string) (tea.Cmd, error) {
	t.Helper()
	cmd, a, err := api.ParseInput(input)
	require.NoError(t, err)
	return cmd.Execute(ctx, a)
}

func TestStackCommands(t *testing.T) {
	ctx, _ := setup(t)
	views := ctx.System.Views

	_, err := run(t, ctx, "push home")
	require.NoError(t, err)
	_, err = run(t, ctx, "open detail --id=7")
	require.NoError(t, err)

	top, ok := views.Top(view.DefaultStack)
	require.True(t, ok)
	assert.Equal(t, "detail", top.Name)
	assert.Equal(t, "7", top.Params.String("id"))

	_, err = run(t, ctx, "replace home")
	require.NoError(t, err)
	top, _ = views.Top(view.DefaultStack)
	assert.Equal(t, "home", top.Name)

	_, err = run(t, ctx, "pop")
	require.NoError(t, err)
	n, _ := views.Size(view.DefaultStack)
	assert.Equal(t, 1, n)

	_, err = run(t, ctx, "push nowhere")
	assert.True(t, navigator.IsUnknownComponent(err))

	_, err = run(t, ctx, "pop two")
	assert.Error(t, err)

	_, err = run(t, ctx, "push")
	assert.EqualError(t, err, "usage: push <component>")
}

func TestStackVisibilityCommands(t *testing.T) {
	ctx, _ := setup(t)
	views := ctx.System.Views

	_, err := run(t, ctx, "stack add sheet")
	require.NoError(t, err)
	_, err = run(t, ctx, "stack show sheet")
	require.NoError(t, err)
	assert.Equal(t, []string{"sheet"}, views.Visibles())

	_, err = run(t, ctx, "push home")
	require.NoError(t, err)
	n, _ := views.Size("sheet")
	assert.Equal(t, 1, n, "push targets the frontmost visible stack")

	_, err = run(t, ctx, "push detail --stack=main")
	require.NoError(t, err)
	_, err = run(t, ctx, "push home --stack=main")
	require.NoError(t, err)
	_, err = run(t, ctx, "clear --stack=main")
	require.NoError(t, err)
	n, _ = views.Size(view.DefaultStack)
	assert.Equal(t, 1, n)

	_, err = run(t, ctx, "stack hide sheet")
	require.NoError(t, err)
	assert.Empty(t, views.Visibles())

	_, err = run(t, ctx, "stack rm sheet")
	require.NoError(t, err)
	_, ok := views.Size("sheet")
	assert.False(t, ok)

	_, err = run(t, ctx, "stack show")
	assert.Error(t, err)
}

func TestOverlayCommands(t *testing.T) {
	ctx, sched := setup(t)
	sys := ctx.System

	_, err := run(t, ctx, "toast hello there --timeout=1s")
	require.NoError(t, err)
	require.Equal(t, 1, sys.Toasts.Len())
	assert.Equal(t, "hello there", sys.Toasts.Items()[0].Content)
	sched.Advance(time.Second)
	assert.Zero(t, sys.Toasts.Len())

	_, err = run(t, ctx, "toast --timeout=soon hi")
	assert.Error(t, err)

	_, err = run(t, ctx, "alert saved --title=Info")
	require.NoError(t, err)
	top, _ := sys.Dialogs.Top()
	assert.Equal(t, "Info", top.Title)
	sys.Dialogs.HideByKey(top.Key)

	_, err = run(t, ctx, "confirm really?")
	require.NoError(t, err)
	top, _ = sys.Dialogs.Top()
	require.True(t, sys.Dialogs.Choose(top.Key, 1))
	require.Equal(t, 1, sys.Toasts.Len())
	assert.Equal(t, "confirm: true", sys.Toasts.Items()[0].Content)

	_, err = run(t, ctx, "loading a")
	require.NoError(t, err)
	_, err = run(t, ctx, "loading b --component=dots")
	require.NoError(t, err)
	cur, _ := sys.Loading.Current()
	assert.Equal(t, "dots", cur.Component.Name)

	_, err = run(t, ctx, "done a")
	require.NoError(t, err)
	cur, _ = sys.Loading.Current()
	assert.Equal(t, "b", cur.Content)

	_, err = run(t, ctx, "loading done a")
	assert.Error(t, err)
	_, err = run(t, ctx, "loading done")
	require.NoError(t, err)
	assert.False(t, sys.Loading.Shown())
}

func TestNavigationMessages(t *testing.T) {
	ctx, _ := setup(t)

	cmd, err := run(t, ctx, "back")
	require.NoError(t, err)
	assert.Equal(t, view.NavigateBackMsg{}, cmd())

	cmd, err = run(t, ctx, "?")
	require.NoError(t, err)
	assert.Equal(t, view.NavigateToMsg{ViewName: view.NameHelp}, cmd())
}

func TestAliasesDescribeTarget(t *testing.T) {
	c, ok := registry.Get("open")
	require.True(t, ok)
	assert.Equal(t, "alias for push", c.Description())
	assert.Equal(t, Push{}.Usage(), c.Usage())
}
