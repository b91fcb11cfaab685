package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita/views/view"
)

func noop(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }

func TestResolve(t *testing.T) {
	r := New().Register("home", noop)

	f, ok := r.Resolve("home")
	require.True(t, ok)
	assert.NotNil(t, f)

	_, ok = r.Resolve("missing")
	assert.False(t, ok)
}

func TestNamesAndSuggest(t *testing.T) {
	r := New().
		Register("detail", noop).
		Register("home", noop).
		Register("help", noop)

	assert.Equal(t, []string{"detail", "help", "home"}, r.Names())
	assert.Equal(t, []string{"help", "home"}, r.Suggest("h"))
	assert.Len(t, r.Suggest(""), 3)
	assert.Empty(t, r.Suggest("x"))
}
