package api

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valesdev/partita/args"
	"github.com/valesdev/partita/registry"
)

type stub string

func (s stub) Name() string        { return string(s) }
func (s stub) Description() string { return "" }
func (s stub) Usage() string       { return "" }
func (s stub) Execute(registry.Context, args.Args) (tea.Cmd, error) {
	return nil, nil
}

func TestParseInputLongestMatch(t *testing.T) {
	registry.Register(stub("zz"))
	registry.Register(stub("zz top"))

	cmd, a, err := ParseInput("zz top one --stack=sheet --force two")
	require.NoError(t, err)
	assert.Equal(t, "zz top", cmd.Name())
	assert.Equal(t, []string{"one", "two"}, a.Positionals)
	assert.Equal(t, "sheet", a.Get("stack"))
	assert.Equal(t, "true", a.Get("force"))

	cmd, a, err = ParseInput("zz bottom")
	require.NoError(t, err)
	assert.Equal(t, "zz", cmd.Name())
	assert.Equal(t, []string{"bottom"}, a.Positionals)
}

func TestParseInputFlagNeedsEquals(t *testing.T) {
	registry.Register(stub("zz"))

	_, a, err := ParseInput("zz --stack sheet --timeout=1s")
	require.NoError(t, err)
	assert.Equal(t, "true", a.Get("stack"))
	assert.Equal(t, "1s", a.Get("timeout"))
	assert.Equal(t, []string{"sheet"}, a.Positionals)
}

func TestParseInputErrors(t *testing.T) {
	_, _, err := ParseInput("   ")
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, _, err = ParseInput("definitely-not-a-command")
	assert.EqualError(t, err, "unknown command: definitely-not-a-command")
}

func TestLoneDashesArePositional(t *testing.T) {
	a := parseArgs([]string{"--", "x"})
	assert.Equal(t, []string{"--", "x"}, a.Positionals)
	assert.Empty(t, a.Flags)
}
