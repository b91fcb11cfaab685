package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2*time.Second, cfg.Toast.Timeout.Duration)
	assert.Equal(t, DefaultPtrThreshold, cfg.Ptr.Threshold)
	assert.Nil(t, cfg.Loading.Component)
	assert.Equal(t, "OK", cfg.Dialog.OK.Resolve("OK"))
}

func TestLoadTOML(t *testing.T) {
	src := `
locale = "de"

[dialog]
ok = "Alright"

[toast]
timeout = "3500ms"

[loading.component]
name = "dots"

[loading.component.props]
color = "blue"
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "Alright", cfg.Dialog.OK.Resolve("OK"))
	assert.True(t, cfg.Dialog.Yes.IsZero())
	assert.Equal(t, 3500*time.Millisecond, cfg.Toast.Timeout.Duration)
	require.NotNil(t, cfg.Loading.Component)
	assert.Equal(t, "dots", cfg.Loading.Component.Name)
	assert.Equal(t, "blue", cfg.Loading.Component.Props.String("color"))
	assert.Equal(t, DefaultPtrThreshold, cfg.Ptr.Threshold)
}

func TestLoadYAMLByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partita.yml")
	src := "dialog:\n  yes: Yep\n  no: Nope\nptr:\n  threshold: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Yep", cfg.Dialog.Yes.Resolve("Yes"))
	assert.Equal(t, "Nope", cfg.Dialog.No.Resolve("No"))
	assert.Equal(t, 80, cfg.Ptr.Threshold)
	assert.Equal(t, 2*time.Second, cfg.Toast.Timeout.Duration)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Toast, cfg.Toast)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[toast]\ntimeout = \"soon\"\n"), FormatTOML)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PARTITA_LOCALE", "zh-Hans")
	t.Setenv("PARTITA_DIALOG_OK", "Fine")
	t.Setenv("PARTITA_TOAST_TIMEOUT", "5s")
	t.Setenv("PARTITA_LOADING_COMPONENT", "bar")
	t.Setenv("PARTITA_PTR_THRESHOLD", "not-a-number")

	cfg, err := LoadFromReader(strings.NewReader(""), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "zh-Hans", cfg.Locale)
	assert.Equal(t, "Fine", cfg.Dialog.OK.Text)
	assert.Equal(t, 5*time.Second, cfg.Toast.Timeout.Duration)
	assert.Equal(t, "bar", cfg.Loading.Component.Name)
	assert.Equal(t, DefaultPtrThreshold, cfg.Ptr.Threshold)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("a/b.YAML"))
	assert.Equal(t, FormatYAML, FormatOf("c.yml"))
	assert.Equal(t, FormatTOML, FormatOf("c.toml"))
	assert.Equal(t, FormatTOML, FormatOf("noext"))
}

func TestLabelResolve(t *testing.T) {
	assert.Equal(t, "x", Label{}.Resolve("x"))
	assert.Equal(t, "lit", Text("lit").Resolve("x"))

	n := 0
	p := Producer(func() string { n++; return "dyn" })
	assert.Equal(t, "dyn", p.Resolve("x"))
	assert.Equal(t, "dyn", p.Func("x")())
	assert.Equal(t, 2, n, "producers are asked on every use")

	empty := Producer(func() string { return "" })
	assert.Equal(t, "x", empty.Resolve("x"))
}

func TestEmptyLiteralLabelIsKept(t *testing.T) {
	assert.True(t, Label{}.IsZero())
	assert.False(t, Text("").IsZero())
	assert.Equal(t, "", Text("").Resolve("OK"))
	assert.Equal(t, "", Text("").Func("OK")())

	cfg, err := LoadFromReader(strings.NewReader("[dialog]\nok = \"\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Dialog.OK.Resolve("OK"))
	assert.Equal(t, "Yes", cfg.Dialog.Yes.Resolve("Yes"))
}

func TestEmptyEnvLabelIsKept(t *testing.T) {
	t.Setenv("PARTITA_DIALOG_NO", "")

	cfg, err := LoadFromReader(strings.NewReader("[dialog]\nno = \"Nope\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Dialog.No.Resolve("No"))
}

func TestEmptyLabelSurvivesLocale(t *testing.T) {
	cfg := Default()
	cfg.Locale = "zh-Hans"
	cfg.Dialog.OK = Text("")

	labels := cfg.Labels()
	assert.Equal(t, "", labels.OK.Resolve("OK"))
	assert.Equal(t, "是", labels.Yes.Resolve("Yes"))
}

func TestLocalizedLabels(t *testing.T) {
	cfg := Default()
	cfg.Locale = "zh-Hans"
	cfg.Dialog.No = Text("算了")

	labels := cfg.Labels()
	assert.Equal(t, "确定", labels.OK.Resolve("OK"))
	assert.Equal(t, "是", labels.Yes.Resolve("Yes"))
	assert.Equal(t, "算了", labels.No.Resolve("No"))
}

func TestLabelsWithoutLocaleStayUnset(t *testing.T) {
	labels := Default().Labels()
	assert.True(t, labels.OK.IsZero())
	assert.Equal(t, "OK", labels.OK.Resolve("OK"))
}

func TestLocalizedUnknownMessageFallsBack(t *testing.T) {
	loc := i18n.NewLocalizer(Bundle(), language.German.String())
	assert.Equal(t, "Nein", Localized(loc, MsgNo).Resolve("No"))
	assert.Equal(t, "fallback", Localized(loc, "Missing").Resolve("fallback"))
}
