package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHookTypeString(t *testing.T) {
	assert.Equal(t, "create", HookCreate.String())
	assert.Equal(t, "show", HookShow.String())
	assert.Equal(t, "hide", HookHide.String())
	assert.Equal(t, "destroy", HookDestroy.String())
	assert.Equal(t, "unknown", HookType(42).String())
}

func TestNopHooksProceed(t *testing.T) {
	var h Hooks = NopHooks{}
	assert.Equal(t, Proceed, h.OnDestroy(Event{Type: HookDestroy}))
}

func TestParamsString(t *testing.T) {
	p := Params{"title": "hello", "n": 3}
	assert.Equal(t, "hello", p.String("title"))
	assert.Equal(t, "", p.String("n"))
	assert.Equal(t, "", Params(nil).String("title"))
}
