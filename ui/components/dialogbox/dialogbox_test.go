package dialogbox

import (
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"

	"github.com/valesdev/partita/overlays/dialog"
	"github.com/valesdev/partita/views/view"
)

func TestRenderShowsEverything(t *testing.T) {
	item := dialog.Item{
		Title:      "Editor",
		Content:    "Discard changes?",
		Component:  &view.Descriptor{Name: "warning"},
		Buttons:    []dialog.Button{{Value: false, Label: "No"}, {Value: true, Label: "Yes", Highlighted: true}},
		Cancelable: true,
	}
	out := Render(item, 0, nil)
	for _, s := range []string{"Editor", "Discard changes?", "[warning]", "[ No ]", "[ Yes ]", "esc cancel"} {
		assert.Contains(t, out, s)
	}
}

func TestRenderNonCancelableOmitsEsc(t *testing.T) {
	out := Render(dialog.Item{Content: "x"}, 0, nil)
	assert.NotContains(t, out, "esc")
}

func TestDefaultFocus(t *testing.T) {
	assert.Equal(t, 0, DefaultFocus(dialog.Item{}))
	assert.Equal(t, 1, DefaultFocus(dialog.Item{Buttons: []dialog.Button{{Label: "No"}, {Label: "Yes", Highlighted: true}}}))
}

func TestRenderMarksButtonsForScan(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	item := dialog.Item{Buttons: []dialog.Button{{Label: "No"}, {Label: "Yes"}}}
	marked := Render(item, 0, zones)
	plain := Render(item, 0, nil)

	assert.NotEqual(t, plain, marked)
	assert.Equal(t, plain, zones.Scan(marked))
}

func TestButtonZoneIsStable(t *testing.T) {
	assert.Equal(t, ButtonZone(1), ButtonZone(1))
	assert.NotEqual(t, ButtonZone(0), ButtonZone(1))
}
