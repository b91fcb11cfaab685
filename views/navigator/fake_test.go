package navigator

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/views/components"
	"github.com/valesdev/partita/views/view"
	"github.com/valesdev/partita/views/viewstack"
)

// recorder is a mounted screen that logs every hook it receives.
type recorder struct {
	name string
	log  *[]string
	veto bool
}

func (r *recorder) record(e view.Event) {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s", e.Type, r.name))
}

func (r *recorder) OnCreate(e view.Event) { r.record(e) }
func (r *recorder) OnShow(e view.Event)   { r.record(e) }
func (r *recorder) OnHide(e view.Event)   { r.record(e) }
func (r *recorder) OnDestroy(e view.Event) view.Decision {
	r.record(e)
	if r.veto {
		return view.Veto
	}
	return view.Proceed
}

// fakeHost mounts a recorder per screen; the recorder is named after
// the "id" param, or the component name when absent.
type fakeHost struct {
	log       []string
	mounted   map[string]*recorder
	unmounted []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{mounted: map[string]*recorder{}}
}

func (h *fakeHost) Mount(stack string, sc *viewstack.Screen) {
	name := sc.Params.String("id")
	if name == "" {
		name = sc.Name
	}
	h.mounted[sc.Key] = &recorder{name: name, log: &h.log}
}

func (h *fakeHost) Unmount(stack string, sc *viewstack.Screen) {
	delete(h.mounted, sc.Key)
	h.unmounted = append(h.unmounted, sc.Key)
}

func (h *fakeHost) Lookup(key string) (view.Hooks, bool) {
	r, ok := h.mounted[key]
	if !ok {
		return nil, false
	}
	return r, true
}

// vetoKey makes the instance mounted under key veto its destruction.
func (h *fakeHost) vetoKey(key string) {
	h.mounted[key].veto = true
}

func (h *fakeHost) reset() { h.log = nil }

func testRegistry() *components.Registry {
	f := func(view.Context, view.Params) (view.View, tea.Cmd) { return nil, nil }
	return components.New().
		Register("home", f).
		Register("detail", f).
		Register("settings", f)
}
