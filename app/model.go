// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/valesdev/partita"
	_ "github.com/valesdev/partita/commands/command" // registers the ":" commands
	"github.com/valesdev/partita/config"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/scheduler"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/commandinput"
	"github.com/valesdev/partita/views/components"
	helpview "github.com/valesdev/partita/views/help"
	loadingview "github.com/valesdev/partita/views/loading"
	"github.com/valesdev/partita/views/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Rows taken by the help bar, the body frame and the stack bar.
	chromeHeight = 3 + 2 + 1
)

func l() *partitalog.Logger {
	return partitalog.L().Component("app")
}

// Model is the bubbletea model hosting a partita System.
type Model struct {
	sys      *partita.System
	sched    *scheduler.Tea
	host     *Host
	viewport viewport.Model
	printer  *message.Printer
	zones    *zone.Manager

	commandInput *commandinput.Model
	loading      *loadingview.Model

	width, height int
	dialogKey     string
	focus         int
	frame         int
	quitting      bool
}

// New wires a System to a bubbletea host. The help screen is added to reg
// and the default stack is made visible.
func New(reg *components.Registry, opts *config.Options) (*Model, error) {
	if opts == nil {
		opts = config.Default()
	}
	reg.Register(view.NameHelp, helpview.Factory)

	sched := scheduler.NewTea()
	host := NewHost()
	sys, err := partita.New(partita.Deps{Registry: reg, Host: host, Scheduler: sched}, opts)
	if err != nil {
		return nil, err
	}
	sys.Views.Show(view.DefaultStack)

	tag := language.English
	if opts.Locale != "" {
		tag = language.Make(opts.Locale)
	}

	m := &Model{
		sys:          sys,
		sched:        sched,
		host:         host,
		viewport:     viewport.New(defaultWidth-4, defaultHeight-chromeHeight),
		printer:      message.NewPrinter(tag),
		zones:        zone.New(),
		commandInput: commandinput.New(registry.Suggest),
		loading:      loadingview.New(),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	host.width, host.height = m.viewport.Width, m.viewport.Height
	return m, nil
}

// System exposes the orchestration services, e.g. to push the first screen.
func (m *Model) System() *partita.System { return m.sys }

// Close releases the mouse zone tracker.
func (m *Model) Close() { m.zones.Close() }

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.host.Cmd(), m.sched.Cmd())
}

// topView returns the live instance on top of the frontmost stack.
func (m *Model) topView() view.View {
	sc, ok := m.sys.Views.Top("")
	if !ok {
		return nil
	}
	v, _ := m.host.Instance(sc.Key)
	return v
}
