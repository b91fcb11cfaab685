// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/valesdev/partita"
	"github.com/valesdev/partita/app"
	"github.com/valesdev/partita/config"
	partitalog "github.com/valesdev/partita/utils/log"
	"github.com/valesdev/partita/views/components"
	detailview "github.com/valesdev/partita/views/detail"
	editorview "github.com/valesdev/partita/views/editor"
	homeview "github.com/valesdev/partita/views/home"
	"github.com/valesdev/partita/views/view"
)

// Build variables - set by ldflags during build.
var version = "dev"

func main() {
	var configPath string
	var script, showVersion bool

	flag.StringVar(&configPath, "config", defaultConfigPath(), "config file (.toml or .yaml)")
	flag.BoolVar(&script, "script", false, "run the scripted session instead of the TUI")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("partita-demo %s\n", version)
		return
	}

	logPath := partitalog.Init("partita")
	defer partitalog.Sync()

	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if script || !tty {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runScript(ctx, os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v (log: %s)\n", err, logPath)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "partita", "config.toml")
}

// demoComponents registers the demo screens. The screens read the System
// through sys since it is created after the registry.
func demoComponents(sys func() *partita.System) *components.Registry {
	return components.New().
		Register(homeview.Name, homeview.Factory(sys)).
		Register(detailview.Name, detailview.Factory).
		Register(editorview.Name, editorview.Factory(sys))
}

func runTUI(opts *config.Options) error {
	var sys *partita.System
	m, err := app.New(demoComponents(func() *partita.System { return sys }), opts)
	if err != nil {
		return err
	}
	defer m.Close()
	sys = m.System()

	if err := sys.Views.Push(view.DefaultStack, homeview.Name, nil); err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
