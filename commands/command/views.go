// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valesdev/partita/args"
	"github.com/valesdev/partita/registry"
	"github.com/valesdev/partita/views/view"
)

const stackFlag = "stack"

// params turns every flag except --stack into a screen parameter.
func params(a args.Args) view.Params {
	p := view.Params{}
	for k, v := range a.Flags {
		if k != stackFlag {
			p[k] = v
		}
	}
	return p
}

type Push struct{}

func (Push) Name() string        { return "push" }
func (Push) Description() string { return "Push a screen onto a stack" }
func (Push) Usage() string       { return "<component> [--stack=name] [--key=value...]" }

func (Push) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) == 0 {
		return nil, errors.New("usage: push <component>")
	}
	return nil, ctx.System.Views.Push(a.Get(stackFlag), a.Positionals[0], params(a))
}

type Replace struct{}

func (Replace) Name() string        { return "replace" }
func (Replace) Description() string { return "Replace the top screen of a stack" }
func (Replace) Usage() string       { return "<component> [--stack=name] [--key=value...]" }

func (Replace) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) == 0 {
		return nil, errors.New("usage: replace <component>")
	}
	return nil, ctx.System.Views.Replace(a.Get(stackFlag), a.Positionals[0], params(a))
}

type Pop struct{}

func (Pop) Name() string        { return "pop" }
func (Pop) Description() string { return "Pop screens off a stack" }
func (Pop) Usage() string       { return "[steps] [--stack=name]" }

func (Pop) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	steps, err := a.Int(0, 1)
	if err != nil {
		return nil, err
	}
	ctx.System.Views.Pop(a.Get(stackFlag), steps)
	return nil, nil
}

type Clear struct{}

func (Clear) Name() string        { return "clear" }
func (Clear) Description() string { return "Truncate a stack to its root screen" }
func (Clear) Usage() string       { return "[--stack=name]" }

func (Clear) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	ctx.System.Views.Clear(a.Get(stackFlag))
	return nil, nil
}

// stackOp runs fn with the stack named by the first positional.
type stackOp struct {
	name, desc string
	fn         func(ctx registry.Context, stack string)
}

func (s stackOp) Name() string        { return s.name }
func (s stackOp) Description() string { return s.desc }
func (s stackOp) Usage() string       { return "<stack>" }

func (s stackOp) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) == 0 {
		return nil, errors.New("usage: " + s.name + " <stack>")
	}
	s.fn(ctx, a.Positionals[0])
	return nil, nil
}

func init() {
	register(Push{}, "open")
	register(Replace{})
	register(Pop{})
	register(Clear{})
	register(stackOp{name: "stack show", desc: "Make a stack visible on top", fn: func(ctx registry.Context, stack string) {
		ctx.System.Views.Show(stack)
	}})
	register(stackOp{name: "stack hide", desc: "Remove a stack from the visible list", fn: func(ctx registry.Context, stack string) {
		ctx.System.Views.Hide(stack)
	}})
	register(stackOp{name: "stack add", desc: "Register an empty stack", fn: func(ctx registry.Context, stack string) {
		ctx.System.Views.RegisterStack(stack)
	}})
	register(stackOp{name: "stack rm", desc: "Unregister a stack and drop its screens", fn: func(ctx registry.Context, stack string) {
		ctx.System.Views.UnregisterStack(stack)
	}})
}
