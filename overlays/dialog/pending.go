// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package dialog

import (
	"context"
	"errors"
	"sync"
)

// ErrCancelled is returned by Wait when a dialog was dismissed without
// choosing a button.
var ErrCancelled = errors.New("dialog cancelled")

// Result is what a dialog resolved with. Value is meaningful only when
// Cancelled is false.
type Result struct {
	Value     any
	Cancelled bool
}

// Pending is the result handle of a shown dialog. It resolves exactly once.
type Pending struct {
	key  string
	once sync.Once
	done chan struct{}
	res  Result
	cb   func(Result)
}

func newPending(key string, cb func(Result)) *Pending {
	return &Pending{key: key, done: make(chan struct{}), cb: cb}
}

func (p *Pending) Key() string { return p.key }

// Done is closed once the dialog resolves.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Outcome returns the result and whether the dialog has resolved yet.
func (p *Pending) Outcome() (Result, bool) {
	select {
	case <-p.done:
		return p.res, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the dialog resolves or ctx is done.
func (p *Pending) Wait(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		if p.res.Cancelled {
			return nil, ErrCancelled
		}
		return p.res.Value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve reports whether this call was the one that settled the result.
// The callback runs before Done is closed, so it precedes every Wait.
func (p *Pending) resolve(r Result) bool {
	settled := false
	p.once.Do(func() {
		p.res = r
		settled = true
	})
	if !settled {
		return false
	}
	if p.cb != nil {
		p.cb(r)
	}
	close(p.done)
	return true
}
