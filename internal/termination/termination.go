// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package termination provides the interrupt broadcast shared by the Store
// loop, the UI and process signal handling.
//
// A Terminator wraps a cancellable context: every party watches
// Context().Done() and the first Terminate call decides the reason that all
// of them observe.
package termination

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// Interrupted is the reason the process is shutting down.
type Interrupted int

const (
	// UserInterrupt means the user asked to exit from the UI.
	UserInterrupt Interrupted = iota + 1
	// OSInterrupt means the process received SIGINT or SIGTERM.
	OSInterrupt
)

// Error implements error so the reason can travel as a context cause.
func (i Interrupted) Error() string {
	switch i {
	case UserInterrupt:
		return "interrupted by user"
	case OSInterrupt:
		return "interrupted by signal"
	default:
		return "interrupted"
	}
}

// Terminator broadcasts a single interrupt to every holder of its context.
type Terminator struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New returns a Terminator derived from parent. Cancelling parent without a
// reason is observed as [OSInterrupt].
func New(parent context.Context) *Terminator {
	ctx, cancel := context.WithCancelCause(parent)
	return &Terminator{ctx: ctx, cancel: cancel}
}

// Terminate signals reason to every listener. Only the first call counts.
func (t *Terminator) Terminate(reason Interrupted) {
	t.cancel(reason)
}

// Context is done once Terminate was called.
func (t *Terminator) Context() context.Context {
	return t.ctx
}

// Done is shorthand for Context().Done().
func (t *Terminator) Done() <-chan struct{} {
	return t.ctx.Done()
}

// Reason returns the interrupt reason, or 0 while still running.
func (t *Terminator) Reason() Interrupted {
	return ReasonOf(t.ctx)
}

// ReasonOf extracts the interrupt reason carried by ctx. A context cancelled
// for any other cause reports [OSInterrupt]; a live context reports 0.
func ReasonOf(ctx context.Context) Interrupted {
	if ctx.Err() == nil {
		return 0
	}

	var reason Interrupted
	if errors.As(context.Cause(ctx), &reason) {
		return reason
	}
	return OSInterrupt
}

// NotifySignals terminates with [OSInterrupt] on SIGINT or SIGTERM. The
// returned function stops listening.
func (t *Terminator) NotifySignals() (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			t.Terminate(OSInterrupt)
		case <-t.ctx.Done():
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
