// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front end of the terminal client. It shows
// the snapshots published by the Store and sends user intent back through a
// [state.Dispatcher].
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/queue"
	"github.com/MKhiriev/termplay/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the bubbletea program.
type TUI struct {
	log  *logger.Logger
	opts []tea.ProgramOption
}

// New returns a TUI. Without options the program takes the alternate
// screen of the controlling terminal.
func New(log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{log: log, opts: opts}
}

// Run shows snapshots from states until ctx is done.
func (t *TUI) Run(ctx context.Context, states *queue.Queue[state.ApplicationState], dispatcher *state.Dispatcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(dispatcher), t.opts...)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			s, err := states.Recv(ctx)
			if err != nil {
				p.Quit()
				return
			}
			p.Send(snapshotMsg{state: s})
		}
	}()

	_, err := p.Run()
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.log.Error().Err(err).Msg("ui stopped with error")
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
