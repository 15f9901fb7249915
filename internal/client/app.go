// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/network"
	"github.com/MKhiriev/termplay/internal/queue"
	"github.com/MKhiriev/termplay/internal/state"
	"github.com/MKhiriev/termplay/internal/termination"
	"golang.org/x/sync/errgroup"
)

// App runs the Store and the UI as two concurrent tasks joined by the input
// queue, the state queue and one [termination.Terminator].
type App struct {
	connector network.Connector
	ui        UI
	log       *logger.Logger
}

// NewApp wires an App around connector and ui.
func NewApp(connector network.Connector, ui UI, log *logger.Logger) *App {
	return &App{connector: connector, ui: ui, log: log}
}

// NewConnector builds the connector described by cfg: the trust anchor is
// loaded from disk and every connect is bounded by the configured timeout.
func NewConnector(cfg config.Client, log *logger.Logger) (network.Connector, error) {
	anchor, err := network.LoadTrustAnchor(cfg.TrustAnchorPath)
	if err != nil {
		return nil, fmt.Errorf("load trust anchor: %w", err)
	}

	connector := &network.TCPConnector{
		Dialer: &network.Dialer{RootCAs: anchor, Logger: log},
		Host:   cfg.Host,
		Port:   cfg.Port,
	}
	return network.WithTimeout(connector, cfg.ConnectTimeout), nil
}

// Run blocks until the user exits or the process is signalled and returns
// the reason.
func (a *App) Run(ctx context.Context) (termination.Interrupted, error) {
	terminator := termination.New(ctx)
	stop := terminator.NotifySignals()
	defer stop()

	inputs := queue.New[state.Input]()
	states := queue.New[state.ApplicationState]()
	store := NewStore(a.connector, inputs, states, terminator, a.log)

	var reason termination.Interrupted
	g := new(errgroup.Group)

	g.Go(func() error {
		var err error
		reason, err = store.Run(terminator.Context())
		if errors.Is(err, ErrListenerGone) {
			// Only the UI closes the state queue, and it reports its own
			// failure if it had one.
			a.log.Debug().Err(err).Msg("ui went away before the store")
			return nil
		}
		if err != nil {
			terminator.Terminate(termination.OSInterrupt)
		}
		return err
	})

	g.Go(func() error {
		defer states.Close()
		// A UI that quits on its own still ends the Store.
		defer terminator.Terminate(termination.UserInterrupt)

		if err := a.ui.Run(terminator.Context(), states, state.NewDispatcher(inputs)); err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if reason == 0 {
		reason = terminator.Reason()
	}

	a.log.Info().Str("reason", reason.Error()).Err(err).Msg("client stopped")
	return reason, err
}
