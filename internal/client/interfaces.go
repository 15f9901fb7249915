// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/termplay/internal/queue"
	"github.com/MKhiriev/termplay/internal/state"
	"github.com/MKhiriev/termplay/internal/termination"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the lifecycle contract of a runnable client application.
type Client interface {
	// Run blocks until the application is interrupted and reports why.
	Run(ctx context.Context) (termination.Interrupted, error)
}

// UI renders snapshots received from states and sends user intent through
// the dispatcher. Run returns when ctx is done or the user quits the UI.
type UI interface {
	Run(ctx context.Context, states *queue.Queue[state.ApplicationState], dispatcher *state.Dispatcher) error
}
