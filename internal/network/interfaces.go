// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"

	"github.com/MKhiriev/termplay/internal/protocol"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_mock.go -package=mock

// Connection is an open session with the server.
type Connection interface {
	// Events returns the stream of server events. The channel is closed
	// when the server ends the stream; a read or decode failure is
	// delivered as one last [Event] with Err set before the close.
	Events() <-chan Event
	// Send writes one command. Calls must not overlap.
	Send(cmd protocol.UserCommand) error
	// Close releases the connection. It is safe to call more than once.
	Close() error
}

// Connector opens connections to a fixed server.
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
}

// Resolver maps a host name to addresses.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}
