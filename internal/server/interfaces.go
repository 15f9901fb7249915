// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transports managed by this
// package.
type Server interface {
	// RunServer serves until ctx ends or a termination signal arrives, then
	// shuts every listener down. It returns the first serving error.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting work and waits for in-flight work until ctx
	// ends.
	Shutdown(ctx context.Context) error
}
