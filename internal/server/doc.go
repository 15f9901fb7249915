// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the companion server's listeners.
//
// It owns the lifecycle of the TLS line listener and the HTTP confirmation
// listener: startup, signal handling and graceful shutdown of every enabled
// transport.
package server
