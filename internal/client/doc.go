// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client runtime.
//
// The [Store] is the single owner of the application state and of the
// connection to the server. It consumes user inputs and server events one at
// a time and publishes a full snapshot after every change. The [App] runs the
// Store next to the UI and ties both to one interrupt broadcast.
package client
