// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client's data model: the inputs the UI sends to the
// Store (actions and form edits), the application state snapshot the Store
// publishes back, and the connection lifecycle machine.
//
// Everything here is a plain value. The Store is the only mutator; each
// mutation produces a complete new [ApplicationState] which is published as a
// snapshot.
package state
