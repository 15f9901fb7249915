// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/termplay/internal/state"

// snapshotMsg delivers a state published by the Store.
type snapshotMsg struct {
	state state.ApplicationState
}
