// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "github.com/MKhiriev/termplay/internal/queue"

// Dispatcher is the UI's handle on the input queue. Actions and edits share
// one FIFO, so an edit sent before an action is always applied first.
type Dispatcher struct {
	inputs *queue.Queue[Input]
}

// NewDispatcher wraps inputs.
func NewDispatcher(inputs *queue.Queue[Input]) *Dispatcher {
	return &Dispatcher{inputs: inputs}
}

// Dispatch queues a.
func (d *Dispatcher) Dispatch(a Action) error {
	return d.inputs.Send(a)
}

// Edit queues a new value for field f.
func (d *Dispatcher) Edit(f Field, value string) error {
	return d.inputs.Send(Edit{Field: f, Value: value})
}
