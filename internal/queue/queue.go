// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue provides an unbounded FIFO used as the channel between the
// client UI and the Store loop.
//
// Any number of goroutines may Send; exactly one goroutine consumes, either
// by selecting on Ready and calling TryRecv, or by calling Recv. Sending never
// blocks. Once the consumer calls Close, further sends fail with ErrClosed so
// producers learn that nobody is listening anymore.
package queue

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send after the consumer closed the queue and by
// Recv once the queue is closed and drained.
var ErrClosed = errors.New("queue is closed")

// Queue is an unbounded multi-producer, single-consumer FIFO.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	// ready holds one token while items is non-empty or the queue is closed.
	ready chan struct{}
}

// New returns an empty open queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{ready: make(chan struct{}, 1)}
}

// Send appends v. It never blocks.
func (q *Queue[T]) Send(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	q.items = append(q.items, v)
	q.signal()
	return nil
}

// Ready returns a channel that becomes readable when an item may be taken
// with TryRecv or the queue was closed. Only the consumer may read from it.
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}

// TryRecv pops the oldest item. It reports false when the queue is empty.
func (q *Queue[T]) TryRecv() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		if q.closed {
			q.signal()
		}
		return zero, false
	}

	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	if len(q.items) > 0 || q.closed {
		q.signal()
	}
	return v, true
}

// Recv blocks until an item is available, the queue is closed and drained,
// or ctx is done.
func (q *Queue[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	for {
		if v, ok := q.TryRecv(); ok {
			return v, nil
		}
		if q.Closed() {
			return zero, ErrClosed
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-q.ready:
		}
	}
}

// Close marks the queue closed. Items already queued can still be received.
// Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.signal()
}

// Closed reports whether Close was called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.closed
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// signal must be called with mu held.
func (q *Queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
