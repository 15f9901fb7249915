// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the server components: context
// keys, confirmation tokens, id generation, HTTP helpers and TLS material for
// development setups.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type prevents collisions with other packages' keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey holds the trace id of an HTTP request or line session.
	TraceIDCtxKey = contextKey("traceID")
)

// WithTraceID returns ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by WithTraceID.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
