// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionStatus_On(t *testing.T) {
	tests := []struct {
		name    string
		from    ConnectionStatus
		event   LifecycleEvent
		want    ConnectionStatus
		wantErr bool
	}{
		{name: "idle connects", from: Idle(), event: ConnectRequested{}, want: Connecting()},
		{name: "errored retries", from: Errored("boom"), event: ConnectRequested{}, want: Connecting()},
		{name: "connecting ignores connect", from: Connecting(), event: ConnectRequested{}, want: Connecting(), wantErr: true},
		{name: "connected ignores connect", from: Connected(), event: ConnectRequested{}, want: Connected(), wantErr: true},

		{name: "handshake succeeds", from: Connecting(), event: HandshakeSucceeded{}, want: Connected()},
		{name: "idle never jumps to connected", from: Idle(), event: HandshakeSucceeded{}, want: Idle(), wantErr: true},
		{name: "errored never jumps to connected", from: Errored("x"), event: HandshakeSucceeded{}, want: Errored("x"), wantErr: true},

		{name: "handshake fails", from: Connecting(), event: HandshakeFailed{Message: "connection refused"}, want: Errored("connection refused")},
		{name: "handshake fails without text", from: Connecting(), event: HandshakeFailed{}, want: Errored("connection failed")},
		{name: "failure outside connecting", from: Connected(), event: HandshakeFailed{Message: "x"}, want: Connected(), wantErr: true},

		{name: "stream closes", from: Connected(), event: StreamClosed{}, want: Idle()},
		{name: "stream close when idle", from: Idle(), event: StreamClosed{}, want: Idle(), wantErr: true},
		{name: "response received", from: Connected(), event: ResponseReceived{}, want: Idle()},
		{name: "response while connecting", from: Connecting(), event: ResponseReceived{}, want: Connecting(), wantErr: true},

		{name: "disconnect from connected", from: Connected(), event: DisconnectRequested{}, want: Idle()},
		{name: "disconnect from errored", from: Errored("x"), event: DisconnectRequested{}, want: Idle()},
		{name: "disconnect from idle", from: Idle(), event: DisconnectRequested{}, want: Idle()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.On(tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectionStatus_ZeroIsIdle(t *testing.T) {
	var s ConnectionStatus
	assert.Equal(t, Idle(), s)
	assert.Equal(t, "idle", s.String())
	assert.Equal(t, "errored: no route to host", Errored("no route to host").String())
	assert.Equal(t, "connecting", Connecting().String())
	assert.Equal(t, "connected", Connected().String())
}
