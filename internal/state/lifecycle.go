// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by [ConnectionStatus.On] when the event is
// not allowed in the current phase.
var ErrInvalidTransition = errors.New("invalid connection transition")

// LifecycleEvent drives the connection lifecycle.
type LifecycleEvent interface {
	isLifecycleEvent()
}

type (
	// ConnectRequested: the user asked to log in or register.
	ConnectRequested struct{}
	// HandshakeSucceeded: the secure channel is up.
	HandshakeSucceeded struct{}
	// HandshakeFailed: resolution, dial or handshake failed.
	HandshakeFailed struct{ Message string }
	// StreamClosed: the remote closed the stream or it failed mid-session.
	StreamClosed struct{}
	// ResponseReceived: the server answered the pending command.
	ResponseReceived struct{}
	// DisconnectRequested: the user dropped the connection.
	DisconnectRequested struct{}
)

func (ConnectRequested) isLifecycleEvent()    {}
func (HandshakeSucceeded) isLifecycleEvent()  {}
func (HandshakeFailed) isLifecycleEvent()     {}
func (StreamClosed) isLifecycleEvent()        {}
func (ResponseReceived) isLifecycleEvent()    {}
func (DisconnectRequested) isLifecycleEvent() {}

// On returns the status that follows ev.
//
//	Idle|Errored --ConnectRequested--> Connecting
//	Connecting   --HandshakeSucceeded--> Connected
//	Connecting   --HandshakeFailed--> Errored
//	Connected    --StreamClosed|ResponseReceived--> Idle
//	any          --DisconnectRequested--> Idle
func (s ConnectionStatus) On(ev LifecycleEvent) (ConnectionStatus, error) {
	switch e := ev.(type) {
	case ConnectRequested:
		if s.Phase == PhaseIdle || s.Phase == PhaseErrored {
			return Connecting(), nil
		}
	case HandshakeSucceeded:
		if s.Phase == PhaseConnecting {
			return Connected(), nil
		}
	case HandshakeFailed:
		if s.Phase == PhaseConnecting {
			message := e.Message
			if message == "" {
				message = "connection failed"
			}
			return Errored(message), nil
		}
	case StreamClosed, ResponseReceived:
		if s.Phase == PhaseConnected {
			return Idle(), nil
		}
	case DisconnectRequested:
		return Idle(), nil
	}

	return s, fmt.Errorf("%w: %T in phase %s", ErrInvalidTransition, ev, s.Phase)
}
