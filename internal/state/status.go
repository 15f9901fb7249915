// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// Phase is the connection lifecycle phase.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseConnecting
	PhaseConnected
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConnecting:
		return "connecting"
	case PhaseConnected:
		return "connected"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ConnectionStatus is the lifecycle phase plus, for [PhaseErrored], the
// human-readable cause. The zero value is Idle.
type ConnectionStatus struct {
	Phase   Phase
	Message string
}

func Idle() ConnectionStatus       { return ConnectionStatus{Phase: PhaseIdle} }
func Connecting() ConnectionStatus { return ConnectionStatus{Phase: PhaseConnecting} }
func Connected() ConnectionStatus  { return ConnectionStatus{Phase: PhaseConnected} }

// Errored returns an errored status carrying message.
func Errored(message string) ConnectionStatus {
	return ConnectionStatus{Phase: PhaseErrored, Message: message}
}

func (s ConnectionStatus) String() string {
	if s.Phase == PhaseErrored {
		return "errored: " + s.Message
	}
	return s.Phase.String()
}
