// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/network"
	"github.com/MKhiriev/termplay/internal/queue"
	"github.com/MKhiriev/termplay/internal/state"
	"github.com/MKhiriev/termplay/internal/termination"
)

// Store is the client event loop. It is the only mutator of the application
// state and of the connection, so neither is locked.
type Store struct {
	state  state.ApplicationState
	conn   network.Connection
	events <-chan network.Event

	inputs     *queue.Queue[state.Input]
	states     *queue.Queue[state.ApplicationState]
	connector  network.Connector
	terminator *termination.Terminator
	log        *logger.Logger
}

// NewStore creates a Store that reads inputs, publishes to states and opens
// connections through connector. The Store owns inputs and closes it when
// Run returns.
func NewStore(
	connector network.Connector,
	inputs *queue.Queue[state.Input],
	states *queue.Queue[state.ApplicationState],
	terminator *termination.Terminator,
	log *logger.Logger,
) *Store {
	return &Store{
		inputs:     inputs,
		states:     states,
		connector:  connector,
		terminator: terminator,
		log:        log,
	}
}

// Run publishes the initial snapshot and then serves one source per
// iteration: the interrupt, the next input or, while connected, the next
// server event. It returns the interrupt reason, or [ErrListenerGone] when
// the UI stopped receiving snapshots.
//
// Connection attempts use ctx without its cancellation: an interrupt is
// noticed only after an in-flight connect finished.
func (s *Store) Run(ctx context.Context) (termination.Interrupted, error) {
	defer s.inputs.Close()
	defer s.dropConnection()

	if err := s.publish(); err != nil {
		return 0, err
	}

	for {
		select {
		case <-s.terminator.Done():
			reason := s.terminator.Reason()
			s.log.Info().Str("reason", reason.Error()).Msg("store loop interrupted")
			return reason, nil

		case <-s.inputs.Ready():
			input, ok := s.inputs.TryRecv()
			if !ok {
				continue
			}
			exit, err := s.handleInput(ctx, input)
			if err != nil {
				return 0, err
			}
			if exit {
				return s.terminator.Reason(), nil
			}

		case ev, ok := <-s.events:
			if err := s.handleEvent(ev, ok); err != nil {
				return 0, err
			}
		}
	}
}

func (s *Store) handleInput(ctx context.Context, input state.Input) (bool, error) {
	switch in := input.(type) {
	case state.Edit:
		s.state = s.state.WithField(in.Field, in.Value)
		return false, s.publish()
	case state.Action:
		return s.handleAction(ctx, in)
	default:
		s.log.Warn().Msgf("unexpected input %T", input)
		return false, nil
	}
}

func (s *Store) handleAction(ctx context.Context, action state.Action) (bool, error) {
	s.log.Debug().Stringer("action", action).Stringer("status", s.state.ConnectionStatus).Msg("action received")

	switch action {
	case state.ActionNone:
		return false, nil
	case state.ActionShowRegister:
		s.state.IsRegistering = true
	case state.ActionShowLogin:
		s.state.IsRegistering = false
	case state.ActionPreExit:
		s.state.ShowExitConfirmation = true
	case state.ActionCancelExit:
		s.state.ShowExitConfirmation = false
	case state.ActionExit:
		s.terminator.Terminate(termination.UserInterrupt)
		return true, nil
	case state.ActionDisconnect:
		s.dropConnection()
		s.state.ConnectionStatus, _ = s.state.ConnectionStatus.On(state.DisconnectRequested{})
	case state.ActionRegister, state.ActionLogin:
		return false, s.connectAndSend(ctx, action)
	default:
		s.log.Warn().Stringer("action", action).Msg("unknown action")
		return false, nil
	}

	return false, s.publish()
}

// connectAndSend opens a connection for action and sends its command. It is
// a no-op while a connection is being opened or is already open.
func (s *Store) connectAndSend(ctx context.Context, action state.Action) error {
	next, err := s.state.ConnectionStatus.On(state.ConnectRequested{})
	if err != nil {
		s.log.Debug().Err(err).Stringer("action", action).Msg("connect ignored")
		return nil
	}

	s.state.ConnectionStatus = next
	s.state.ErrorMessage = ""
	if err = s.publish(); err != nil {
		return err
	}

	conn, err := s.connector.Connect(context.WithoutCancel(ctx))
	if err != nil {
		s.log.Warn().Err(err).Stringer("action", action).Msg("connect failed")
		s.state.ConnectionStatus, _ = s.state.ConnectionStatus.On(state.HandshakeFailed{Message: err.Error()})
		s.state.ErrorMessage = s.state.ConnectionStatus.Message
		return s.publish()
	}

	s.conn = conn
	s.events = conn.Events()
	s.state.ConnectionStatus, _ = s.state.ConnectionStatus.On(state.HandshakeSucceeded{})
	if err = s.publish(); err != nil {
		return err
	}

	cmd, ok := s.state.CommandFor(action)
	if !ok {
		return nil
	}
	if err = s.conn.Send(cmd); err != nil {
		s.log.Warn().Err(err).Str("command", cmd.Name()).Msg("send failed, dropping connection")
		return s.reset()
	}
	return nil
}

func (s *Store) handleEvent(ev network.Event, ok bool) error {
	switch {
	case !ok:
		s.log.Info().Msg("server closed the connection")
		return s.reset()
	case ev.Err != nil:
		s.log.Warn().Err(ev.Err).Msg("connection failed")
		return s.reset()
	case ev.Event == nil:
		s.log.Warn().Msg("event without payload, dropping connection")
		return s.reset()
	}

	s.log.Debug().Str("event", ev.Event.Name()).Msg("server event received")

	next, err := s.state.ConnectionStatus.On(state.ResponseReceived{})
	if err != nil {
		s.log.Warn().Err(err).Msg("response outside an exchange")
		next, _ = s.state.ConnectionStatus.On(state.DisconnectRequested{})
	}

	s.state = state.ApplyEvent(s.state, ev.Event)
	s.state.ConnectionStatus = next
	// The exchange is over; closing here keeps the answer on screen instead of
	// the reset a later end of stream would cause.
	s.dropConnection()
	return s.publish()
}

// reset drops the connection and returns to the startup state.
func (s *Store) reset() error {
	if _, err := s.state.ConnectionStatus.On(state.StreamClosed{}); err != nil {
		s.log.Warn().Err(err).Msg("stream closed outside an exchange")
	}
	s.dropConnection()
	s.state = state.ApplicationState{}
	return s.publish()
}

func (s *Store) dropConnection() {
	if s.conn == nil {
		return
	}
	if err := s.conn.Close(); err != nil {
		s.log.Debug().Err(err).Msg("close connection")
	}
	s.conn = nil
	s.events = nil
}

func (s *Store) publish() error {
	if err := s.states.Send(s.state); err != nil {
		return fmt.Errorf("%w: %w", ErrListenerGone, err)
	}
	return nil
}
