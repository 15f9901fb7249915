// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session serves one line-protocol connection: it reads user
// commands, runs them against the account service and writes one server
// event per command.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/network"
	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/internal/utils"
)

// Handler runs sessions. One Handler serves all connections.
type Handler struct {
	accounts    service.AccountService
	idleTimeout time.Duration
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns a Handler. A session that sends nothing for
// idleTimeout is closed; zero disables the limit.
func NewHandler(accounts service.AccountService, idleTimeout time.Duration, logger *logger.Logger) *Handler {
	return &Handler{
		accounts:    accounts,
		idleTimeout: idleTimeout,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Serve handles conn until the peer hangs up, sends a malformed line, stays
// idle too long or ctx ends. It closes conn.
func (h *Handler) Serve(ctx context.Context, conn net.Conn) error {
	traceID := h.ids.Generate()
	log := h.logger.WithTraceID(traceID)
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("session started")

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), network.MaxLineSize)
	w := bufio.NewWriter(conn)

	for {
		if h.idleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(h.idleTimeout))
		}

		if !scanner.Scan() {
			err := scanner.Err()
			switch {
			case err == nil, ctx.Err() != nil:
				log.Debug().Msg("session ended")
				return nil
			case errors.Is(err, os.ErrDeadlineExceeded):
				log.Debug().Msg("session idle, closing")
				return nil
			default:
				log.Err(err).Msg("session read failed")
				return fmt.Errorf("read command: %w", err)
			}
		}

		cmd, err := protocol.DecodeUserCommand(scanner.Bytes())
		if err != nil {
			log.Warn().Err(err).Msg("malformed command, closing session")
			return err
		}

		ev := h.handle(ctx, cmd)
		if err = writeEvent(w, ev); err != nil {
			log.Err(err).Msg("reply failed")
			return err
		}
	}
}

func writeEvent(w *bufio.Writer, ev protocol.ServerEvent) error {
	line, err := protocol.EncodeServerEvent(ev)
	if err != nil {
		return err
	}
	if _, err = w.Write(line); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush event: %w", err)
	}
	return nil
}

func (h *Handler) handle(ctx context.Context, cmd protocol.UserCommand) protocol.ServerEvent {
	log := logger.FromContext(ctx)

	switch c := cmd.(type) {
	case protocol.RegisterCommand:
		_, err := h.accounts.Register(ctx, c.Login, c.Password)
		log.Info().Str("command", c.Name()).Err(err).Msg("command handled")
		return registerResponse(err)
	case protocol.LoginCommand:
		_, err := h.accounts.Login(ctx, c.Login, c.Password)
		log.Info().Str("command", c.Name()).Err(err).Msg("command handled")
		return loginResponse(err)
	default:
		// the codec only yields the two commands above
		return protocol.LoginResponseEvent{Success: false, Message: msgInternal}
	}
}
