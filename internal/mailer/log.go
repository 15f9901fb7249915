// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/MKhiriev/termplay/internal/logger"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a Mailer that only logs messages. The confirmation
// link ends up in the server log, which is enough for local runs.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (l *logMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	l.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("mail not sent, log driver")
	return nil
}
