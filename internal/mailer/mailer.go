// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends one message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a plain-text mail.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"text"`
}

func (m Message) validate() error {
	if m.To == "" {
		return ErrInvalidMessage
	}
	return nil
}

// ConfirmationMessage is the mail sent after a registration.
func ConfirmationMessage(to, link string) Message {
	return Message{
		To:      to,
		Subject: "Confirm your email",
		Body:    "Please confirm your email address by clicking on the link below\n\n" + link + "\n",
	}
}

// New builds the mailer selected by cfg.Driver.
func New(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTPMailer(cfg, log), nil
	case config.MailDriverHTTP:
		return NewHTTPMailer(cfg, log)
	case config.MailDriverLog, "":
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
