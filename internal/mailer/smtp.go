// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
)

type smtpMailer struct {
	addr    string
	from    string
	auth    smtp.Auth
	timeout time.Duration

	logger *logger.Logger
}

// NewSMTPMailer returns a Mailer talking to the relay at cfg.SMTPAddress.
// STARTTLS is used when offered; PLAIN auth when a username is configured.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	m := &smtpMailer{
		addr:    cfg.SMTPAddress,
		from:    cfg.From,
		timeout: cfg.Timeout,
		logger:  log,
	}
	if cfg.SMTPUsername != "" {
		host, _, _ := net.SplitHostPort(cfg.SMTPAddress)
		m.auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, host)
	}
	return m
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := m.send(ctx, msg); err != nil {
		m.logger.Err(err).Str("to", msg.To).Str("relay", m.addr).Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	m.logger.Debug().Str("to", msg.To).Msg("mail sent")
	return nil
}

func (m *smtpMailer) send(ctx context.Context, msg Message) error {
	host, _, err := net.SplitHostPort(m.addr)
	if err != nil {
		return fmt.Errorf("relay address: %w", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if m.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err = c.Auth(m.auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err = c.Mail(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err = c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(m.compose(msg)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}

	return c.Quit()
}

func (m *smtpMailer) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
