// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"time"
)

// TCPConnector binds a [Dialer] to one server address.
type TCPConnector struct {
	Dialer *Dialer
	Host   string
	Port   int
}

// Connect implements [Connector].
func (c *TCPConnector) Connect(ctx context.Context) (Connection, error) {
	conn, err := c.Dialer.Connect(ctx, c.Host, c.Port)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type timeoutConnector struct {
	next    Connector
	timeout time.Duration
}

// WithTimeout bounds every connect of next by timeout. A zero or negative
// timeout returns next unchanged.
func WithTimeout(next Connector, timeout time.Duration) Connector {
	if timeout <= 0 {
		return next
	}
	return &timeoutConnector{next: next, timeout: timeout}
}

func (c *timeoutConnector) Connect(ctx context.Context) (Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.next.Connect(ctx)
}

// LoadTrustAnchor reads every PEM certificate in path into a new pool.
func LoadTrustAnchor(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trust anchor: %w", err)
	}
	return ParseTrustAnchor(data)
}

// ParseTrustAnchor parses PEM-encoded certificates into a new pool.
func ParseTrustAnchor(data []byte) (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	found := false
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse trust anchor: %w", err)
		}
		pool.AddCert(cert)
		found = true
	}
	if !found {
		return nil, ErrNoCertificate
	}
	return pool, nil
}
