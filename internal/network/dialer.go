// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/MKhiriev/termplay/internal/logger"
)

// Dialer opens TLS connections validated against RootCAs only.
type Dialer struct {
	// Resolver defaults to net.DefaultResolver.
	Resolver Resolver
	// RootCAs holds the trust anchor. It must not be nil.
	RootCAs *x509.CertPool
	// ServerName overrides the name checked against the server
	// certificate. Empty means the host passed to Connect.
	ServerName string
	Logger     *logger.Logger
}

// Connect resolves host, dials the first reachable address on port and
// performs the TLS handshake. Errors wrap [ErrResolutionFailed],
// [ErrDialFailed] or [ErrHandshakeFailed].
func (d *Dialer) Connect(ctx context.Context, host string, port int) (*Conn, error) {
	log := d.logger()

	resolver := d.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	addrs, err := resolver.LookupHost(ctx, host)
	if err != nil {
		log.Debug().Err(err).Str("host", host).Msg("resolve failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrResolutionFailed, host, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s: no addresses", ErrResolutionFailed, host)
	}

	var (
		raw     net.Conn
		dialErr error
		dialer  net.Dialer
	)
	for _, addr := range addrs {
		raw, err = dialer.DialContext(ctx, "tcp", net.JoinHostPort(addr, strconv.Itoa(port)))
		if err == nil {
			break
		}
		dialErr = errors.Join(dialErr, err)
	}
	if raw == nil {
		log.Debug().Err(dialErr).Strs("addrs", addrs).Msg("dial failed")
		return nil, fmt.Errorf("%w: %w", ErrDialFailed, dialErr)
	}

	serverName := d.ServerName
	if serverName == "" {
		serverName = host
	}

	tlsConn := tls.Client(raw, &tls.Config{
		RootCAs:    d.RootCAs,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
	if err = tlsConn.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		log.Debug().Err(err).Str("server_name", serverName).Msg("handshake failed")
		return nil, fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
	}

	log.Info().Str("remote", raw.RemoteAddr().String()).Msg("connected")

	return newConn(tlsConn, log), nil
}

func (d *Dialer) logger() *logger.Logger {
	if d.Logger == nil {
		return logger.Nop()
	}
	return d.Logger
}

// Connect opens a connection to host:port trusting only trustAnchor.
func Connect(ctx context.Context, host string, port int, trustAnchor *x509.Certificate) (*Conn, error) {
	if trustAnchor == nil {
		return nil, fmt.Errorf("%w: %w", ErrHandshakeFailed, ErrNoCertificate)
	}

	pool := x509.NewCertPool()
	pool.AddCert(trustAnchor)

	d := &Dialer{RootCAs: pool}
	return d.Connect(ctx, host, port)
}
