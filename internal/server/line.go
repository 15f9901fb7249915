// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/handler/session"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/utils"
)

const devCertValidity = 365 * 24 * time.Hour

type lineServer struct {
	handler   *session.Handler
	address   string
	tlsConfig *tls.Config

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newLineServer(handler *session.Handler, cfg config.Server, logger *logger.Logger) (*lineServer, error) {
	cert, err := loadCertificate(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &lineServer{
		handler: handler,
		address: cfg.LineAddress,
		tlsConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
		logger: logger,
	}, nil
}

// loadCertificate reads the configured key pair. Without one it generates a
// self-signed pair and writes the certificate to cfg.DevCertOut so clients
// can pin it.
func loadCertificate(cfg config.Server, logger *logger.Logger) (tls.Certificate, error) {
	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("load key pair: %w", err)
		}
		return cert, nil
	}

	certPEM, keyPEM, err := utils.GenerateSelfSigned(certificateHosts(cfg.LineAddress), devCertValidity)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("generate development certificate: %w", err)
	}

	if cfg.DevCertOut != "" {
		if err = os.WriteFile(cfg.DevCertOut, certPEM, 0o644); err != nil {
			return tls.Certificate{}, fmt.Errorf("write development certificate: %w", err)
		}
		logger.Warn().Str("path", cfg.DevCertOut).Msg("using a self-signed development certificate")
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("parse development key pair: %w", err)
	}
	return cert, nil
}

// certificateHosts lists the loopback names plus the listener's own host
// when it names one.
func certificateHosts(address string) []string {
	hosts := []string{"localhost", "127.0.0.1", "::1"}

	host, _, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return hosts
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		return hosts
	}
	for _, h := range hosts {
		if h == host {
			return hosts
		}
	}
	return append([]string{host}, hosts...)
}

func (l *lineServer) listen() (net.Listener, error) {
	ln, err := tls.Listen("tcp", l.address, l.tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("line listen on %s: %w", l.address, err)
	}

	l.mu.Lock()
	l.listener = ln
	l.mu.Unlock()

	return ln, nil
}

// serve accepts connections until ln is closed, running one session per
// connection. Sessions end when ctx does; serve returns once all of them
// have.
func (l *lineServer) serve(ctx context.Context, ln net.Listener) error {
	l.logger.Info().Str("address", ln.Addr().String()).Msg("line server listening")

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("line accept: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			// session errors are logged by the handler
			_ = l.handler.Serve(ctx, conn)
		}()
	}
}

func (l *lineServer) shutdown() error {
	l.logger.Info().Msg("line server Shutdown")

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listener == nil {
		return nil
	}
	if err := l.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("line close: %w", err)
	}
	return nil
}
