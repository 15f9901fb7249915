// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/handler"
	"github.com/MKhiriev/termplay/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	lineServer *lineServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.Session != nil && cfg.LineAddress != "" {
		line, err := newLineServer(handlers.Session, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.lineServer = line
	}

	if servers.httpServer == nil && servers.lineServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	lineLn, httpLn, err := s.listen()
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	if lineLn != nil {
		s.logger.Info().Msg("Launching line server")
		g.Go(func() error { return s.lineServer.serve(gCtx, lineLn) })
	}
	if httpLn != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(func() error { return s.httpServer.serve(httpLn) })
	}

	// stop on signal, cancellation or the first failing listener
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// listen binds every enabled listener or none.
func (s *server) listen() (lineLn, httpLn net.Listener, err error) {
	if s.lineServer != nil {
		if lineLn, err = s.lineServer.listen(); err != nil {
			return nil, nil, err
		}
	}
	if s.httpServer != nil {
		if httpLn, err = s.httpServer.listen(); err != nil {
			if lineLn != nil {
				_ = lineLn.Close()
			}
			return nil, nil, err
		}
	}
	return lineLn, httpLn, nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.lineServer != nil {
		errs = append(errs, s.lineServer.shutdown())
	}
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}

	return errors.Join(errs...)
}
