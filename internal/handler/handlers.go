// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the companion server.
package handler

import (
	"strings"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/handler/http"
	"github.com/MKhiriev/termplay/internal/handler/session"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/models"
)

type Handlers struct {
	HTTP    *http.Handler
	Session *session.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		secure := strings.HasPrefix(cfg.PublicURL, "https://")
		handlers.HTTP = http.NewHandler(services, buildInfo, secure, logger)
	}
	if cfg.LineAddress != "" {
		handlers.Session = session.NewHandler(services.AccountService, cfg.IdleTimeout, logger)
	}

	if handlers.HTTP == nil && handlers.Session == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
