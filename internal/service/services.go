// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the account logic of the companion server.
package service

import (
	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/mailer"
	"github.com/MKhiriev/termplay/internal/store"
	"github.com/MKhiriev/termplay/internal/validators"
)

type Services struct {
	AccountService AccountService
}

func NewServices(userRepository store.UserRepository, m mailer.Mailer, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(userRepository, m, validators.NewCredentialsValidator(), cfg.App, cfg.Server.PublicURL, logger),
	}
}
