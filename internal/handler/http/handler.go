// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/internal/utils"
	"github.com/MKhiriev/termplay/models"
)

type Handler struct {
	accounts  service.AccountService
	buildInfo models.AppBuildInfo
	ids       *utils.UUIDGenerator

	// secureCookies marks cookies Secure when the public URL is https.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, secureCookies bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		accounts:      services.AccountService,
		buildInfo:     buildInfo,
		ids:           utils.NewUUIDGenerator(),
		secureCookies: secureCookies,
		logger:        logger,
	}
}
