// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers(cfg config.Server) (*Handlers, error) {
	return NewHandlers(&service.Services{}, cfg, models.AppBuildInfo{}, logger.Nop())
}

func TestNewHandlers_BothAddresses(t *testing.T) {
	h, err := newHandlers(config.Server{LineAddress: ":8443", HTTPAddress: ":8080"})

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.Session, "expected session handler to be initialised")
}

func TestNewHandlers_OnlyHTTP(t *testing.T) {
	h, err := newHandlers(config.Server{HTTPAddress: ":8080"})

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.Session)
}

func TestNewHandlers_OnlyLine(t *testing.T) {
	h, err := newHandlers(config.Server{LineAddress: ":8443"})

	require.NoError(t, err)
	assert.Nil(t, h.HTTP)
	assert.NotNil(t, h.Session)
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := newHandlers(config.Server{})

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
