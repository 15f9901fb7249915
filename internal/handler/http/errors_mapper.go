// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid: http.StatusNotFound,
	service.ErrUnknownAccount:          http.StatusNotFound,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,

	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
