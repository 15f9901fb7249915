// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/termplay/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, versionResponse{
		Version: orNA(h.buildInfo.BuildVersion()),
		Date:    orNA(h.buildInfo.BuildDate()),
		Commit:  orNA(h.buildInfo.BuildCommit()),
	}, http.StatusOK)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
