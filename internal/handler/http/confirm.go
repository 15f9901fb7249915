// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/go-chi/chi/v5"
)

// UserIDCookie is set on a successful confirmation.
const UserIDCookie = "user_id"

// confirm handles GET /confirm/{token}. Unknown, forged and expired tokens
// all answer 404.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := h.accounts.Confirm(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("confirmation failed")
		}
		http.Error(w, confirmFailureText(status), status)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     UserIDCookie,
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Account confirmed, you can now log in from termplay\n"))
}

func confirmFailureText(status int) string {
	if status == http.StatusNotFound {
		return "Invalid or expired confirmation link"
	}
	return http.StatusText(status)
}
