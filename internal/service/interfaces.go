// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/termplay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService registers, authenticates and confirms accounts.
type AccountService interface {
	// Register creates an unconfirmed account and mails its confirmation
	// link. On ErrConfirmationNotSent the account was still created.
	Register(ctx context.Context, login, password string) (models.User, error)
	// Login checks the credentials of a confirmed account.
	Login(ctx context.Context, login, password string) (models.User, error)
	// Confirm marks the account behind a confirmation token confirmed and
	// returns its id.
	Confirm(ctx context.Context, token string) (string, error)
}
