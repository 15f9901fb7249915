// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/termplay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the companion server.
type UserRepository interface {
	// CreateUser stores a new user. A taken login yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByLogin yields ErrUserNotFound when no account has login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// ConfirmUser marks the account confirmed. ErrUserNotFound if absent.
	ConfirmUser(ctx context.Context, userID string) error
}
