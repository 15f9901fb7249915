// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "termplay.db")

	db, err := Open(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	repo := NewUserRepository(db, logger.Nop())
	user := models.User{
		UserID:       "id-1",
		Login:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, repo.CreateUser(ctx, user))
	assert.ErrorIs(t, repo.CreateUser(ctx, models.User{UserID: "id-2", Login: user.Login, CreatedAt: user.CreatedAt}), ErrLoginAlreadyExists)

	found, err := repo.FindUserByLogin(ctx, user.Login)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
	assert.False(t, found.Confirmed)

	require.NoError(t, repo.ConfirmUser(ctx, user.UserID))
	found, err = repo.FindUserByLogin(ctx, user.Login)
	require.NoError(t, err)
	assert.True(t, found.Confirmed)

	assert.ErrorIs(t, repo.ConfirmUser(ctx, "missing"), ErrUserNotFound)
	_, err = repo.FindUserByLogin(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
