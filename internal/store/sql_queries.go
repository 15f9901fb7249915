// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/termplay/models"
)

var userColumns = []string{"user_id", "login", "password_hash", "confirmed", "created_at"}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.Confirmed, user.CreatedAt).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		Limit(1).
		ToSql()
}

func buildConfirmUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("confirmed", true).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
