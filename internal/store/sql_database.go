// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/migrations"
)

// DB is an open account database together with its dialect.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already open handle. Used by tests with sqlmock.
func NewDB(db *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: db, dialect: dialect, logger: log}
}

// Open connects to the database named by cfg.DSN and pings it.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFor(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg.DSN, log)
	}
	return NewConnectSQLite(ctx, cfg.DSN, log)
}

// Dialect returns the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.GooseDialect())
}
