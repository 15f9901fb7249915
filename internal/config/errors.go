// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidConnectionConfigs indicates the client cannot reach a server
	// (for example, empty host, port out of range or missing trust anchor).
	ErrInvalidConnectionConfigs = errors.New("invalid connection configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, empty address or a certificate without its key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, missing sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates the selected mail driver lacks the
	// settings it needs.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
