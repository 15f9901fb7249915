// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin       = errors.New("login is required")
	ErrInvalidEmail     = errors.New("login must be an e-mail address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
	ErrLoginTooLong     = errors.New("login is longer than 254 characters")
	ErrControlCharacter = errors.New("control characters are not allowed")
)
