// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")
	ErrNotConfirmed        = errors.New("account is not confirmed")
	ErrLoginTaken          = errors.New("login is already registered")

	ErrTokenCreationFailed     = errors.New("confirmation token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("confirmation token is expired or invalid")
	ErrUnknownAccount          = errors.New("account does not exist")

	// ErrConfirmationNotSent is returned together with the created user when
	// the account exists but the confirmation mail could not be delivered.
	ErrConfirmationNotSent = errors.New("confirmation mail was not sent")
)
