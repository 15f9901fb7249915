// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "errors"

var (
	ErrUnknownDriver   = errors.New("unknown mail driver")
	ErrInvalidMessage  = errors.New("mail message needs a recipient")
	ErrDeliveryFailed  = errors.New("mail delivery failed")
	ErrAPIRejected     = errors.New("mail api rejected the message")
	ErrInvalidEndpoint = errors.New("invalid mail api url")
)
