// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"

	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/internal/validators"
)

const (
	msgRegistered       = "Account created, check your mailbox to confirm it"
	msgRegisteredNoMail = "Account created, but the confirmation email could not be sent"
	msgLoginTaken       = "This e-mail address is already registered"
	msgInvalidEmail     = "Login must be a valid e-mail address"
	msgPasswordRequired = "Password is required"
	msgPasswordTooLong  = "Password must be at most 72 bytes"
	msgInvalidInput     = "Login or password is not valid"
	msgLoggedIn         = "Welcome back"
	msgWrongCredentials = "Wrong login or password"
	msgNotConfirmed     = "Confirm your e-mail address before logging in"
	msgInternal         = "Server error, try again later"
)

func registerResponse(err error) protocol.RegisterResponseEvent {
	switch {
	case err == nil:
		return protocol.RegisterResponseEvent{Success: true, Message: msgRegistered}
	case errors.Is(err, service.ErrConfirmationNotSent):
		return protocol.RegisterResponseEvent{Success: true, Message: msgRegisteredNoMail}
	case errors.Is(err, service.ErrLoginTaken):
		return protocol.RegisterResponseEvent{Message: msgLoginTaken}
	case errors.Is(err, service.ErrInvalidDataProvided):
		return protocol.RegisterResponseEvent{Message: invalidInputMessage(err)}
	default:
		return protocol.RegisterResponseEvent{Message: msgInternal}
	}
}

func loginResponse(err error) protocol.LoginResponseEvent {
	switch {
	case err == nil:
		return protocol.LoginResponseEvent{Success: true, Message: msgLoggedIn}
	case errors.Is(err, service.ErrWrongCredentials):
		return protocol.LoginResponseEvent{Message: msgWrongCredentials}
	case errors.Is(err, service.ErrNotConfirmed):
		return protocol.LoginResponseEvent{Message: msgNotConfirmed}
	case errors.Is(err, service.ErrInvalidDataProvided):
		return protocol.LoginResponseEvent{Message: invalidInputMessage(err)}
	default:
		return protocol.LoginResponseEvent{Message: msgInternal}
	}
}

func invalidInputMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, validators.ErrEmptyPassword):
		return msgPasswordRequired
	case errors.Is(err, validators.ErrPasswordTooLong):
		return msgPasswordTooLong
	default:
		return msgInvalidInput
	}
}
