// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/termplay/internal/protocol"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
	maxLoginLength   = 254
)

// CredentialsValidator checks the credentials of register and login
// commands. Registration additionally requires the login to be a bare
// e-mail address, since the confirmation link is mailed to it.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case protocol.RegisterCommand:
		return v.validate(value.Login, value.Password, true, fields...)
	case *protocol.RegisterCommand:
		return v.validate(value.Login, value.Password, true, fields...)

	case protocol.LoginCommand:
		return v.validate(value.Login, value.Password, false, fields...)
	case *protocol.LoginCommand:
		return v.validate(value.Login, value.Password, false, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validate(login, password string, email bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldLogin:
			err = validateLogin(login, email)
		case FieldPassword:
			err = validatePassword(password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateLogin(login string, email bool) error {
	switch {
	case strings.TrimSpace(login) == "":
		return ErrEmptyLogin
	case len(login) > maxLoginLength:
		return ErrLoginTooLong
	case hasControl(login):
		return ErrControlCharacter
	}

	if !email {
		return nil
	}

	// only a bare address, no display name or angle brackets
	addr, err := mail.ParseAddress(login)
	if err != nil || addr.Address != login || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) > maxPasswordBytes:
		return ErrPasswordTooLong
	case hasControl(password):
		return ErrControlCharacter
	}
	return nil
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
