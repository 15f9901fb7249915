// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed account confirmation token.
//
// It embeds [jwt.Token] for claim inspection. SignedString holds the compact
// header.payload.signature form that goes into the confirmation link, and
// UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
