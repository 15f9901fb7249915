// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account of the companion server.
type User struct {
	// UserID is the UUIDv7 primary key.
	UserID string `json:"user_id"`

	// Login is the e-mail address the account was registered with. Unique.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the password, never the plaintext.
	PasswordHash string `json:"-"`

	// Confirmed is set once the owner followed the confirmation link.
	Confirmed bool `json:"confirmed"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table the User model is stored in.
func (u User) TableName() string {
	return "users"
}
