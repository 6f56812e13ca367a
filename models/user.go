// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an account of the in-memory credential store.
type User struct {
	// Login is the HTTP Basic user name.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// Roles granted to the account.
	Roles []Role `json:"roles"`
}

// Principal returns the authenticated identity of u.
func (u User) Principal() Principal {
	return Principal{
		Name:          u.Login,
		Roles:         append([]Role(nil), u.Roles...),
		Authenticated: true,
	}
}
