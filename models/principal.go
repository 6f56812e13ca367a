// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Role is a coarse permission granted to an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Principal is the identity a request or a background routine acts as.
// The zero value is an unauthenticated caller without roles.
type Principal struct {
	Name          string
	Roles         []Role
	Authenticated bool
}

// AnonymousPrincipal is the identity of a request without credentials.
func AnonymousPrincipal() Principal {
	return Principal{Name: "anonymous"}
}

// SystemPrincipal is the identity used by in-process routines such as the
// startup seeding. It is passed explicitly to the code that needs it.
func SystemPrincipal() Principal {
	return Principal{
		Name:          "system",
		Roles:         []Role{RoleUser, RoleAdmin},
		Authenticated: true,
	}
}

// HasRole reports whether p is authenticated and was granted role.
func (p Principal) HasRole(role Role) bool {
	return p.Authenticated && slices.Contains(p.Roles, role)
}
