// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnauthenticated is returned when a write is attempted without
	// credentials.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrAccessDenied is returned when the caller is authenticated but
	// lacks the required role.
	ErrAccessDenied = errors.New("access denied")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("wrong password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
