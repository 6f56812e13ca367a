// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-book-keeper/models"
)

// Authorize fails unless principal is authenticated and holds role.
// Anonymous callers get [ErrUnauthenticated], everyone else without the
// role gets [ErrAccessDenied].
func Authorize(principal models.Principal, role models.Role) error {
	if !principal.Authenticated {
		return ErrUnauthenticated
	}
	if !principal.HasRole(role) {
		return fmt.Errorf("%w: %s requires role %s", ErrAccessDenied, principal.Name, role)
	}
	return nil
}
