// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//
// Usage patterns:
//  1. Implement Validator to encode domain-specific validation logic.
//  2. Inject Validator implementations into services or handlers.
//  3. Call Validate before anything is persisted.
//
// The rules themselves are written with ozzo-validation, so a failed
// validation carries per-field messages that the HTTP layer returns as the
// error details.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate returns nil when value satisfies every rule, an error
	// wrapping [ErrValidation] when it does not, and [ErrUnsupportedType]
	// for values the implementation does not know.
	Validate(ctx context.Context, value any) error
}
