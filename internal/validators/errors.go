// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrValidation wraps every rule violation reported by a [Validator].
	// The wrapped chain also holds the ozzo-validation errors keyed by JSON
	// field name.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)
