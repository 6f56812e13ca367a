// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by NewServer when there is nothing to serve.
var ErrNotConfigured = errors.New("book server is not configured")

var (
	errNoHandler     = fmt.Errorf("%w: no HTTP handler", ErrNotConfigured)
	errNoHTTPAddress = fmt.Errorf("%w: empty HTTP address", ErrNotConfigured)
)
