// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned by the authentication
	// middleware when the "Authorization" header is present but is not a
	// well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidQueryParameter is returned when a search parameter is
	// missing or cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid JSON body")

	// ErrUnknownSearch is returned for a search name that is not exposed.
	ErrUnknownSearch = errors.New("unknown search")

	ErrRouteNotFound = errors.New("route not found")
)
