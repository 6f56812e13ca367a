// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-book-keeper HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of failed responses. Keeping them in one place keeps the
// wording stable for API clients.
package app

const (
	// MsgValidationFailure is returned when a book or author breaks a field
	// constraint. The response also carries per-field details.
	MsgValidationFailure = "validation failure"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidID is returned when the {id} path segment is not a positive
	// integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidQueryParameter is returned when a search parameter is
	// missing or malformed.
	MsgInvalidQueryParameter = "invalid query parameter"

	// MsgUnknownAuthor is returned when a book references an author id that
	// does not exist.
	MsgUnknownAuthor = "unknown author referenced"

	// MsgAuthenticationRequired is returned when a protected route is called
	// without credentials.
	MsgAuthenticationRequired = "authentication required"

	// MsgInvalidCredentials is returned when the Basic credentials are
	// malformed or do not match an account.
	MsgInvalidCredentials = "invalid login/password"

	// MsgAccessDenied is returned when the caller lacks the required role.
	MsgAccessDenied = "access denied"

	MsgBookNotFound   = "book not found"
	MsgAuthorNotFound = "author not found"
	MsgSearchNotFound = "search not found"
	MsgNotFound       = "not found"

	// MsgAuthorHasBooks is returned when deleting an author that is still
	// linked to at least one book.
	MsgAuthorHasBooks = "author is still linked to books"

	// MsgConflict is returned when the database rejects a write because of
	// a constraint.
	MsgConflict = "conflicting data"

	MsgMethodNotAllowed = "method not allowed"

	// MsgServiceUnavailable is returned when the database is temporarily
	// unreachable.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
