// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no account matches a login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when an operation targets a book id that
	// does not exist.
	ErrBookNotFound = errors.New("book was not found")

	// ErrAuthorNotFound is returned when an operation targets an author id
	// that does not exist, including authors referenced by a saved book.
	ErrAuthorNotFound = errors.New("author was not found")

	// ErrUnknownAuthorReference is returned when a saved book references an
	// author id that does not exist. It always wraps [ErrAuthorNotFound].
	ErrUnknownAuthorReference = errors.New("book references an unknown author")

	// ErrAuthorHasBooks is returned when deleting an author that is still
	// linked to at least one book.
	ErrAuthorHasBooks = errors.New("author is still linked to books")

	// ErrConstraintViolation is returned when the database rejects a write
	// because of a unique, foreign-key or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTemporarilyUnavailable is returned when the database failure is
	// transient (lost connection, deadlock, busy database file).
	ErrTemporarilyUnavailable = errors.New("database is temporarily unavailable")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to iterate rows")
)
