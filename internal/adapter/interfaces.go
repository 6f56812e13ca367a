// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-book-keeper REST API.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP details
// (Basic credentials, JSON bodies, error statuses) from callers. Error
// statuses are mapped by mapHTTPError to the sentinel values in errors.go so
// that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

// ServerAdapter talks to a running go-book-keeper server.
type ServerAdapter interface {
	// SetCredentials stores the Basic credentials sent with every
	// subsequent request. An empty login makes requests anonymous.
	SetCredentials(login, password string)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	// CreateBook returns the stored book with its generated id.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ReplaceBook(ctx context.Context, id int64, book models.Book) (models.Book, error)
	PatchBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	// SearchBooks runs the named search under /books/search with params
	// sent as query parameters.
	SearchBooks(ctx context.Context, name string, params map[string]string) ([]models.Book, error)

	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	ReplaceAuthor(ctx context.Context, id int64, author models.Author) (models.Author, error)
	PatchAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	SearchAuthors(ctx context.Context, name string, params map[string]string) ([]models.Author, error)

	// ServerVersion returns the body of GET /api/version.
	ServerVersion(ctx context.Context) (string, error)
}
