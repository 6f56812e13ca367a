// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

// BookService exposes the book catalogue. Writes take the calling
// principal and require the ADMIN role; reads are open to everyone.
type BookService interface {
	Create(ctx context.Context, principal models.Principal, book models.Book) (models.Book, error)
	Replace(ctx context.Context, principal models.Principal, id int64, book models.Book) (models.Book, error)
	Patch(ctx context.Context, principal models.Principal, id int64, patch models.BookPatch) (models.Book, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error

	FindAll(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id int64) (models.Book, error)
	Count(ctx context.Context) (int64, error)

	FindByTitle(ctx context.Context, title string) ([]models.Book, error)
	FindByTitleContains(ctx context.Context, keyword string) ([]models.Book, error)
	FindByPublishedDateAfter(ctx context.Context, publishedDate models.Date) ([]models.Book, error)
	FindByTitleContainsAndPublishedDateAfter(ctx context.Context, keyword string, publishedDate models.Date) ([]models.Book, error)
	FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx context.Context, keyword string, currency models.Currency, low, high decimal.Decimal) ([]models.Book, error)
	FindByAuthorsLastName(ctx context.Context, lastName string) ([]models.Book, error)
}

// AuthorService exposes the authors. The same role rules as for
// [BookService] apply.
type AuthorService interface {
	Create(ctx context.Context, principal models.Principal, author models.Author) (models.Author, error)
	Replace(ctx context.Context, principal models.Principal, id int64, author models.Author) (models.Author, error)
	Patch(ctx context.Context, principal models.Principal, id int64, patch models.AuthorPatch) (models.Author, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error

	FindAll(ctx context.Context) ([]models.Author, error)
	FindByID(ctx context.Context, id int64) (models.Author, error)

	FindByLastName(ctx context.Context, lastName string) ([]models.Author, error)
	FindByBooksTitle(ctx context.Context, title string) ([]models.Author, error)
}

// AuthService checks HTTP Basic credentials.
type AuthService interface {
	// Authenticate returns the principal for login when password matches.
	// Any failure is reported as [ErrInvalidCredentials].
	Authenticate(ctx context.Context, login, password string) (models.Principal, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth reports whether the database answers.
	CheckHealth(ctx context.Context) error
}

// Seeder fills an empty catalogue with sample data.
type Seeder interface {
	Seed(ctx context.Context, principal models.Principal) error
}
