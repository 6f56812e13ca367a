// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

// BookRepository persists books together with their links to authors.
type BookRepository interface {
	// Save inserts the book when its ID is zero and replaces it otherwise.
	// The author links are rewritten in the same transaction. The returned
	// book carries the generated ID and the linked authors' names.
	Save(ctx context.Context, book models.Book) (models.Book, error)
	// Delete removes the book and its author links.
	Delete(ctx context.Context, id int64) error
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

// AuthorRepository persists authors. Author.Books is read from the join
// table and never written through this repository.
type AuthorRepository interface {
	Save(ctx context.Context, author models.Author) (models.Author, error)
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]models.Author, error)
	FindByID(ctx context.Context, id int64) (models.Author, error)

	FindByLastName(ctx context.Context, lastName string) ([]models.Author, error)
	FindByBooksTitle(ctx context.Context, title string) ([]models.Author, error)
}

// UserRepository looks up the accounts allowed to authenticate.
type UserRepository interface {
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}
