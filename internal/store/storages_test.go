// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "mysql", DSN: "whatever"},
	}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "file:books.db?cache=shared&_foreign_keys=on", sqliteDSN("file:books.db?cache=shared"))
	assert.Equal(t, "file:books.db?_fk=off", sqliteDSN("file:books.db?_fk=off"))
}

// TestStorages_SQLite runs the repositories against a real in-memory
// database.
func TestStorages_SQLite(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()
	books := storages.BookRepository
	authors := storages.AuthorRepository

	require.NoError(t, storages.Ping(ctx))

	felipe, err := authors.Save(ctx, models.Author{FirstName: "Felipe", LastName: "Gutierrez"})
	require.NoError(t, err)
	rajesh, err := authors.Save(ctx, models.Author{FirstName: "Rajesh", LastName: "RV"})
	require.NoError(t, err)

	microservices, err := books.Save(ctx, models.Book{
		Title:         "Spring Microservices",
		Description:   "Learn how to efficiently build and implement microservices in Spring",
		PublishedDate: models.NewDate(2016, 6, 28),
		Price:         models.NewMoney(decimal.RequireFromString("45.83")),
		Authors:       []models.AuthorSummary{{ID: felipe.ID}},
	})
	require.NoError(t, err)
	boot, err := books.Save(ctx, models.Book{
		Title:         "Pro Spring Boot",
		Description:   "A no-nonsense guide containing case studies and best practise for Spring Boot",
		PublishedDate: models.NewDate(2016, 5, 21),
		Price:         models.NewMoney(decimal.RequireFromString("42.74")),
		Authors:       []models.AuthorSummary{{ID: rajesh.ID}},
	})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		found, err := books.FindByID(ctx, boot.ID)
		require.NoError(t, err)

		assert.Equal(t, boot.Title, found.Title)
		assert.Equal(t, boot.Description, found.Description)
		assert.Equal(t, boot.PublishedDate, found.PublishedDate)
		assert.True(t, boot.Price.Amount.Equal(found.Price.Amount))
		assert.Equal(t, boot.Price.Currency, found.Price.Currency)
		assert.Equal(t, []models.AuthorSummary{rajesh.Summary()}, found.Authors)
	})

	t.Run("count", func(t *testing.T) {
		count, err := books.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("title contains ignores case", func(t *testing.T) {
		found, err := books.FindByTitleContains(ctx, "spring")
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = books.FindByTitleContains(ctx, "BOOT")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, boot.ID, found[0].ID)
	})

	t.Run("title contains treats wildcards literally", func(t *testing.T) {
		found, err := books.FindByTitleContains(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("exact title", func(t *testing.T) {
		found, err := books.FindByTitle(ctx, "Pro Spring Boot")
		require.NoError(t, err)
		assert.Len(t, found, 1)

		found, err = books.FindByTitle(ctx, "pro spring boot")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("published date after is strict", func(t *testing.T) {
		found, err := books.FindByPublishedDateAfter(ctx, models.NewDate(2016, 5, 21))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, microservices.ID, found[0].ID)

		found, err = books.FindByTitleContainsAndPublishedDateAfter(ctx, "boot", models.NewDate(2016, 1, 1))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, boot.ID, found[0].ID)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		found, err := books.FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx, "spring", models.USD,
			decimal.RequireFromString("42.74"), decimal.RequireFromString("45.83"))
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = books.FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx, "spring", models.EUR,
			decimal.RequireFromString("1"), decimal.RequireFromString("100"))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("relation queries", func(t *testing.T) {
		found, err := books.FindByAuthorsLastName(ctx, "Gutierrez")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, microservices.ID, found[0].ID)

		byTitle, err := authors.FindByBooksTitle(ctx, "Pro Spring Boot")
		require.NoError(t, err)
		require.Len(t, byTitle, 1)
		assert.Equal(t, rajesh.ID, byTitle[0].ID)

		withBooks, err := authors.FindByID(ctx, felipe.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.BookSummary{microservices.Summary()}, withBooks.Books)
	})

	t.Run("unknown author leaves store unchanged", func(t *testing.T) {
		_, err := books.Save(ctx, models.Book{
			Title:         "Orphan",
			Description:   "No such author",
			PublishedDate: models.NewDate(2020, 1, 1),
			Price:         models.NewMoney(decimal.RequireFromString("1")),
			Authors:       []models.AuthorSummary{{ID: 999}},
		})
		assert.ErrorIs(t, err, ErrAuthorNotFound)

		count, err := books.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("author with books cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, authors.Delete(ctx, felipe.ID), ErrAuthorHasBooks)
	})

	t.Run("replace moves the book to another author", func(t *testing.T) {
		moved := microservices
		moved.Authors = []models.AuthorSummary{{ID: rajesh.ID}}

		saved, err := books.Save(ctx, moved)
		require.NoError(t, err)
		assert.Equal(t, []models.AuthorSummary{rajesh.Summary()}, saved.Authors)

		withBooks, err := authors.FindByID(ctx, felipe.ID)
		require.NoError(t, err)
		assert.Empty(t, withBooks.Books)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, authors.Delete(ctx, felipe.ID))
		assert.ErrorIs(t, authors.Delete(ctx, felipe.ID), ErrAuthorNotFound)

		require.NoError(t, books.Delete(ctx, boot.ID))
		assert.ErrorIs(t, books.Delete(ctx, boot.ID), ErrBookNotFound)

		_, err := books.FindByID(ctx, boot.ID)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}
