// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRepository_Save_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO authors \(first_name,last_name\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("Felipe", "Gutierrez").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	saved, err := repo.Save(context.Background(), models.Author{FirstName: "Felipe", LastName: "Gutierrez"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.NotNil(t, saved.Books)
	assert.Empty(t, saved.Books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Save_Update(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE authors SET first_name = \$1, last_name = \$2 WHERE id = \$3`).
		WithArgs("Felipe", "Gutierrez", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM authors a WHERE a.id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).AddRow(1, "Felipe", "Gutierrez"))
	mock.ExpectQuery(`FROM book_authors ba JOIN books b`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "id", "title"}).AddRow(1, 1, "Spring Microservices"))

	saved, err := repo.Save(context.Background(), models.Author{ID: 1, FirstName: "Felipe", LastName: "Gutierrez"})
	require.NoError(t, err)

	assert.Equal(t, []models.BookSummary{{ID: 1, Title: "Spring Microservices"}}, saved.Books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Save_UpdateMissing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE authors SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Save(context.Background(), models.Author{ID: 8, FirstName: "a", LastName: "b"})

	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Delete_StillLinked(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM book_authors WHERE author_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAuthorHasBooks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Delete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM book_authors`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM authors WHERE id = \$1`).
		WithArgs(int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 77)

	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM book_authors`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM authors WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_FindByLastName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM authors a WHERE a.last_name = \$1`).
		WithArgs("RV").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).AddRow(2, "Rajesh", "RV"))
	mock.ExpectQuery(`FROM book_authors ba JOIN books b`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "id", "title"}).AddRow(2, 2, "Pro Spring Boot"))

	authors, err := repo.FindByLastName(context.Background(), "RV")
	require.NoError(t, err)
	require.Len(t, authors, 1)

	assert.Equal(t, "Rajesh", authors[0].FirstName)
	assert.Equal(t, "Pro Spring Boot", authors[0].Books[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
