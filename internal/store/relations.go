// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-book-keeper/models"
)

// book_authors is the only place the many-to-many relation is stored.
// Book.Authors and Author.Books are both filled from it after the entity
// rows are read.

func scanBooks(rows *sql.Rows) ([]models.Book, error) {
	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Description,
			&book.PublishedDate,
			&book.Price.Amount,
			&book.Price.Currency,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return books, nil
}

func scanAuthors(rows *sql.Rows) ([]models.Author, error) {
	authors := make([]models.Author, 0)
	for rows.Next() {
		var author models.Author
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return authors, nil
}

// queryBooks runs a books SELECT and attaches the authors of every row.
func queryBooks(ctx context.Context, q querier, builder sq.StatementBuilderType, query string, args []any) ([]models.Book, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	books, err := scanBooks(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err = attachAuthors(ctx, q, builder, books); err != nil {
		return nil, err
	}
	return books, nil
}

// queryAuthors runs an authors SELECT and attaches the books of every row.
func queryAuthors(ctx context.Context, q querier, builder sq.StatementBuilderType, query string, args []any) ([]models.Author, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	authors, err := scanAuthors(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err = attachBooks(ctx, q, builder, authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func attachAuthors(ctx context.Context, q querier, builder sq.StatementBuilderType, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i, book := range books {
		ids[i] = book.ID
		index[book.ID] = i
		books[i].Authors = make([]models.AuthorSummary, 0, 1)
	}

	query, args, err := buildFindAuthorsOfBooksQuery(builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID int64
			author models.AuthorSummary
		)
		if err = rows.Scan(&bookID, &author.ID, &author.FirstName, &author.LastName); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[bookID]; ok {
			books[i].Authors = append(books[i].Authors, author)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func attachBooks(ctx context.Context, q querier, builder sq.StatementBuilderType, authors []models.Author) error {
	if len(authors) == 0 {
		return nil
	}

	ids := make([]int64, len(authors))
	index := make(map[int64]int, len(authors))
	for i, author := range authors {
		ids[i] = author.ID
		index[author.ID] = i
		authors[i].Books = make([]models.BookSummary, 0)
	}

	query, args, err := buildFindBooksOfAuthorsQuery(builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			authorID int64
			book     models.BookSummary
		)
		if err = rows.Scan(&authorID, &book.ID, &book.Title); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[authorID]; ok {
			authors[i].Books = append(authors[i].Books, book)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// dedupIDs returns ids without duplicates, keeping the first occurrence.
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
