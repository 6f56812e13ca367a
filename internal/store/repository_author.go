// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

// authorRepository is the SQL implementation of [AuthorRepository].
type authorRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts the author when its ID is zero and updates the name columns
// otherwise. The returned author carries its current book links.
func (r *authorRepository) Save(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	if author.ID == 0 {
		query, args, err := buildInsertAuthorQuery(r.db.builder, author)
		if err != nil {
			return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
			log.Err(err).Str("func", "*authorRepository.Save").Msg("failed to insert author")
			return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}

		log.Debug().Str("func", "*authorRepository.Save").Int64("author_id", author.ID).Msg("author created")
		author.Books = []models.BookSummary{}
		return author, nil
	}

	query, args, err := buildUpdateAuthorQuery(r.db.builder, author)
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.Save").Int64("author_id", author.ID).Msg("failed to update author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*authorRepository.Save").Int64("author_id", author.ID).Msg("author not found")
		return models.Author{}, ErrAuthorNotFound
	}

	log.Debug().Str("func", "*authorRepository.Save").Int64("author_id", author.ID).Msg("author updated")
	return r.FindByID(ctx, author.ID)
}

// Delete removes an author that no book refers to. Authors still linked to
// a book are kept and [ErrAuthorHasBooks] is returned.
func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	query, args, err := buildCountAuthorBooksQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var linked int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&linked); err != nil {
		log.Err(err).Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("failed to count author books")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	if linked > 0 {
		log.Warn().Str("func", "*authorRepository.Delete").Int64("author_id", id).Int64("books", linked).Msg("author still has books")
		return ErrAuthorHasBooks
	}

	query, args, err = buildDeleteAuthorQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("failed to delete author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("author not found")
		return ErrAuthorNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(commitErr))
	}

	log.Debug().Str("func", "*authorRepository.Delete").Int64("author_id", id).Msg("author deleted")
	return nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]models.Author, error) {
	query, args, err := buildFindAllAuthorsQuery(r.db.builder)
	return r.find(ctx, "*authorRepository.FindAll", query, args, err)
}

func (r *authorRepository) FindByID(ctx context.Context, id int64) (models.Author, error) {
	query, args, err := buildFindAuthorByIDQuery(r.db.builder, id)
	authors, err := r.find(ctx, "*authorRepository.FindByID", query, args, err)
	if err != nil {
		return models.Author{}, err
	}
	if len(authors) == 0 {
		return models.Author{}, ErrAuthorNotFound
	}
	return authors[0], nil
}

func (r *authorRepository) FindByLastName(ctx context.Context, lastName string) ([]models.Author, error) {
	query, args, err := buildFindAuthorsByLastNameQuery(r.db.builder, lastName)
	return r.find(ctx, "*authorRepository.FindByLastName", query, args, err)
}

func (r *authorRepository) FindByBooksTitle(ctx context.Context, title string) ([]models.Author, error) {
	query, args, err := buildFindAuthorsByBooksTitleQuery(r.db.builder, title)
	return r.find(ctx, "*authorRepository.FindByBooksTitle", query, args, err)
}

func (r *authorRepository) find(ctx context.Context, funcName, query string, args []any, buildErr error) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	authors, err := queryAuthors(ctx, r.db, r.db.builder, query, args)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query authors")
		if errors.Is(err, ErrExecutingQuery) {
			return nil, r.db.classify(err)
		}
		return nil, err
	}

	log.Debug().Str("func", funcName).Int("count", len(authors)).Msg("authors found")
	return authors, nil
}
