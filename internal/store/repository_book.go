// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

// bookRepository is the SQL implementation of [BookRepository]. It works
// on both supported drivers; the dialect differences live in [DB].
type bookRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// Save writes the book row and replaces its author links in one
// transaction. Every referenced author must exist, otherwise
// [ErrUnknownAuthorReference] is returned and nothing is written. Updating an id
// that does not exist returns [ErrBookNotFound].
func (r *bookRepository) Save(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Save").Msg("failed to begin transaction")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	// A missing book is reported before its authors are resolved.
	if book.ID != 0 {
		if err = r.update(ctx, tx, book); err != nil {
			log.Err(err).Str("func", "*bookRepository.Save").Int64("book_id", book.ID).Msg("failed to write book")
			return models.Book{}, err
		}
	}

	authors, err := r.findLinkedAuthors(ctx, tx, book.AuthorIDs())
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Save").Msg("failed to load book authors")
		return models.Book{}, err
	}

	if book.ID == 0 {
		if book.ID, err = r.insert(ctx, tx, book); err != nil {
			log.Err(err).Str("func", "*bookRepository.Save").Msg("failed to write book")
			return models.Book{}, err
		}
	}

	if len(authors) > 0 {
		query, args, buildErr := buildInsertBookAuthorsQuery(r.db.builder, book.ID, authorIDs(authors))
		if buildErr != nil {
			return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*bookRepository.Save").Int64("book_id", book.ID).Msg("failed to link authors")
			return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*bookRepository.Save").Int64("book_id", book.ID).Msg("failed to commit transaction")
		return models.Book{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(commitErr))
	}

	book.Authors = authors
	log.Debug().Str("func", "*bookRepository.Save").Int64("book_id", book.ID).Msg("book saved")

	return book, nil
}

// findLinkedAuthors loads the authors a book is about to be linked to,
// ordered by id.
func (r *bookRepository) findLinkedAuthors(ctx context.Context, tx *sql.Tx, ids []int64) ([]models.AuthorSummary, error) {
	ids = dedupIDs(ids)
	if len(ids) == 0 {
		return []models.AuthorSummary{}, nil
	}

	query, args, err := buildFindAuthorsByIDsQuery(r.db.builder, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	found, err := scanAuthors(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if len(found) != len(ids) {
		return nil, fmt.Errorf("%w: %w", ErrUnknownAuthorReference, ErrAuthorNotFound)
	}

	summaries := make([]models.AuthorSummary, len(found))
	for i, author := range found {
		summaries[i] = author.Summary()
	}
	return summaries, nil
}

func (r *bookRepository) insert(ctx context.Context, tx *sql.Tx, book models.Book) (int64, error) {
	query, args, err := buildInsertBookQuery(r.db.builder, book)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return id, nil
}

func (r *bookRepository) update(ctx context.Context, tx *sql.Tx, book models.Book) error {
	query, args, err := buildUpdateBookQuery(r.db.builder, book)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	query, args, err = buildDeleteBookAuthorsQuery(r.db.builder, book.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return nil
}

// Delete removes the book and its author links. A missing id returns
// [ErrBookNotFound].
func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	query, args, err := buildDeleteBookAuthorsQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("failed to unlink authors")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	query, args, err = buildDeleteBookQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("failed to delete book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("book not found")
		return ErrBookNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(commitErr))
	}

	log.Debug().Str("func", "*bookRepository.Delete").Int64("book_id", id).Msg("book deleted")
	return nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]models.Book, error) {
	query, args, err := buildFindAllBooksQuery(r.db.builder)
	return r.find(ctx, "*bookRepository.FindAll", query, args, err)
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (models.Book, error) {
	query, args, err := buildFindBookByIDQuery(r.db.builder, id)
	books, err := r.find(ctx, "*bookRepository.FindByID", query, args, err)
	if err != nil {
		return models.Book{}, err
	}
	if len(books) == 0 {
		return models.Book{}, ErrBookNotFound
	}
	return books[0], nil
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountBooksQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*bookRepository.Count").Msg("failed to count books")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	return count, nil
}

func (r *bookRepository) FindByTitle(ctx context.Context, title string) ([]models.Book, error) {
	query, args, err := buildFindBooksByTitleQuery(r.db.builder, title)
	return r.find(ctx, "*bookRepository.FindByTitle", query, args, err)
}

func (r *bookRepository) FindByTitleContains(ctx context.Context, keyword string) ([]models.Book, error) {
	query, args, err := buildFindBooksByTitleContainsQuery(r.db.builder, keyword)
	return r.find(ctx, "*bookRepository.FindByTitleContains", query, args, err)
}

func (r *bookRepository) FindByPublishedDateAfter(ctx context.Context, publishedDate models.Date) ([]models.Book, error) {
	query, args, err := buildFindBooksByPublishedDateAfterQuery(r.db.builder, publishedDate)
	return r.find(ctx, "*bookRepository.FindByPublishedDateAfter", query, args, err)
}

func (r *bookRepository) FindByTitleContainsAndPublishedDateAfter(ctx context.Context, keyword string, publishedDate models.Date) ([]models.Book, error) {
	query, args, err := buildFindBooksByTitleContainsAndPublishedDateAfterQuery(r.db.builder, keyword, publishedDate)
	return r.find(ctx, "*bookRepository.FindByTitleContainsAndPublishedDateAfter", query, args, err)
}

func (r *bookRepository) FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx context.Context, keyword string, currency models.Currency, low, high decimal.Decimal) ([]models.Book, error) {
	query, args, err := buildFindBooksByTitleContainsAndPriceQuery(r.db.builder, keyword, currency, low, high)
	return r.find(ctx, "*bookRepository.FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween", query, args, err)
}

func (r *bookRepository) FindByAuthorsLastName(ctx context.Context, lastName string) ([]models.Book, error) {
	query, args, err := buildFindBooksByAuthorsLastNameQuery(r.db.builder, lastName)
	return r.find(ctx, "*bookRepository.FindByAuthorsLastName", query, args, err)
}

// find runs a books SELECT produced by one of the build* functions. buildErr
// is the error returned by that builder.
func (r *bookRepository) find(ctx context.Context, funcName, query string, args []any, buildErr error) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	books, err := queryBooks(ctx, r.db, r.db.builder, query, args)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query books")
		if errors.Is(err, ErrExecutingQuery) {
			return nil, r.db.classify(err)
		}
		return nil, err
	}

	log.Debug().Str("func", funcName).Int("count", len(books)).Msg("books found")
	return books, nil
}

func authorIDs(authors []models.AuthorSummary) []int64 {
	ids := make([]int64, len(authors))
	for i, author := range authors {
		ids[i] = author.ID
	}
	return ids
}
