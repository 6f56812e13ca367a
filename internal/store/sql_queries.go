// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

// Every repository operation has its own builder below. All of them return
// (query, args, err) from squirrel's ToSql.

var bookColumns = []string{
	"b.id",
	"b.title",
	"b.description",
	"b.published_date",
	"b.price_amount",
	"b.price_currency",
}

var authorColumns = []string{
	"a.id",
	"a.first_name",
	"a.last_name",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching keyword anywhere, with the
// LIKE wildcards in keyword taken literally.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}

// titleContains matches book titles containing keyword, ignoring case.
func titleContains(keyword string) sq.Sqlizer {
	return sq.Expr(`LOWER(b.title) LIKE ? ESCAPE '\'`, containsPattern(keyword))
}

func selectBooks(builder sq.StatementBuilderType) sq.SelectBuilder {
	return builder.Select(bookColumns...).From("books b").OrderBy("b.id")
}

func selectAuthors(builder sq.StatementBuilderType) sq.SelectBuilder {
	return builder.Select(authorColumns...).From("authors a").OrderBy("a.id")
}

// ── books ─────────────────────────────────────────────────────────────────────

func buildFindAllBooksQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return selectBooks(builder).ToSql()
}

func buildFindBookByIDQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectBooks(builder).Where(sq.Eq{"b.id": id}).ToSql()
}

func buildCountBooksQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.Select("COUNT(*)").From("books").ToSql()
}

func buildFindBooksByTitleQuery(builder sq.StatementBuilderType, title string) (string, []any, error) {
	return selectBooks(builder).Where(sq.Eq{"b.title": title}).ToSql()
}

func buildFindBooksByTitleContainsQuery(builder sq.StatementBuilderType, keyword string) (string, []any, error) {
	return selectBooks(builder).Where(titleContains(keyword)).ToSql()
}

func buildFindBooksByPublishedDateAfterQuery(builder sq.StatementBuilderType, publishedDate models.Date) (string, []any, error) {
	return selectBooks(builder).
		Where(sq.Gt{"b.published_date": publishedDate.String()}).
		ToSql()
}

func buildFindBooksByTitleContainsAndPublishedDateAfterQuery(builder sq.StatementBuilderType, keyword string, publishedDate models.Date) (string, []any, error) {
	return selectBooks(builder).
		Where(titleContains(keyword)).
		Where(sq.Gt{"b.published_date": publishedDate.String()}).
		ToSql()
}

// buildFindBooksByTitleContainsAndPriceQuery includes both price bounds.
func buildFindBooksByTitleContainsAndPriceQuery(builder sq.StatementBuilderType, keyword string, currency models.Currency, low, high decimal.Decimal) (string, []any, error) {
	return selectBooks(builder).
		Where(titleContains(keyword)).
		Where(sq.Eq{"b.price_currency": string(currency)}).
		Where(sq.GtOrEq{"b.price_amount": low.String()}).
		Where(sq.LtOrEq{"b.price_amount": high.String()}).
		ToSql()
}

func buildFindBooksByAuthorsLastNameQuery(builder sq.StatementBuilderType, lastName string) (string, []any, error) {
	return selectBooks(builder).
		Distinct().
		Join("book_authors ba ON ba.book_id = b.id").
		Join("authors a ON a.id = ba.author_id").
		Where(sq.Eq{"a.last_name": lastName}).
		ToSql()
}

func buildInsertBookQuery(builder sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return builder.Insert("books").
		Columns("title", "description", "published_date", "price_amount", "price_currency").
		Values(
			book.Title,
			book.Description,
			book.PublishedDate.String(),
			book.Price.Amount.String(),
			string(book.Price.Currency),
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateBookQuery(builder sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return builder.Update("books").
		Set("title", book.Title).
		Set("description", book.Description).
		Set("published_date", book.PublishedDate.String()).
		Set("price_amount", book.Price.Amount.String()).
		Set("price_currency", string(book.Price.Currency)).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
}

func buildDeleteBookQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return builder.Delete("books").Where(sq.Eq{"id": id}).ToSql()
}

// ── authors ───────────────────────────────────────────────────────────────────

func buildFindAllAuthorsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return selectAuthors(builder).ToSql()
}

func buildFindAuthorByIDQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectAuthors(builder).Where(sq.Eq{"a.id": id}).ToSql()
}

func buildFindAuthorsByIDsQuery(builder sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return selectAuthors(builder).Where(sq.Eq{"a.id": ids}).ToSql()
}

func buildFindAuthorsByLastNameQuery(builder sq.StatementBuilderType, lastName string) (string, []any, error) {
	return selectAuthors(builder).Where(sq.Eq{"a.last_name": lastName}).ToSql()
}

func buildFindAuthorsByBooksTitleQuery(builder sq.StatementBuilderType, title string) (string, []any, error) {
	return selectAuthors(builder).
		Distinct().
		Join("book_authors ba ON ba.author_id = a.id").
		Join("books b ON b.id = ba.book_id").
		Where(sq.Eq{"b.title": title}).
		ToSql()
}

func buildInsertAuthorQuery(builder sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return builder.Insert("authors").
		Columns("first_name", "last_name").
		Values(author.FirstName, author.LastName).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateAuthorQuery(builder sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return builder.Update("authors").
		Set("first_name", author.FirstName).
		Set("last_name", author.LastName).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
}

func buildDeleteAuthorQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return builder.Delete("authors").Where(sq.Eq{"id": id}).ToSql()
}

// ── book_authors ──────────────────────────────────────────────────────────────

// buildInsertBookAuthorsQuery links bookID to every id in authorIDs with one
// multi-row INSERT.
func buildInsertBookAuthorsQuery(builder sq.StatementBuilderType, bookID int64, authorIDs []int64) (string, []any, error) {
	insert := builder.Insert("book_authors").Columns("book_id", "author_id")
	for _, authorID := range authorIDs {
		insert = insert.Values(bookID, authorID)
	}
	return insert.ToSql()
}

func buildDeleteBookAuthorsQuery(builder sq.StatementBuilderType, bookID int64) (string, []any, error) {
	return builder.Delete("book_authors").Where(sq.Eq{"book_id": bookID}).ToSql()
}

func buildCountAuthorBooksQuery(builder sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return builder.Select("COUNT(*)").From("book_authors").Where(sq.Eq{"author_id": authorID}).ToSql()
}

// buildFindAuthorsOfBooksQuery is the forward lookup: authors of every book
// in bookIDs.
func buildFindAuthorsOfBooksQuery(builder sq.StatementBuilderType, bookIDs []int64) (string, []any, error) {
	return builder.Select("ba.book_id", "a.id", "a.first_name", "a.last_name").
		From("book_authors ba").
		Join("authors a ON a.id = ba.author_id").
		Where(sq.Eq{"ba.book_id": bookIDs}).
		OrderBy("ba.book_id", "a.id").
		ToSql()
}

// buildFindBooksOfAuthorsQuery is the reverse lookup served by the
// book_authors(author_id) index.
func buildFindBooksOfAuthorsQuery(builder sq.StatementBuilderType, authorIDs []int64) (string, []any, error) {
	return builder.Select("ba.author_id", "b.id", "b.title").
		From("book_authors ba").
		Join("books b ON b.id = ba.book_id").
		Where(sq.Eq{"ba.author_id": authorIDs}).
		OrderBy("ba.author_id", "b.id").
		ToSql()
}
