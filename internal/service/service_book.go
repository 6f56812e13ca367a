// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/events"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	publisher      events.Publisher

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, publisher events.Publisher, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		publisher:      publisher,
		logger:         logger,
	}
}

// Create stores a new book. Any ID in book is ignored.
func (s *bookService) Create(ctx context.Context, principal models.Principal, book models.Book) (models.Book, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Book{}, err
	}

	book.ID = 0
	saved, err := s.save(ctx, book)
	if err != nil {
		return models.Book{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityBook, events.ActionCreated, saved.ID, principal.Name))
	return saved, nil
}

// Replace overwrites every field of book id, its author links included.
func (s *bookService) Replace(ctx context.Context, principal models.Principal, id int64, book models.Book) (models.Book, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Book{}, err
	}

	book.ID = id
	saved, err := s.save(ctx, book)
	if err != nil {
		return models.Book{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityBook, events.ActionReplaced, saved.ID, principal.Name))
	return saved, nil
}

// Patch applies the fields present in patch to book id. The merged book
// must still pass validation.
func (s *bookService) Patch(ctx context.Context, principal models.Principal, id int64, patch models.BookPatch) (models.Book, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Book{}, err
	}

	current, err := s.bookRepository.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("error loading book %d: %w", id, err)
	}

	saved, err := s.save(ctx, patch.Apply(current))
	if err != nil {
		return models.Book{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityBook, events.ActionPatched, saved.ID, principal.Name))
	return saved, nil
}

func (s *bookService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return err
	}

	if err := s.bookRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting book %d: %w", id, err)
	}

	publish(ctx, s.publisher, events.New(events.EntityBook, events.ActionDeleted, id, principal.Name))
	return nil
}

func (s *bookService) save(ctx context.Context, book models.Book) (models.Book, error) {
	if err := s.validator.Validate(ctx, book); err != nil {
		return models.Book{}, err
	}

	saved, err := s.bookRepository.Save(ctx, book)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.save").Int64("book_id", book.ID).Msg("error saving book")
		return models.Book{}, fmt.Errorf("error saving book: %w", err)
	}
	return saved, nil
}

func (s *bookService) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.bookRepository.FindAll(ctx)
}

func (s *bookService) FindByID(ctx context.Context, id int64) (models.Book, error) {
	return s.bookRepository.FindByID(ctx, id)
}

func (s *bookService) Count(ctx context.Context) (int64, error) {
	return s.bookRepository.Count(ctx)
}

func (s *bookService) FindByTitle(ctx context.Context, title string) ([]models.Book, error) {
	return s.bookRepository.FindByTitle(ctx, title)
}

func (s *bookService) FindByTitleContains(ctx context.Context, keyword string) ([]models.Book, error) {
	return s.bookRepository.FindByTitleContains(ctx, keyword)
}

func (s *bookService) FindByPublishedDateAfter(ctx context.Context, publishedDate models.Date) ([]models.Book, error) {
	return s.bookRepository.FindByPublishedDateAfter(ctx, publishedDate)
}

func (s *bookService) FindByTitleContainsAndPublishedDateAfter(ctx context.Context, keyword string, publishedDate models.Date) ([]models.Book, error) {
	return s.bookRepository.FindByTitleContainsAndPublishedDateAfter(ctx, keyword, publishedDate)
}

func (s *bookService) FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx context.Context, keyword string, currency models.Currency, low, high decimal.Decimal) ([]models.Book, error) {
	return s.bookRepository.FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx, keyword, currency, low, high)
}

func (s *bookService) FindByAuthorsLastName(ctx context.Context, lastName string) ([]models.Book, error) {
	return s.bookRepository.FindByAuthorsLastName(ctx, lastName)
}

// publish hands event to publisher and only logs a failure.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("entity", string(event.Entity)).
			Str("action", string(event.Action)).
			Int64("id", event.ID).
			Msg("error publishing event")
	}
}
