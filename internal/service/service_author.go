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
)

// authorService writes only the author's own columns. Author.Books in a
// request is ignored; links are changed through books.
type authorService struct {
	authorRepository store.AuthorRepository
	validator        validators.Validator
	publisher        events.Publisher

	logger *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, validator validators.Validator, publisher events.Publisher, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		validator:        validator,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *authorService) Create(ctx context.Context, principal models.Principal, author models.Author) (models.Author, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Author{}, err
	}

	author.ID = 0
	saved, err := s.save(ctx, author)
	if err != nil {
		return models.Author{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityAuthor, events.ActionCreated, saved.ID, principal.Name))
	return saved, nil
}

func (s *authorService) Replace(ctx context.Context, principal models.Principal, id int64, author models.Author) (models.Author, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Author{}, err
	}

	author.ID = id
	saved, err := s.save(ctx, author)
	if err != nil {
		return models.Author{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityAuthor, events.ActionReplaced, saved.ID, principal.Name))
	return saved, nil
}

func (s *authorService) Patch(ctx context.Context, principal models.Principal, id int64, patch models.AuthorPatch) (models.Author, error) {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return models.Author{}, err
	}

	current, err := s.authorRepository.FindByID(ctx, id)
	if err != nil {
		return models.Author{}, fmt.Errorf("error loading author %d: %w", id, err)
	}

	// Books are derived on reads and are not part of the patched state.
	current.Books = nil
	saved, err := s.save(ctx, patch.Apply(current))
	if err != nil {
		return models.Author{}, err
	}

	publish(ctx, s.publisher, events.New(events.EntityAuthor, events.ActionPatched, saved.ID, principal.Name))
	return saved, nil
}

// Delete removes an author without books. See [store.ErrAuthorHasBooks].
func (s *authorService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	if err := Authorize(principal, models.RoleAdmin); err != nil {
		return err
	}

	if err := s.authorRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting author %d: %w", id, err)
	}

	publish(ctx, s.publisher, events.New(events.EntityAuthor, events.ActionDeleted, id, principal.Name))
	return nil
}

func (s *authorService) save(ctx context.Context, author models.Author) (models.Author, error) {
	if err := s.validator.Validate(ctx, author); err != nil {
		return models.Author{}, err
	}

	author.Books = nil
	saved, err := s.authorRepository.Save(ctx, author)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorService.save").Int64("author_id", author.ID).Msg("error saving author")
		return models.Author{}, fmt.Errorf("error saving author: %w", err)
	}
	return saved, nil
}

func (s *authorService) FindAll(ctx context.Context) ([]models.Author, error) {
	return s.authorRepository.FindAll(ctx)
}

func (s *authorService) FindByID(ctx context.Context, id int64) (models.Author, error) {
	return s.authorRepository.FindByID(ctx, id)
}

func (s *authorService) FindByLastName(ctx context.Context, lastName string) ([]models.Author, error) {
	return s.authorRepository.FindByLastName(ctx, lastName)
}

func (s *authorService) FindByBooksTitle(ctx context.Context, title string) ([]models.Author, error) {
	return s.authorRepository.FindByBooksTitle(ctx, title)
}
