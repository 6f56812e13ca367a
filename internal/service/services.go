// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/events"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
)

type Services struct {
	BookService    BookService
	AuthorService  AuthorService
	AuthService    AuthService
	AppInfoService AppInfoService
	Seeder         Seeder
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewEntityValidator()
	bookService := NewBookService(storages.BookRepository, validator, publisher, logger)
	authorService := NewAuthorService(storages.AuthorRepository, validator, publisher, logger)

	return &Services{
		BookService:    bookService,
		AuthorService:  authorService,
		AuthService:    NewAuthService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
		Seeder:         NewSeeder(bookService, authorService, logger),
	}, nil
}
