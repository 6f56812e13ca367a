// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/shopspring/decimal"
)

// sampleBook is one seeded book together with its single author.
type sampleBook struct {
	book   models.Book
	author models.Author
}

func sampleBooks() []sampleBook {
	return []sampleBook{
		{
			book: models.Book{
				Title: "Spring Microservices",
				Description: "Learn how to efficiently build and implement microservices in Spring,\n" +
					"and how to use Docker and Mesos to push the boundaries. Examine a number of real-world use cases and hands-on code examples.\n" +
					"Distribute your microservices in a completely new way",
				PublishedDate: models.NewDate(2016, 6, 28),
				Price:         models.NewMoney(decimal.RequireFromString("45.83")),
			},
			author: models.Author{FirstName: "Felipe", LastName: "Gutierrez"},
		},
		{
			book: models.Book{
				Title:         "Pro Spring Boot",
				Description:   "A no-nonsense guide containing case studies and best practise for Spring Boot",
				PublishedDate: models.NewDate(2016, 5, 21),
				Price:         models.NewMoney(decimal.RequireFromString("42.74")),
			},
			author: models.Author{FirstName: "Rajesh", LastName: "RV"},
		},
	}
}

type seeder struct {
	bookService   BookService
	authorService AuthorService

	logger *logger.Logger
}

func NewSeeder(bookService BookService, authorService AuthorService, logger *logger.Logger) Seeder {
	return &seeder{
		bookService:   bookService,
		authorService: authorService,
		logger:        logger,
	}
}

// Seed inserts the two sample books, each with its own author, on behalf of
// principal. Nothing is written when the catalogue already has books, so
// restarting against a persistent database does not duplicate them.
func (s *seeder) Seed(ctx context.Context, principal models.Principal) error {
	log := logger.FromContext(ctx)

	count, err := s.bookService.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting books before seeding: %w", err)
	}
	if count > 0 {
		log.Info().Str("func", "*seeder.Seed").Int64("books", count).Msg("catalogue is not empty, skipping seed")
		return nil
	}

	for _, sample := range sampleBooks() {
		author, err := s.authorService.Create(ctx, principal, sample.author)
		if err != nil {
			return fmt.Errorf("error seeding author %s %s: %w", sample.author.FirstName, sample.author.LastName, err)
		}

		book := sample.book
		book.Authors = []models.AuthorSummary{author.Summary()}
		if _, err = s.bookService.Create(ctx, principal, book); err != nil {
			return fmt.Errorf("error seeding book %q: %w", book.Title, err)
		}
	}

	log.Info().Str("func", "*seeder.Seed").Int("books", len(sampleBooks())).Msg("sample books seeded")
	return nil
}
