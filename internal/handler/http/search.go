// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-chi/chi/v5"
)

// search is one derived query exposed under /{resource}/search/{name}.
type search[T any] struct {
	name   string
	params []string
	run    func(ctx context.Context, q queryParams) ([]T, error)
}

func findSearch[T any](searches []search[T], name string) (search[T], error) {
	for _, s := range searches {
		if s.name == name {
			return s, nil
		}
	}
	return search[T]{}, fmt.Errorf("%w: %q", ErrUnknownSearch, name)
}

func searchIndex[T any](resource string, searches []search[T]) models.SearchIndex {
	index := models.SearchIndex{Searches: make([]models.SearchDescriptor, 0, len(searches))}
	for _, s := range searches {
		index.Searches = append(index.Searches, models.SearchDescriptor{
			Name:       s.name,
			Href:       "/" + resource + "/search/" + s.name,
			Parameters: s.params,
		})
	}
	return index
}

func (h *Handler) bookSearches() []search[models.Book] {
	books := h.services.BookService

	return []search[models.Book]{
		{
			name:   "findByTitle",
			params: []string{"title"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				title, err := q.text("title")
				if err != nil {
					return nil, err
				}
				return books.FindByTitle(ctx, title)
			},
		},
		{
			name:   "findByTitleContains",
			params: []string{"keyword"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				keyword, err := q.text("keyword")
				if err != nil {
					return nil, err
				}
				return books.FindByTitleContains(ctx, keyword)
			},
		},
		{
			name:   "findByPublishedDateAfter",
			params: []string{"publishedDate"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				publishedDate, err := q.date("publishedDate")
				if err != nil {
					return nil, err
				}
				return books.FindByPublishedDateAfter(ctx, publishedDate)
			},
		},
		{
			name:   "findByTitleContainsAndPublishedDateAfter",
			params: []string{"keyword", "publishedDate"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				keyword, err := q.text("keyword")
				if err != nil {
					return nil, err
				}
				publishedDate, err := q.date("publishedDate")
				if err != nil {
					return nil, err
				}
				return books.FindByTitleContainsAndPublishedDateAfter(ctx, keyword, publishedDate)
			},
		},
		{
			name:   "findByTitleContainsAndPriceCurrencyAndPriceAmountBetween",
			params: []string{"keyword", "currency", "low", "high"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				keyword, err := q.text("keyword")
				if err != nil {
					return nil, err
				}
				currency, err := q.currency("currency")
				if err != nil {
					return nil, err
				}
				low, err := q.amount("low")
				if err != nil {
					return nil, err
				}
				high, err := q.amount("high")
				if err != nil {
					return nil, err
				}
				return books.FindByTitleContainsAndPriceCurrencyAndPriceAmountBetween(ctx, keyword, currency, low, high)
			},
		},
		{
			name:   "findByAuthorsLastName",
			params: []string{"lastName"},
			run: func(ctx context.Context, q queryParams) ([]models.Book, error) {
				lastName, err := q.text("lastName")
				if err != nil {
					return nil, err
				}
				return books.FindByAuthorsLastName(ctx, lastName)
			},
		},
	}
}

func (h *Handler) authorSearches() []search[models.Author] {
	authors := h.services.AuthorService

	return []search[models.Author]{
		{
			name:   "findByLastName",
			params: []string{"lastName"},
			run: func(ctx context.Context, q queryParams) ([]models.Author, error) {
				lastName, err := q.text("lastName")
				if err != nil {
					return nil, err
				}
				return authors.FindByLastName(ctx, lastName)
			},
		},
		{
			name:   "findByBooksTitle",
			params: []string{"title"},
			run: func(ctx context.Context, q queryParams) ([]models.Author, error) {
				title, err := q.text("title")
				if err != nil {
					return nil, err
				}
				return authors.FindByBooksTitle(ctx, title)
			},
		},
	}
}

func (h *Handler) listBookSearches(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, searchIndex("books", h.bookSearches()), http.StatusOK)
}

func (h *Handler) searchBooks(w http.ResponseWriter, r *http.Request) {
	s, err := findSearch(h.bookSearches(), chi.URLParam(r, "queryName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	books, err := s.run(r.Context(), newQueryParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewBookCollection(books), http.StatusOK)
}

func (h *Handler) listAuthorSearches(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, searchIndex("authors", h.authorSearches()), http.StatusOK)
}

func (h *Handler) searchAuthors(w http.ResponseWriter, r *http.Request) {
	s, err := findSearch(h.authorSearches(), chi.URLParam(r, "queryName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	authors, err := s.run(r.Context(), newQueryParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewAuthorCollection(authors), http.StatusOK)
}
