// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookCollection is the body of every endpoint returning several books.
type BookCollection struct {
	Books []Book `json:"books"`

	// Length is the number of entries in Books.
	Length int `json:"length"`
}

// NewBookCollection wraps books, turning nil into an empty JSON array.
func NewBookCollection(books []Book) BookCollection {
	if books == nil {
		books = []Book{}
	}
	return BookCollection{Books: books, Length: len(books)}
}

// AuthorCollection is the body of every endpoint returning several authors.
type AuthorCollection struct {
	Authors []Author `json:"authors"`
	Length  int      `json:"length"`
}

// NewAuthorCollection wraps authors, turning nil into an empty JSON array.
func NewAuthorCollection(authors []Author) AuthorCollection {
	if authors == nil {
		authors = []Author{}
	}
	return AuthorCollection{Authors: authors, Length: len(authors)}
}

// SearchDescriptor describes one derived query exposed under
// /{resource}/search/{name}.
type SearchDescriptor struct {
	Name       string   `json:"name"`
	Href       string   `json:"href"`
	Parameters []string `json:"parameters"`
}

// SearchIndex is the body of GET /{resource}/search.
type SearchIndex struct {
	Searches []SearchDescriptor `json:"searches"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is a short, stable description of the failure kind.
	Error string `json:"error"`

	// Details carries per-field validation messages when present.
	Details any `json:"details,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
