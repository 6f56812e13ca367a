// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	router.Use(withETag)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.authenticate)

	router.Get("/health", h.checkHealth)
	router.Get("/api/version", h.getServerVersion)

	router.Get("/books", h.listBooks)
	router.Get("/books/search", h.listBookSearches)
	router.Get("/books/search/{queryName}", h.searchBooks)
	router.Get("/books/{id}", h.getBook)

	router.Get("/authors", h.listAuthors)
	router.Get("/authors/search", h.listAuthorSearches)
	router.Get("/authors/search/{queryName}", h.searchAuthors)
	router.Get("/authors/{id}", h.getAuthor)

	// mutations
	router.Group(func(r chi.Router) {
		r.Use(h.requireRole(models.RoleAdmin))

		r.Post("/books", h.createBook)
		r.Put("/books/{id}", h.replaceBook)
		r.Patch("/books/{id}", h.patchBook)
		r.Delete("/books/{id}", h.deleteBook)

		r.Post("/authors", h.createAuthor)
		r.Put("/authors/{id}", h.replaceAuthor)
		r.Patch("/authors/{id}", h.patchAuthor)
		r.Delete("/authors/{id}", h.deleteAuthor)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
