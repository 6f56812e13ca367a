// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewBookCollection(books), http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := decodeBody(r, &book); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	created, err := h.services.BookService.Create(r.Context(), principal, book)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("book_id", created.ID).Str("principal", principal.Name).Msg("book created")

	w.Header().Set("Location", "/books/"+strconv.FormatInt(created.ID, 10))
	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) replaceBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var book models.Book
	if err = decodeBody(r, &book); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	replaced, err := h.services.BookService.Replace(r.Context(), principal, id, book)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, replaced, http.StatusOK)
}

func (h *Handler) patchBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.BookPatch
	if err = decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	patched, err := h.services.BookService.Patch(r.Context(), principal, id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, patched, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	if err = h.services.BookService.Delete(r.Context(), principal, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("book_id", id).Str("principal", principal.Name).Msg("book deleted")
	w.WriteHeader(http.StatusNoContent)
}
