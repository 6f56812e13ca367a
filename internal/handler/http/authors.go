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

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.services.AuthorService.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewAuthorCollection(authors), http.StatusOK)
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	author, err := h.services.AuthorService.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, author, http.StatusOK)
}

// createAuthor ignores any "books" in the body; links are made from the
// book side.
func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) {
	var author models.Author
	if err := decodeBody(r, &author); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	created, err := h.services.AuthorService.Create(r.Context(), principal, author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("author_id", created.ID).Str("principal", principal.Name).Msg("author created")

	w.Header().Set("Location", "/authors/"+strconv.FormatInt(created.ID, 10))
	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) replaceAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var author models.Author
	if err = decodeBody(r, &author); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	replaced, err := h.services.AuthorService.Replace(r.Context(), principal, id, author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, replaced, http.StatusOK)
}

func (h *Handler) patchAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.AuthorPatch
	if err = decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	patched, err := h.services.AuthorService.Patch(r.Context(), principal, id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, patched, http.StatusOK)
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	principal, _ := utils.GetPrincipalFromContext(r.Context())
	if err = h.services.AuthorService.Delete(r.Context(), principal, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("author_id", id).Str("principal", principal.Name).Msg("author deleted")
	w.WriteHeader(http.StatusNoContent)
}
