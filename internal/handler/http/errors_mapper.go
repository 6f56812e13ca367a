// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched top to bottom, so wrapped errors that satisfy
// several targets must list the more specific one first
// (store.ErrUnknownAuthorReference wraps store.ErrAuthorNotFound).
var errorStatuses = []errorStatus{
	{ErrInvalidBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidPathID, http.StatusBadRequest, app.MsgInvalidID},
	{ErrInvalidQueryParameter, http.StatusBadRequest, app.MsgInvalidQueryParameter},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgValidationFailure},
	{store.ErrUnknownAuthorReference, http.StatusBadRequest, app.MsgUnknownAuthor},

	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgAuthenticationRequired},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{ErrUnknownSearch, http.StatusNotFound, app.MsgSearchNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrBookNotFound, http.StatusNotFound, app.MsgBookNotFound},
	{store.ErrAuthorNotFound, http.StatusNotFound, app.MsgAuthorNotFound},

	{store.ErrAuthorHasBooks, http.StatusConflict, app.MsgAuthorHasBooks},
	{store.ErrConstraintViolation, http.StatusConflict, app.MsgConflict},

	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// responseFromError returns the status and body describing err. Unknown
// errors become a 500 without leaking their text.
func responseFromError(err error) (int, models.ErrorResponse) {
	for _, candidate := range errorStatuses {
		if !errors.Is(err, candidate.target) {
			continue
		}

		response := models.ErrorResponse{Error: candidate.message}
		var fieldErrors validation.Errors
		if errors.As(err, &fieldErrors) {
			response.Details = fieldErrors
		}
		return candidate.status, response
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: app.MsgInternalServerError}
}

// writeError logs err and sends the matching JSON error body. A 401 carries
// the Basic challenge.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, response := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", h.challenge())
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.writeError").Msg("error writing error response")
	}
}

func (h *Handler) challenge() string {
	return fmt.Sprintf(`Basic realm=%q, charset="UTF-8"`, h.realm)
}
