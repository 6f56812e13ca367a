// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

// authenticate is an HTTP middleware that resolves the caller of every
// request and stores it in the request context under
// [utils.PrincipalCtxKey].
//
// A request without an "Authorization" header continues as the anonymous
// principal. A header that is not valid Basic credentials, or credentials
// that [service.AuthService.Authenticate] rejects, end the request with
// HTTP 401 Unauthorized and a WWW-Authenticate challenge, whatever the
// route. Role checks are left to [Handler.requireRole] and the services.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, models.AnonymousPrincipal())))
			return
		}

		login, password, ok := r.BasicAuth()
		if !ok || login == "" {
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		principal, err := h.services.AuthService.Authenticate(ctx, login, password)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Str("login", principal.Name).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireRole rejects callers without role before the handler runs:
// anonymous callers get 401 with a challenge, authenticated ones 403.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := utils.GetPrincipalFromContext(r.Context())
			if err := service.Authorize(principal, role); err != nil {
				h.writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
