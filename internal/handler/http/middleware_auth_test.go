// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthHandler returns a handler whose services only answer Authenticate.
func newAuthHandler(t *testing.T) *Handler {
	t.Helper()
	_, services := newTestServices(t)
	return NewHandler(services, config.StructuredConfig{}, logger.Nop())
}

// capturePrincipal records the principal that reached the next handler.
func capturePrincipal(got *models.Principal, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*got, _ = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		basicLogin    string
		basicPassword string
		wantStatus    int
		wantNext      bool
		wantPrincipal models.Principal
	}{
		{
			name:          "no header continues anonymously",
			wantStatus:    http.StatusOK,
			wantNext:      true,
			wantPrincipal: models.AnonymousPrincipal(),
		},
		{
			name:          "valid credentials of a user",
			basicLogin:    "joe",
			basicPassword: "secret",
			wantStatus:    http.StatusOK,
			wantNext:      true,
			wantPrincipal: joe,
		},
		{
			name:          "valid credentials of an admin",
			basicLogin:    "jane",
			basicPassword: "secret",
			wantStatus:    http.StatusOK,
			wantNext:      true,
			wantPrincipal: jane,
		},
		{
			name:          "wrong password",
			basicLogin:    "joe",
			basicPassword: "guess",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unknown login",
			basicLogin:    "mallory",
			basicPassword: "secret",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "bearer scheme is rejected",
			authorization: "Bearer abc.def.ghi",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "broken base64",
			authorization: "Basic !!!",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "empty login",
			basicLogin:    "",
			basicPassword: "secret",
			authorization: "Basic OnNlY3JldA==", // ":secret"
			wantStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(t)

			var (
				principal models.Principal
				called    bool
			)
			middleware := h.authenticate(capturePrincipal(&principal, &called))

			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			switch {
			case tt.authorization != "":
				req.Header.Set("Authorization", tt.authorization)
			case tt.basicLogin != "":
				req.SetBasicAuth(tt.basicLogin, tt.basicPassword)
			}

			rec := httptest.NewRecorder()
			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)

			if tt.wantNext {
				assert.Equal(t, tt.wantPrincipal, principal)
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
				return
			}

			assert.Equal(t, `Basic realm="go-book-keeper", charset="UTF-8"`, rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"error":"invalid login/password"}`, rec.Body.String())
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *models.Principal
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "no principal in context",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
		},
		{
			name:       "anonymous",
			principal:  &models.Principal{Name: "anonymous"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
		},
		{
			name:       "user without the role",
			principal:  &joe,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"access denied"}`,
		},
		{
			name:       "admin",
			principal:  &jane,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(t)

			var (
				principal models.Principal
				called    bool
			)
			middleware := h.requireRole(models.RoleAdmin)(capturePrincipal(&principal, &called))

			req := httptest.NewRequest(http.MethodPost, "/books", nil)
			if tt.principal != nil {
				req = req.WithContext(utils.WithPrincipal(req.Context(), *tt.principal))
			}

			rec := httptest.NewRecorder()
			middleware.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
