package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// GET /api/version
// ─────────────────────────────────────────────

func TestGetServerVersion_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"semantic version", "1.2.3"},
		{"empty version", ""},
		{"version with special chars", "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, services := newTestServices(t)
			ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			h := NewHandler(services, config.StructuredConfig{}, logger.Nop())

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("3.0.0")

	rec := serve(router, http.MethodGet, "/api/version/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("ETag"))
}

// ─────────────────────────────────────────────
// GET /health
// ─────────────────────────────────────────────

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		healthErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "database answers",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "database down",
			healthErr:  errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			ts.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(tt.healthErr)

			rec := serve(router, http.MethodGet, "/health", "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
