// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestWithETag_TagsSuccessfulGet(t *testing.T) {
	rr := httptest.NewRecorder()
	withETag(jsonHandler(http.StatusOK, `{"books":[],"length":0}`)).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"books":[],"length":0}`, rr.Body.String())

	etag := rr.Header().Get("ETag")
	require.Len(t, etag, 66, "quoted hex sha256")
	assert.Equal(t, byte('"'), etag[0])
}

func TestWithETag_SameBodySameTag(t *testing.T) {
	handler := withETag(jsonHandler(http.StatusOK, `{"id":1}`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/books/1", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/books/1", nil))

	assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))

	other := httptest.NewRecorder()
	withETag(jsonHandler(http.StatusOK, `{"id":2}`)).
		ServeHTTP(other, httptest.NewRequest(http.MethodGet, "/books/2", nil))
	assert.NotEqual(t, first.Header().Get("ETag"), other.Header().Get("ETag"))
}

func TestWithETag_IfNoneMatch(t *testing.T) {
	handler := withETag(jsonHandler(http.StatusOK, `{"id":1}`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/books/1", nil))
	etag := first.Header().Get("ETag")

	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
	}{
		{"exact tag", etag, http.StatusNotModified},
		{"weak form of the tag", "W/" + etag, http.StatusNotModified},
		{"tag in a list", `"other", ` + etag, http.StatusNotModified},
		{"wildcard", "*", http.StatusNotModified},
		{"stale tag", `"stale"`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/books/1", nil)
			req.Header.Set("If-None-Match", tt.ifNoneMatch)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, etag, rr.Header().Get("ETag"))
			if tt.wantStatus == http.StatusNotModified {
				assert.Zero(t, rr.Body.Len())
				assert.Empty(t, rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestWithETag_SkipsErrorsAndOtherMethods(t *testing.T) {
	t.Run("GET 404", func(t *testing.T) {
		rr := httptest.NewRecorder()
		withETag(jsonHandler(http.StatusNotFound, `{"error":"book not found"}`)).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books/9", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Header().Get("ETag"))
		assert.Equal(t, `{"error":"book not found"}`, rr.Body.String())
	})

	t.Run("POST", func(t *testing.T) {
		rr := httptest.NewRecorder()
		withETag(jsonHandler(http.StatusCreated, `{"id":3}`)).
			ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/books", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Empty(t, rr.Header().Get("ETag"))
	})
}
