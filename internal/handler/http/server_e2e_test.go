// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/events"
	handlerhttp "github.com/MKhiriev/go-book-keeper/internal/handler/http"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededServer starts the whole stack on an in-memory sqlite database
// holding the sample catalogue.
func newSeededServer(t *testing.T) *resty.Client {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App:     config.App{Version: "e2e"},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, events.NewNopPublisher(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, services.Seeder.Seed(ctx, models.SystemPrincipal()))

	srv := httptest.NewServer(handlerhttp.NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

func TestServer_ReadsAreOpen(t *testing.T) {
	client := newSeededServer(t)

	var books models.BookCollection
	resp, err := client.R().SetResult(&books).Get("/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 2, books.Length)

	var found models.BookCollection
	resp, err = client.R().
		SetQueryParam("keyword", "spring").
		SetResult(&found).
		Get("/books/search/findByTitleContains")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 2, found.Length, "title match ignores case")

	resp, err = client.R().SetBasicAuth("joe", "secret").Get("/authors")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestServer_WritesNeedAdmin(t *testing.T) {
	client := newSeededServer(t)

	var authors models.AuthorCollection
	_, err := client.R().
		SetQueryParam("lastName", "RV").
		SetResult(&authors).
		Get("/authors/search/findByLastName")
	require.NoError(t, err)
	require.Equal(t, 1, authors.Length)
	rajesh := authors.Authors[0]

	newBook := map[string]any{
		"title":         "Pro Spring Boot 2",
		"description":   "An authoritative guide",
		"publishedDate": "2019-01-01",
		"price":         map[string]any{"amount": "39.99", "currency": "EUR"},
		"authors":       []map[string]any{{"id": rajesh.ID}},
	}

	resp, err := client.R().SetBody(newBook).Post("/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Contains(t, resp.Header().Get("WWW-Authenticate"), "Basic realm=")

	resp, err = client.R().SetBasicAuth("joe", "secret").SetBody(newBook).Post("/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = client.R().SetBasicAuth("jane", "wrong").SetBody(newBook).Post("/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var created models.Book
	resp, err = client.R().SetBasicAuth("jane", "secret").SetBody(newBook).SetResult(&created).Post("/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.Equal(t, "/books/"+strconv.FormatInt(created.ID, 10), resp.Header().Get("Location"))
	assert.Equal(t, models.EUR, created.Price.Currency)
	require.Len(t, created.Authors, 1)
	assert.Equal(t, "RV", created.Authors[0].LastName)

	var fetched models.Book
	resp, err = client.R().SetResult(&fetched).Get("/books/" + strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Pro Spring Boot 2", fetched.Title)

	var author models.Author
	_, err = client.R().SetResult(&author).Get("/authors/" + strconv.FormatInt(rajesh.ID, 10))
	require.NoError(t, err)
	assert.Len(t, author.Books, 2)
}

func TestServer_ErrorStatuses(t *testing.T) {
	client := newSeededServer(t)
	admin := func() *resty.Request {
		var failure models.ErrorResponse
		return client.R().SetBasicAuth("jane", "secret").SetError(&failure)
	}

	resp, err := admin().Delete("/books/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	var authors models.AuthorCollection
	_, err = client.R().SetQueryParam("lastName", "Gutierrez").SetResult(&authors).Get("/authors/search/findByLastName")
	require.NoError(t, err)
	require.Equal(t, 1, authors.Length)

	resp, err = admin().Delete("/authors/" + strconv.FormatInt(authors.Authors[0].ID, 10))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	resp, err = admin().
		SetBody(map[string]any{
			"title":         "Orphan",
			"description":   "No such author",
			"publishedDate": "2020-02-02",
			"price":         map[string]any{"amount": 10},
			"authors":       []map[string]any{{"id": 9999}},
		}).
		Post("/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = admin().
		SetBody(map[string]any{
			"title":         "Nowhere",
			"description":   "Missing book, unknown author",
			"publishedDate": "2020-02-02",
			"price":         map[string]any{"amount": 10},
			"authors":       []map[string]any{{"id": 9999}},
		}).
		Put("/books/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode(), "a missing book wins over an unknown author")

	resp, err = admin().
		SetBody(map[string]any{"firstName": "Craig", "lastName": "Walls", "books": []any{}}).
		Post("/authors")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Contains(t, resp.Error().(*models.ErrorResponse).Details, "books")

	resp, err = admin().SetBody(map[string]any{"title": ""}).Post("/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())
	failure := resp.Error().(*models.ErrorResponse)
	assert.Equal(t, "validation failure", failure.Error)
	assert.NotNil(t, failure.Details)

	resp, err = client.R().Get("/books/search/findByTitleContains")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = client.R().Put("/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode())
	assert.Equal(t, "GET, POST", resp.Header().Get("Allow"))
}

func TestServer_PatchPriceKeepsCurrency(t *testing.T) {
	client := newSeededServer(t)

	var authors models.AuthorCollection
	_, err := client.R().SetQueryParam("lastName", "RV").SetResult(&authors).Get("/authors/search/findByLastName")
	require.NoError(t, err)
	require.Equal(t, 1, authors.Length)

	var created models.Book
	resp, err := client.R().SetBasicAuth("jane", "secret").
		SetBody(map[string]any{
			"title":         "Pro Spring Boot 2",
			"description":   "An authoritative guide",
			"publishedDate": "2019-01-01",
			"price":         map[string]any{"amount": "39.99", "currency": "EUR"},
			"authors":       []map[string]any{{"id": authors.Authors[0].ID}},
		}).
		SetResult(&created).
		Post("/books")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())

	path := "/books/" + strconv.FormatInt(created.ID, 10)

	var patched models.Book
	resp, err = client.R().SetBasicAuth("jane", "secret").
		SetBody(`{"price":{"amount":"50.00"}}`).
		SetHeader("Content-Type", "application/json").
		SetResult(&patched).
		Patch(path)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, models.EUR, patched.Price.Currency)
	assert.True(t, decimal.NewFromInt(50).Equal(patched.Price.Amount), "amount %s", patched.Price.Amount)

	var fetched models.Book
	_, err = client.R().SetResult(&fetched).Get(path)
	require.NoError(t, err)
	assert.Equal(t, models.EUR, fetched.Price.Currency)
	assert.Equal(t, "Pro Spring Boot 2", fetched.Title)
}

func TestServer_ThroughAdapter(t *testing.T) {
	client := newSeededServer(t)
	ctx := context.Background()

	api, err := adapter.NewHTTPServerAdapter(adapter.HTTPConfig{Address: client.BaseURL}, logger.Nop())
	require.NoError(t, err)

	version, err := api.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)

	_, err = api.CreateAuthor(ctx, models.Author{FirstName: "Craig", LastName: "Walls"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	api.SetCredentials("jane", "secret")
	craig, err := api.CreateAuthor(ctx, models.Author{FirstName: "Craig", LastName: "Walls"})
	require.NoError(t, err)

	lastName := "Wallis"
	patched, err := api.PatchAuthor(ctx, craig.ID, models.AuthorPatch{LastName: &lastName})
	require.NoError(t, err)
	assert.Equal(t, "Craig", patched.FirstName)
	assert.Equal(t, "Wallis", patched.LastName)

	found, err := api.SearchAuthors(ctx, "findByLastName", map[string]string{"lastName": "Wallis"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, api.DeleteAuthor(ctx, craig.ID))
	_, err = api.GetAuthor(ctx, craig.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
