// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// pathID returns the positive integer {id} path parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}

// decodeBody reads the JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// queryParams reads the parameters of a search request. Every parameter
// is required; an empty string value counts as present.
type queryParams struct {
	values url.Values
}

func newQueryParams(r *http.Request) queryParams {
	return queryParams{values: r.URL.Query()}
}

func (q queryParams) text(name string) (string, error) {
	if !q.values.Has(name) {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidQueryParameter, name)
	}
	return q.values.Get(name), nil
}

func (q queryParams) date(name string) (models.Date, error) {
	raw, err := q.text(name)
	if err != nil {
		return models.Date{}, err
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return date, nil
}

func (q queryParams) currency(name string) (models.Currency, error) {
	raw, err := q.text(name)
	if err != nil {
		return "", err
	}

	currency, err := models.ParseCurrency(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return currency, nil
}

func (q queryParams) amount(name string) (decimal.Decimal, error) {
	raw, err := q.text(name)
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return amount, nil
}
