// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook() Book {
	return Book{
		ID:            1,
		Title:         "Pro Spring Boot",
		Description:   "A no-nonsense guide",
		PublishedDate: NewDate(2016, time.May, 21),
		Price:         NewMoney(decimal.RequireFromString("42.74")),
		Authors:       []AuthorSummary{{ID: 2, FirstName: "Rajesh", LastName: "RV"}},
	}
}

func TestBookPatch_Apply_OnlyPresentFields(t *testing.T) {
	title := "Pro Spring Boot 2"
	book := sampleBook()

	patched := BookPatch{Title: &title}.Apply(book)

	assert.Equal(t, "Pro Spring Boot 2", patched.Title)
	assert.Equal(t, book.Description, patched.Description)
	assert.Equal(t, book.PublishedDate, patched.PublishedDate)
	assert.Equal(t, book.Authors, patched.Authors)
	assert.Equal(t, "Pro Spring Boot", book.Title, "original must not change")
}

func TestBookPatch_Apply_EmptyAuthorsReplacesList(t *testing.T) {
	var patch BookPatch
	require.NoError(t, json.Unmarshal([]byte(`{"authors":[]}`), &patch))
	require.NotNil(t, patch.Authors)

	patched := patch.Apply(sampleBook())

	assert.Empty(t, patched.Authors)
}

func TestBookPatch_Apply_AbsentAuthorsKeepsList(t *testing.T) {
	var patch BookPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Pro Spring Boot 2"}`), &patch))

	patched := patch.Apply(sampleBook())

	assert.Len(t, patched.Authors, 1)
	assert.Equal(t, sampleBook().Price, patched.Price)
}

func TestBookPatch_Apply_Price(t *testing.T) {
	book := sampleBook()
	book.Price.Currency = EUR

	tests := []struct {
		name         string
		body         string
		wantAmount   string
		wantCurrency Currency
	}{
		{"amount only keeps currency", `{"price":{"amount":"50.00"}}`, "50", EUR},
		{"currency only keeps amount", `{"price":{"currency":"CAD"}}`, "42.74", CAD},
		{"both fields", `{"price":{"amount":"10","currency":"USD"}}`, "10", USD},
		{"empty price object", `{"price":{}}`, "42.74", EUR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch BookPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			require.NotNil(t, patch.Price)

			patched := patch.Apply(book)

			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(patched.Price.Amount),
				"amount %s", patched.Price.Amount)
			assert.Equal(t, tt.wantCurrency, patched.Price.Currency)
			assert.Equal(t, EUR, book.Price.Currency, "original must not change")
		})
	}
}

func TestBook_JSONShape(t *testing.T) {
	data, err := json.Marshal(sampleBook())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"title": "Pro Spring Boot",
		"description": "A no-nonsense guide",
		"publishedDate": "2016-05-21",
		"price": {"amount": "42.74", "currency": "USD"},
		"authors": [{"id": 2, "firstName": "Rajesh", "lastName": "RV"}]
	}`, string(data))
}

func TestBook_AuthorIDs(t *testing.T) {
	book := sampleBook()
	book.Authors = append(book.Authors, AuthorSummary{ID: 7})

	assert.Equal(t, []int64{2, 7}, book.AuthorIDs())
}

func TestAuthorPatch_Apply(t *testing.T) {
	last := "Gutiérrez"
	author := Author{ID: 1, FirstName: "Felipe", LastName: "Gutierrez"}

	patched := AuthorPatch{LastName: &last}.Apply(author)

	assert.Equal(t, "Felipe", patched.FirstName)
	assert.Equal(t, "Gutiérrez", patched.LastName)
}
