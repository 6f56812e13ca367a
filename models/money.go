// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one of the currencies a price can be expressed in.
type Currency string

const (
	CAD Currency = "CAD"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// Currencies lists every supported Currency.
var Currencies = []Currency{CAD, EUR, USD}

// IsValid reports whether c is one of [Currencies].
func (c Currency) IsValid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCurrency converts a case-insensitive currency code into a Currency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown currency %q", s)
	}
	return c, nil
}

// Money is a value object embedded in [Book].
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney returns amount in USD.
func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: USD}
}

// UnmarshalJSON decodes Money and falls back to USD when the currency is
// missing. The amount may be a JSON number or a string.
func (m *Money) UnmarshalJSON(b []byte) error {
	type money Money
	var decoded money
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}

	if decoded.Currency == "" {
		decoded.Currency = USD
	}

	*m = Money(decoded)
	return nil
}

// String formats m as "45.83 USD".
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + string(m.Currency)
}

// PricePatch is a partial update of a [Money]. Nil fields are left
// unchanged, so patching the amount keeps the stored currency.
type PricePatch struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Currency *Currency        `json:"currency,omitempty"`
}

// Apply returns a copy of price with the non-nil fields of p applied.
func (p PricePatch) Apply(price Money) Money {
	if p.Amount != nil {
		price.Amount = *p.Amount
	}
	if p.Currency != nil {
		price.Currency = *p.Currency
	}
	return price
}
