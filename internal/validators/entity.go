// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	// MaxTextLength bounds titles, descriptions and author names, in runes.
	MaxTextLength = 255

	// AmountScale is the number of fraction digits a price may carry.
	AmountScale = 2
)

// maxAmount is the first amount with eleven integer digits.
var maxAmount = decimal.New(1, 10)

var (
	errAmountNotPositive   = validation.NewError("validation_amount_not_positive", "must be greater than 0")
	errAmountScale         = validation.NewError("validation_amount_scale", "must have at most 2 fraction digits")
	errAmountTooLarge      = validation.NewError("validation_amount_too_large", "must have at most 10 integer digits")
	errDateRequired        = validation.NewError("validation_date_required", "is required")
	errAuthorIDNotPositive = validation.NewError("validation_author_id", "author id must be a positive number")
	errAuthorWithoutBooks  = validation.NewError("validation_author_books", "an author must have at least one book")
)

// EntityValidator checks books and authors before they are saved.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate accepts models.Book and models.Author, by value or by pointer.
func (v *EntityValidator) Validate(ctx context.Context, value any) error {
	var err error

	switch entity := value.(type) {
	case models.Book:
		err = validateBook(entity)
	case *models.Book:
		if entity == nil {
			return ErrUnsupportedType
		}
		err = validateBook(*entity)
	case models.Author:
		err = validateAuthor(entity)
	case *models.Author:
		if entity == nil {
			return ErrUnsupportedType
		}
		err = validateAuthor(*entity)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*EntityValidator.Validate").Msg("validation failed")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validateBook(book models.Book) error {
	return validation.ValidateStruct(&book,
		validation.Field(&book.Title, validation.Required, validation.RuneLength(1, MaxTextLength)),
		validation.Field(&book.Description, validation.Required, validation.RuneLength(1, MaxTextLength)),
		validation.Field(&book.PublishedDate, validation.By(requiredDate)),
		validation.Field(&book.Price, validation.By(validMoney)),
		validation.Field(&book.Authors, validation.Required, validation.Each(validation.By(validAuthorReference))),
	)
}

func validateAuthor(author models.Author) error {
	return validation.ValidateStruct(&author,
		validation.Field(&author.FirstName, validation.Required, validation.RuneLength(1, MaxTextLength)),
		validation.Field(&author.LastName, validation.Required, validation.RuneLength(1, MaxTextLength)),
		// A nil list means the client left books out, which is allowed.
		validation.Field(&author.Books, validation.When(author.Books != nil, validation.Required.ErrorObject(errAuthorWithoutBooks))),
	)
}

func requiredDate(value any) error {
	date, ok := value.(models.Date)
	if !ok || date.IsZero() {
		return errDateRequired
	}
	return nil
}

func validMoney(value any) error {
	money, ok := value.(models.Money)
	if !ok {
		return ErrUnsupportedType
	}

	currencies := make([]any, len(models.Currencies))
	for i, c := range models.Currencies {
		currencies[i] = c
	}

	return validation.ValidateStruct(&money,
		validation.Field(&money.Amount, validation.By(validAmount)),
		validation.Field(&money.Currency, validation.Required, validation.In(currencies...)),
	)
}

func validAmount(value any) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return ErrUnsupportedType
	}

	switch {
	case !amount.IsPositive():
		return errAmountNotPositive
	case !amount.Equal(amount.Round(AmountScale)):
		return errAmountScale
	case amount.GreaterThanOrEqual(maxAmount):
		return errAmountTooLarge
	}
	return nil
}

func validAuthorReference(value any) error {
	author, ok := value.(models.AuthorSummary)
	if !ok {
		return ErrUnsupportedType
	}
	if author.ID <= 0 {
		return errAuthorIDNotPositive
	}
	return nil
}
