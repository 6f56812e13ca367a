// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Book is the owning side of the book/author relation. Its Authors are
// written to the join table on every save.
type Book struct {
	// ID is the surrogate key generated by the store. Zero means "not saved".
	ID int64 `json:"id"`

	// Title is 1–255 characters long.
	Title string `json:"title"`

	// Description is 1–255 characters long.
	Description string `json:"description"`

	// PublishedDate is a calendar date, serialized as YYYY-MM-DD.
	PublishedDate Date `json:"publishedDate"`

	// Price is stored inline in the book row.
	Price Money `json:"price"`

	// Authors must contain at least one entry. On writes only the IDs are
	// read; on reads each entry carries the author's names.
	Authors []AuthorSummary `json:"authors"`
}

// AuthorIDs returns the IDs of the linked authors in their original order.
func (b Book) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}

// Summary returns the representation of b embedded in an Author.
func (b Book) Summary() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title}
}

// BookSummary is a Book as seen from the inverse side of the relation.
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// BookPatch is a partial update of a Book. Nil fields are left unchanged.
type BookPatch struct {
	Title         *string     `json:"title,omitempty"`
	Description   *string     `json:"description,omitempty"`
	PublishedDate *Date       `json:"publishedDate,omitempty"`
	Price         *PricePatch `json:"price,omitempty"`

	// Authors replaces the whole author list when present. A pointer is used
	// so that an explicit empty list can be told apart from an absent one.
	Authors *[]AuthorSummary `json:"authors,omitempty"`
}

// Apply returns a copy of book with the non-nil fields of p applied.
func (p BookPatch) Apply(book Book) Book {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Description != nil {
		book.Description = *p.Description
	}
	if p.PublishedDate != nil {
		book.PublishedDate = *p.PublishedDate
	}
	if p.Price != nil {
		book.Price = p.Price.Apply(book.Price)
	}
	if p.Authors != nil {
		book.Authors = append([]AuthorSummary(nil), (*p.Authors)...)
	}
	return book
}
