// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Author is the inverse side of the book/author relation: Books is derived
// from the join table on reads and ignored on writes.
type Author struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Books     []BookSummary `json:"books"`
}

// Summary returns the representation of a embedded in a Book.
func (a Author) Summary() AuthorSummary {
	return AuthorSummary{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}

// AuthorSummary is an Author as seen from a Book. In request bodies it acts
// as a reference and only ID is read.
type AuthorSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthorPatch is a partial update of an Author. Nil fields are left unchanged.
type AuthorPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Apply returns a copy of author with the non-nil fields of p applied.
func (p AuthorPatch) Apply(author Author) Author {
	if p.FirstName != nil {
		author.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		author.LastName = *p.LastName
	}
	return author
}
