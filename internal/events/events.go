// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"time"
)

// Entity names the kind of record an event is about.
type Entity string

const (
	EntityBook   Entity = "book"
	EntityAuthor Entity = "author"
)

// Action names what happened to the record.
type Action string

const (
	ActionCreated  Action = "created"
	ActionReplaced Action = "replaced"
	ActionPatched  Action = "patched"
	ActionDeleted  Action = "deleted"
)

// Event is the message pushed for every change.
type Event struct {
	Entity     Entity    `json:"entity"`
	Action     Action    `json:"action"`
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New returns an event stamped with the current UTC time.
func New(entity Entity, action Action, id int64, actor string) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Publisher delivers change events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
