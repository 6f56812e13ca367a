// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

// Storages bundles every repository the service layer needs together with
// the database they share.
type Storages struct {
	BookRepository   BookRepository
	AuthorRepository AuthorRepository
	UserRepository   UserRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver, applies
// the migrations and builds the repositories. The user repository holds
// [DefaultUsers].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	users, err := DefaultUsers()
	if err != nil {
		db.Close()
		return nil, err
	}

	return newStorages(db, users, log), nil
}

func newStorages(db *DB, users []models.User, log *logger.Logger) *Storages {
	return &Storages{
		BookRepository:   NewBookRepository(db, log),
		AuthorRepository: NewAuthorRepository(db, log),
		UserRepository:   NewUserRepository(users, log),
		db:               db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
