// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// The account set is fixed at construction and only read afterwards, so
// no locking is needed.
type userRepository struct {
	logger *logger.Logger
	users  map[string]models.User
}

// NewUserRepository constructs a [UserRepository] holding users, keyed by
// login. A later user with the same login replaces an earlier one.
func NewUserRepository(users []models.User, logger *logger.Logger) UserRepository {
	logger.Debug().Int("users", len(users)).Msg("creating user repository")

	byLogin := make(map[string]models.User, len(users))
	for _, user := range users {
		byLogin[user.Login] = user
	}

	return &userRepository{
		logger: logger,
		users:  byLogin,
	}
}

// FindUserByLogin returns the account registered under login, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	user, ok := r.users[login]
	if !ok {
		logger.FromContext(ctx).Debug().
			Str("func", "*userRepository.FindUserByLogin").
			Str("login", login).
			Msg("no user with this login")
		return models.User{}, ErrNoUserWasFound
	}

	user.Roles = append([]models.Role(nil), user.Roles...)
	return user, nil
}

// DefaultUsers returns the two built-in accounts: joe with the USER role and
// jane with USER and ADMIN. Both use the password "secret".
func DefaultUsers() ([]models.User, error) {
	hash, err := utils.HashPassword("secret")
	if err != nil {
		return nil, fmt.Errorf("error creating default users: %w", err)
	}

	return []models.User{
		{
			Login:        "joe",
			PasswordHash: hash,
			Roles:        []models.Role{models.RoleUser},
		},
		{
			Login:        "jane",
			PasswordHash: hash,
			Roles:        []models.Role{models.RoleUser, models.RoleAdmin},
		},
	}, nil
}
