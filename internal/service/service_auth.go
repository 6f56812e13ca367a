// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

// authService verifies credentials against a [store.UserRepository]
// holding bcrypt password hashes.
type authService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate looks the login up and compares password with the stored
// hash. Unknown logins and wrong passwords both yield
// [ErrInvalidCredentials], so callers cannot tell them apart.
func (a *authService) Authenticate(ctx context.Context, login, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		log.Debug().Str("func", "*authService.Authenticate").Msg("empty login")
		return models.AnonymousPrincipal(), ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Authenticate").Str("login", login).Msg("user search by login failed")
		return models.AnonymousPrincipal(), fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	if err = utils.CheckPassword(user.PasswordHash, password); err != nil {
		log.Warn().Str("func", "*authService.Authenticate").Str("login", login).Msg("wrong password")
		return models.AnonymousPrincipal(), fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	return user.Principal(), nil
}
