// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/mock"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Authenticate(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	jane := models.User{Login: "jane", PasswordHash: hash, Roles: []models.Role{models.RoleUser, models.RoleAdmin}}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByLogin(gomock.Any(), "jane").Return(jane, nil)

		principal, err := NewAuthService(users, logger.Nop()).Authenticate(context.Background(), "jane", "secret")
		require.NoError(t, err)

		assert.Equal(t, "jane", principal.Name)
		assert.True(t, principal.Authenticated)
		assert.True(t, principal.HasRole(models.RoleAdmin))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByLogin(gomock.Any(), "jane").Return(jane, nil)

		principal, err := NewAuthService(users, logger.Nop()).Authenticate(context.Background(), "jane", "guess")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.False(t, principal.Authenticated)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := NewAuthService(users, logger.Nop()).Authenticate(context.Background(), "bob", "secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("empty login skips the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)

		_, err := NewAuthService(users, logger.Nop()).Authenticate(context.Background(), "", "secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
