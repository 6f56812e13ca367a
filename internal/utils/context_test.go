// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	jane := models.User{Login: "jane", Roles: []models.Role{models.RoleUser, models.RoleAdmin}}.Principal()
	ctx := WithPrincipal(context.Background(), jane)

	principal, ok := GetPrincipalFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, jane, principal)
	assert.True(t, principal.HasRole(models.RoleAdmin))
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	principal, ok := GetPrincipalFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, models.AnonymousPrincipal(), principal)
	assert.False(t, principal.HasRole(models.RoleUser))
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "jane")

	principal, ok := GetPrincipalFromContext(ctx)

	assert.False(t, ok)
	assert.False(t, principal.Authenticated)
}

func TestGetPrincipalFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.SystemPrincipal())

	_, ok := GetPrincipalFromContext(ctx)

	assert.False(t, ok)
}

func TestGetTraceIDFromContext(t *testing.T) {
	assert.Empty(t, GetTraceIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")
	assert.Equal(t, "trace-1", GetTraceIDFromContext(ctx))
}
