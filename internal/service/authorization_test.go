// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	joe := models.User{Login: "joe", Roles: []models.Role{models.RoleUser}}.Principal()
	jane := models.User{Login: "jane", Roles: []models.Role{models.RoleUser, models.RoleAdmin}}.Principal()

	tests := []struct {
		name      string
		principal models.Principal
		role      models.Role
		wantErr   error
	}{
		{name: "anonymous", principal: models.AnonymousPrincipal(), role: models.RoleUser, wantErr: ErrUnauthenticated},
		{name: "user without admin", principal: joe, role: models.RoleAdmin, wantErr: ErrAccessDenied},
		{name: "user role", principal: joe, role: models.RoleUser},
		{name: "admin", principal: jane, role: models.RoleAdmin},
		{name: "system", principal: models.SystemPrincipal(), role: models.RoleAdmin},
		{name: "roles without authentication", principal: models.Principal{Name: "x", Roles: []models.Role{models.RoleAdmin}}, role: models.RoleAdmin, wantErr: ErrUnauthenticated},
		{name: "zero principal", principal: models.Principal{}, role: models.RoleUser, wantErr: ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.role)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
