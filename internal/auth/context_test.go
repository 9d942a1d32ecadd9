package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContext_RoundTrip(t *testing.T) {
	uc := &auth.UserContext{
		UserID:   uuid.New(),
		FullName: "Maria Silva",
		Roles:    []domain.UserRole{domain.RoleVendedor},
	}

	ctx := auth.WithUserContext(context.Background(), uc)
	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uc, got)

	_, ok = auth.FromContext(context.Background())
	assert.False(t, ok)
}

func TestUserContext_IsManager(t *testing.T) {
	tests := []struct {
		name     string
		roles    []domain.UserRole
		expected bool
	}{
		{name: "admin is manager", roles: []domain.UserRole{domain.RoleAdmin}, expected: true},
		{name: "gestor is manager", roles: []domain.UserRole{domain.RoleGestor}, expected: true},
		{name: "vendedor is not", roles: []domain.UserRole{domain.RoleVendedor}, expected: false},
		{name: "no roles", roles: nil, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &auth.UserContext{Roles: tc.roles}
			assert.Equal(t, tc.expected, uc.IsManager())
		})
	}
}

func TestUserContext_CanAccessSeller(t *testing.T) {
	sellerID := uuid.New()
	otherID := uuid.New()

	seller := &auth.UserContext{UserID: sellerID, Roles: []domain.UserRole{domain.RoleVendedor}}
	assert.True(t, seller.CanAccessSeller(sellerID))
	assert.False(t, seller.CanAccessSeller(otherID))

	manager := &auth.UserContext{UserID: uuid.New(), Roles: []domain.UserRole{domain.RoleGestor}}
	assert.True(t, manager.CanAccessSeller(sellerID))
	assert.True(t, manager.CanAccessSeller(otherID))
}
