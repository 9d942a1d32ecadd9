package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "Maria Silva", domain.RoleVendedor)

	got, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Lookup is case-insensitive
	got, err = repo.GetByEmail(ctx, strings.ToUpper(user.Email))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepository_ListSellers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateTestUser(t, db, "Ana Vendedora", domain.RoleVendedor)
	testutil.CreateTestUser(t, db, "Bruno Gestor", domain.RoleGestor)
	testutil.CreateTestUser(t, db, "Carla Admin", domain.RoleAdmin)

	inactive := testutil.CreateTestUser(t, db, "Davi Inativo", domain.RoleVendedor)
	inactive.IsActive = false
	require.NoError(t, db.Save(inactive).Error)

	sellers, err := repo.ListSellers(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	// Ordered by name; admins without a seller role are excluded
	assert.Equal(t, "Ana Vendedora", sellers[0].FullName)
	assert.Equal(t, "Bruno Gestor", sellers[1].FullName)
}
