package service_test

import (
	"context"
	"testing"

	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/config"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *service.UserService {
	tokens := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key",
		TokenTTLMinutes: 60,
	}, "brokerage-api")
	return service.NewUserService(repository.NewUserRepository(db), tokens, zap.NewNop())
}

func TestUserService_CreateAndLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateUserRequest{
		FullName:            "Maria Silva",
		Email:               "maria@example.com",
		Password:            "senha-segura-123",
		Roles:               []string{"Vendedor"},
		MetaFinanceira:      10000,
		PorcentagemComissao: 10,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, []string{"Vendedor"}, created.Roles)

	resp, err := svc.Login(ctx, &domain.LoginRequest{
		Email:    "maria@example.com",
		Password: "senha-segura-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)
}

func TestUserService_Login_Failures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateUserRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha-segura-123",
		Roles:    []string{"Vendedor"},
	})
	require.NoError(t, err)

	// Wrong password and unknown email fail the same way
	_, err = svc.Login(ctx, &domain.LoginRequest{Email: "maria@example.com", Password: "errada"})
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.Login(ctx, &domain.LoginRequest{Email: "ninguem@example.com", Password: "qualquer"})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateUserRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha-segura-123",
		Roles:    []string{"Vendedor"},
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, created.ID, &domain.UpdateUserRequest{
		FullName: created.FullName,
		Roles:    created.Roles,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &domain.LoginRequest{Email: "maria@example.com", Password: "senha-segura-123"})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	req := &domain.CreateUserRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha-segura-123",
		Roles:    []string{"Vendedor"},
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}
