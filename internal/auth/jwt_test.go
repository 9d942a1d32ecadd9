package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/config"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenManager(ttlMinutes int) *auth.TokenManager {
	cfg := &config.AuthConfig{
		JWTSecret:       "test-secret-key",
		TokenTTLMinutes: ttlMinutes,
	}
	return auth.NewTokenManager(cfg, "brokerage-api")
}

func testUser() *domain.User {
	user := &domain.User{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Roles:    pq.StringArray{"Vendedor"},
	}
	user.ID = uuid.New()
	return user
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := newTokenManager(60)
	user := testUser()

	token, expiresAt, err := tm.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	uc, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uc.UserID)
	assert.Equal(t, user.FullName, uc.FullName)
	assert.Equal(t, user.Email, uc.Email)
	assert.Equal(t, []domain.UserRole{domain.RoleVendedor}, uc.Roles)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := newTokenManager(-1)
	user := testUser()

	token, _, err := tm.IssueToken(user)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := newTokenManager(60)
	user := testUser()

	token, _, err := tm.IssueToken(user)
	require.NoError(t, err)

	other := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:       "another-secret",
		TokenTTLMinutes: 60,
	}, "brokerage-api")

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	tm := newTokenManager(60)

	_, err := tm.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("senha-segura-123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-segura-123", hash)

	assert.True(t, auth.CheckPassword(hash, "senha-segura-123"))
	assert.False(t, auth.CheckPassword(hash, "senha-errada"))
}
