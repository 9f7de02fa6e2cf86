package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tombolaviva/tombola-backend/internal/config"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories/memory"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
		Admin: config.AdminConfig{
			Email:    "admin@example.com",
			Password: "s3creta",
		},
	}
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.AdminUsers(), testAuthConfig())
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))

	count, err := store.AdminUsers().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Idempotent: a second run does not create another account
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))
	count, err = store.AdminUsers().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	admin, err := store.AdminUsers().FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "s3creta", admin.Password, "password must be stored hashed")
}

func TestLogin(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.AdminUsers(), testAuthConfig())
	ctx := context.Background()
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))

	token, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "s3creta"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "s3creta"})
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestEnsureBootstrapAdminWithoutCredentials(t *testing.T) {
	store := memory.NewStore()
	cfg := testAuthConfig()
	cfg.Admin = config.AdminConfig{}
	svc := NewAuthService(store.AdminUsers(), cfg)

	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))

	count, err := store.AdminUsers().Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}
