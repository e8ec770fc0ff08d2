package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/service"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

func TestRegisterCreatesCustomer(t *testing.T) {
	env := newTestEnv(t)
	authService := service.NewAuthService(testConfig(), env.users)

	user, token, expiresAt, err := authService.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, domain.UserRoleCustomer, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := authService.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.UserRoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	authService := service.NewAuthService(testConfig(), env.users)

	_, _, _, err := authService.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = authService.Register(context.Background(), "Imposter", "alice@example.com", "other")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	authService := service.NewAuthService(testConfig(), env.users)

	registered, _, _, err := authService.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	user, token, _, err := authService.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	authService := service.NewAuthService(testConfig(), env.users)

	_, _, _, err := authService.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = authService.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, _, _, err = authService.Login(context.Background(), "nobody@example.com", "s3cret")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}
