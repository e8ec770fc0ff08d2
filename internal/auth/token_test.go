package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/auth"
	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 15)

	token, expiresAt, err := tm.GenerateToken("u-1", domain.UserRoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret-a", 15).GenerateToken("u-1", domain.UserRoleCustomer)
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", 15).ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}
