package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("customer123")
	require.NoError(t, err)
	assert.NotEqual(t, "customer123", hash)

	assert.True(t, CheckPasswordHash("customer123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken("user-id", "USER")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", GenerateJWTSecret())
	token, err := GenerateToken("user-id", "USER")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestTokenExpiryHours(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "")
	assert.Equal(t, 24, TokenExpiryHours())

	t.Setenv("JWT_EXPIRY_HOURS", "48")
	assert.Equal(t, 48, TokenExpiryHours())

	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")
	assert.Equal(t, 24, TokenExpiryHours())
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(6)
	b := GenerateRandomString(6)
	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	assert.NotEqual(t, a, b)
}
