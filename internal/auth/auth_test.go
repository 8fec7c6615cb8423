package auth

import (
	"testing"
	"time"

	"skillswap_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-horse", hash))
	assert.False(t, CheckPasswordHash("correct-horse", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("1234567"))
	assert.NoError(t, ValidatePassword("12345678"))
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	token, err := GenerateToken("user-1", "learner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "learner", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_RejectsTampering(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	token, err := GenerateToken("user-1", "learner")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not.a.token")
	assert.Error(t, err)

	// A token signed under a different secret is rejected.
	cfg.JWT.Secret = "rotated-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
