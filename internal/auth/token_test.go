package auth

import (
	"testing"

	"linkup_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-token-tests"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })
}

func TestTokenRoundtrip(t *testing.T) {
	setupTestConfig(t)

	userID := "22222222-2222-2222-2222-222222222222"
	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestParseToken_Garbage(t *testing.T) {
	setupTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken("user-id")
	require.NoError(t, err)

	// Токен, подписанный другим секретом, не проходит
	config.AppConfig.JWT.Secret = "a-completely-different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
