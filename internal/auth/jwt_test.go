package auth

import (
	"testing"
	"time"

	"haatbazar_admin/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string, ttlHours int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlHours
	config.AppConfig = cfg
}

// TestTokenRoundTrip - выданный токен разбирается обратно
func TestTokenRoundTrip(t *testing.T) {
	setTestConfig("roundtrip-secret", 1)

	token, err := GenerateToken("64f0c2a1b3d4e5f601234567")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1b3d4e5f601234567", claims.AdminID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

// TestParseToken_WrongSecret - токен с чужой подписью отклоняется
func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig("secret-a", 1)
	token, err := GenerateToken("abc")
	require.NoError(t, err)

	setTestConfig("secret-b", 1)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

// TestParseToken_Expired - просроченный токен отклоняется
func TestParseToken_Expired(t *testing.T) {
	setTestConfig("expired-secret", 1)

	claims := &Claims{
		AdminID: "abc",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := raw.SignedString([]byte("expired-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

// TestParseToken_Garbage - мусор вместо токена
func TestParseToken_Garbage(t *testing.T) {
	setTestConfig("garbage-secret", 1)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
