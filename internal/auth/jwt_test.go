package auth_test

import (
	"testing"
	"time"

	"taskboard/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var secret = []byte("test-secret-key")

func TestGenerateAndParseToken(t *testing.T) {
	// Generate a token
	sessionID := "test-session-id"
	token, err := auth.GenerateToken(secret, sessionID, 24*time.Hour)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Parse it back
	parsed, err := auth.ParseToken(secret, token)

	assert.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken(secret, "invalid-token")

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken([]byte("other-secret"), "s1", time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(secret, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// Token expired an hour ago
	claims := jwt.MapClaims{
		"session_id": "test-session-id",
		"exp":        time.Now().Add(-1 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString(secret)

	_, err := auth.ParseToken(secret, expiredToken)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_MissingClaims(t *testing.T) {
	// Token without a session id
	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutSession, _ := token.SignedString(secret)

	_, err := auth.ParseToken(secret, tokenWithoutSession)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}
