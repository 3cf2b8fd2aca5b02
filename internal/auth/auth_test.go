package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())
}

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	initSecret(t)

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	userID, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestExpiredJWTIsInvalid(t *testing.T) {
	initSecret(t)

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestTamperedJWTIsInvalid(t *testing.T) {
	initSecret(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestMalformedJWTIsInvalid(t *testing.T) {
	initSecret(t)

	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestJWTWithoutUserIDIsInvalid(t *testing.T) {
	initSecret(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}
