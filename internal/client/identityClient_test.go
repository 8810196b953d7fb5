package client

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signToken(t, jwt.MapClaims{
		"sub":   "user-42",
		"email": "user@example.com",
		"exp":   exp.Unix(),
	}, testSecret)

	claims, err := NewJWTVerifier(testSecret).Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt)
}

func TestJWTVerifier_ExpiredTokenStillDecodes(t *testing.T) {
	exp := time.Now().Add(-time.Hour)
	token := signToken(t, jwt.MapClaims{"sub": "user-42", "exp": exp.Unix()}, testSecret)

	// the guard owns the expiry decision, so decoding must not fail here
	claims, err := NewJWTVerifier(testSecret).Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt)
}

func TestJWTVerifier_NoExpiryClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-42"}, testSecret)

	claims, err := NewJWTVerifier(testSecret).Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Zero(t, claims.ExpiresAt)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-42"}, "other-secret")

	_, err := NewJWTVerifier(testSecret).Verify(context.Background(), token)
	require.Error(t, err)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	_, err := NewJWTVerifier(testSecret).Verify(context.Background(), "not.a.token")
	require.Error(t, err)
}
