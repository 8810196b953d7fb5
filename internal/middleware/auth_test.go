package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/client"
)

type stubVerifier struct {
	claims *client.Claims
	err    error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*client.Claims, error) {
	return s.claims, s.err
}

func runGuard(t *testing.T, verifier client.TokenVerifier, authHeader string) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	mw := NewAuthMiddleware(verifier)
	err := mw.Middleware()(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})(c)

	return err, handlerRan
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	err, handlerRan := runGuard(t, &stubVerifier{}, "")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	assert.Equal(t, "missing credential", apperr.Message(err))
}

func TestAuthMiddleware_HeaderWithoutToken(t *testing.T) {
	err, handlerRan := runGuard(t, &stubVerifier{}, "Bearer")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, "missing credential", apperr.Message(err))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("signature mismatch")}

	err, handlerRan := runGuard(t, verifier, "Bearer bad-token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	assert.Equal(t, "invalid credential", apperr.Message(err))
}

func TestAuthMiddleware_NilClaims(t *testing.T) {
	err, handlerRan := runGuard(t, &stubVerifier{}, "Bearer token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, "invalid credential", apperr.Message(err))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}}

	err, handlerRan := runGuard(t, verifier, "Bearer expired-token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	// expiry gets its own reason, never the generic one
	assert.Equal(t, "credential expired", apperr.Message(err))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var attached *client.Claims
	mw := NewAuthMiddleware(verifier)
	err := mw.Middleware()(func(c echo.Context) error {
		attached, _ = IdentityFromContext(c)
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, attached)
	assert.Equal(t, "user-1", attached.Subject)
}

func TestAuthMiddleware_TokenWithoutExpiry(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{Subject: "user-1"}}

	err, handlerRan := runGuard(t, verifier, "Bearer no-exp-token")

	require.NoError(t, err)
	assert.True(t, handlerRan)
}

func TestCheckOwnership(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(identityContextKey, &client.Claims{Subject: "user-1"})

	require.NoError(t, CheckOwnership(c, "user-1"))

	err := CheckOwnership(c, "user-2")
	require.Error(t, err)
	// not entitled is a distinct failure from not authenticated
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestCheckOwnership_NoIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := CheckOwnership(c, "user-1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
