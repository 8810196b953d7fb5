package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/client"
)

const identityContextKey = "identity"

// AuthMiddleware guards protected routes. It extracts the bearer token,
// submits it to the verifier, checks expiry and attaches the verified
// claims to the request context. It is stateless: one synchronous
// verification per request, no retries, no token caching.
type AuthMiddleware struct {
	verifier client.TokenVerifier
	now      func() time.Time
}

func NewAuthMiddleware(verifier client.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		now:      time.Now,
	}
}

func (a *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperr.Unauthenticated("missing credential")
			}

			claims, err := a.verifier.Verify(c.Request().Context(), token)
			// A verifier failure and an issuer outage are deliberately not
			// told apart; callers see a generic 401 either way.
			if err != nil || claims == nil {
				return apperr.Unauthenticated("invalid credential")
			}

			if claims.ExpiresAt != 0 && claims.ExpiresAt <= a.now().Unix() {
				return apperr.Unauthenticated("credential expired")
			}

			c.Set(identityContextKey, claims)
			return next(c)
		}
	}
}

// bearerToken returns the second whitespace-separated field of the
// Authorization header value.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// IdentityFromContext returns the claims the guard attached, if any.
func IdentityFromContext(c echo.Context) (*client.Claims, bool) {
	claims, ok := c.Get(identityContextKey).(*client.Claims)
	return claims, ok
}

// CheckOwnership is the caller-side policy layered on top of the guard:
// the verified subject must own the addressed resource.
func CheckOwnership(c echo.Context, ownerID string) error {
	claims, ok := IdentityFromContext(c)
	if !ok {
		return apperr.Unauthenticated("missing credential")
	}
	if claims.Subject != ownerID {
		return apperr.Forbidden("identity does not own resource")
	}
	return nil
}
