package client

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a verified credential.
type Claims struct {
	Subject string
	Email   string
	// ExpiresAt is seconds since epoch, zero when the token carries no
	// expiry claim.
	ExpiresAt int64
}

// TokenVerifier checks a bearer token against the identity issuer and
// returns its claims. Expiry is NOT enforced here; the auth middleware owns
// that decision so it can reject with an expiry-specific reason.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

type jwtVerifierImpl struct {
	parser *jwt.Parser
	secret []byte
}

// NewJWTVerifier builds a TokenVerifier for HS256 tokens signed with the
// issuer secret.
func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifierImpl{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256"}),
			// Expired tokens must still decode so the caller can tell
			// "expired" apart from "invalid".
			jwt.WithoutClaimsValidation(),
		),
		secret: []byte(secret),
	}
}

func (v *jwtVerifierImpl) Verify(_ context.Context, token string) (*Claims, error) {
	parsed, err := v.parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Unix()
	}

	return claims, nil
}
