// Package auth provides concrete implementations of the TokenVerifier
// domain service.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"spotlight/config"
	"spotlight/internal/domain/service"
)

// jwtVerifier verifies HS256 bearer tokens minted by the identity provider.
type jwtVerifier struct {
	secret string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{secret: cfg.Auth.Secret}, nil
}

// Verify parses and validates the token and returns its subject claim, the
// provider UID. Expiry and signature are both checked by the parser.
func (s *jwtVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "failed to read subject claim")
	}
	if subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}
