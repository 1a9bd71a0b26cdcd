// Package service defines capability interfaces the domain depends on but
// does not implement: identity verification, clock, event publishing.
package service

import "context"

// TokenVerifier is the opaque "verify token, get a user id" capability.
// Identity lives with the external provider; the only thing this system ever
// needs from a credential is the caller's UID.
type TokenVerifier interface {
	// Verify checks the given bearer token and returns the provider UID it
	// belongs to.
	Verify(ctx context.Context, token string) (userID string, err error)
}
