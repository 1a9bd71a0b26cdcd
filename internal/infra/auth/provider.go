package auth

import (
	"context"

	"github.com/pkg/errors"

	"spotlight/config"
	"spotlight/internal/domain/constants"
	"spotlight/internal/domain/service"
)

// NewTokenVerifier selects the verifier implementation named by config.
func NewTokenVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Auth.Provider {
	case constants.AuthProviderJWT:
		return NewJWTVerifier(cfg)
	case constants.AuthProviderFirebase:
		return NewFirebaseVerifier(ctx, cfg)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}
