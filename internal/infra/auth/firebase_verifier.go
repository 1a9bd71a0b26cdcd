package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"spotlight/config"
	"spotlight/internal/domain/service"
)

// firebaseVerifier verifies Firebase Auth ID tokens and maps them to the
// provider UID.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase project ID must be provided")
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates the ID token with Firebase and returns its UID.
func (s *firebaseVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := s.client.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	return token.UID, nil
}
