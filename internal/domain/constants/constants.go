// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub for event delivery.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// AuthProviderJWT verifies bearer tokens as locally signed JWTs.
	AuthProviderJWT = "jwt"
	// AuthProviderFirebase verifies bearer tokens against Firebase Auth.
	AuthProviderFirebase = "firebase"
)
