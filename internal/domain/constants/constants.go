// Package constants defines shared domain-level constant values.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types for completion announcements.
const (
	// PubSubProviderLocal delivers announcements over plain HTTP for local development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle delivers announcements through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
