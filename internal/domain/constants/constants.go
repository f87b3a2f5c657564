// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selection in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
