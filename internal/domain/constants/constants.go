// Package constants defines shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

// Order event types published on the event bus.
const (
	EventOrderCreated  = "order.created"
	EventOrderAssigned = "order.assigned"
)
