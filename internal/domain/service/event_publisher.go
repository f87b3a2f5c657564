package service

import (
	"context"

	"github.com/google/uuid"
)

// LocationVerifiedEvent is published after an address passed
// verification, so downstream campaign and notification services can
// react without polling.
type LocationVerifiedEvent struct {
	LocationID uuid.UUID `json:"location_id"`
	BusinessID uuid.UUID `json:"business_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// EventPublisher publishes domain events to downstream consumers.
// Publishing is best-effort from the caller's perspective: failures are
// logged, never surfaced to the advertiser.
type EventPublisher interface {
	PublishLocationVerified(ctx context.Context, event *LocationVerifiedEvent) error

	// Close releases underlying publisher resources.
	Close() error
}
