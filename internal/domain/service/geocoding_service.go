// Package service defines interfaces for infrastructure collaborators
// consumed by the use-case layer.
package service

import (
	"context"

	"adspace/internal/domain/entity"
	"adspace/internal/errors"
)

// ErrGeocodingUnavailable signals an upstream transport failure,
// timeout, or non-success response from the geocoder. It is never used
// for "no match": a normal empty upstream result is a nil match with a
// nil error.
var ErrGeocodingUnavailable = errors.New("geocoding service unavailable")

// GeocodingService resolves a free-text query against the external
// geocoder. A single call makes at most one upstream attempt; retry
// policy, if any, belongs to the caller.
type GeocodingService interface {
	// Resolve returns the top candidate for the query, or nil when the
	// upstream service found no match.
	Resolve(ctx context.Context, query string) (*entity.GeocodeMatch, error)
}
