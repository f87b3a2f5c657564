package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Location is a verified physical site owned by a business. It is
// created only after its address passed verification; Latitude and
// Longitude are set exactly when verification succeeded, and change
// only through a full re-verification on update.
type Location struct {
	ID         uuid.UUID
	BusinessID uuid.UUID // The business that owns this location.
	Address    Address
	Latitude   *float64
	Longitude  *float64
	// RawGeocodeResponse keeps the geocoder payload that verified this
	// address, for audit and debugging.
	RawGeocodeResponse json.RawMessage
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasCoordinates reports whether the location carries verified
// coordinates.
func (l *Location) HasCoordinates() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

// Point returns the coordinates as an orb point (lon, lat). Only
// meaningful when HasCoordinates is true.
func (l *Location) Point() orb.Point {
	return orb.Point{*l.Longitude, *l.Latitude}
}
