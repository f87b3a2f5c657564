// Package usecase defines the application service interfaces and their
// input types.
package usecase

import (
	"context"

	"adspace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLocationInput carries a new location submission. The address is
// free-form advertiser input; verification decides its fate.
type AddLocationInput struct {
	BusinessID uuid.UUID
	Address    entity.Address
}

// UpdateLocationInput carries a partial address update. Any non-nil
// field triggers a full re-verification of the resulting address.
type UpdateLocationInput struct {
	Street     *string
	City       *string
	Province   *string
	Country    *string
	PostalCode *string
}

// LocationUsecase verifies advertiser addresses and manages the
// resulting locations.
type LocationUsecase interface {
	// CreateLocation verifies the submitted address and persists a
	// location with resolved coordinates. Returns an
	// AddressRejectedError with field diagnostics when the address
	// fails verification, or a geocoding-unavailable error when the
	// upstream service cannot be reached.
	CreateLocation(ctx context.Context, input *AddLocationInput) (*entity.Location, error)

	// GetLocation retrieves a location by ID.
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// ListBusinessLocations retrieves all locations of a business.
	ListBusinessLocations(ctx context.Context, businessID uuid.UUID) ([]*entity.Location, error)

	// UpdateLocation applies an address update. When any address field
	// changes, the whole address is re-verified and the coordinates
	// are replaced; they are never patched directly.
	UpdateLocation(ctx context.Context, businessID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// DeleteLocation removes a location that no media references.
	DeleteLocation(ctx context.Context, businessID, locationID uuid.UUID) error
}
