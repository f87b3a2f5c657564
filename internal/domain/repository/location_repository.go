// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"adspace/internal/domain/entity"
	"adspace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository defines the interface for location-related
// database operations.
type LocationRepository interface {
	// CreateLocation persists a new verified location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByBusiness retrieves all locations owned by a business.
	FindLocationsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Location, error)

	// UpdateLocation updates an existing location record.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// DeleteLocation removes a location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
