package repository

import (
	"context"

	"adspace/internal/domain/entity"
	"adspace/internal/errors"

	"github.com/google/uuid"
)

// ErrMediaNotFound is returned when a media item is not found.
var ErrMediaNotFound = errors.New("media not found")

// MediaRepository defines the interface for media-related database
// operations. Search filtering is delegated here; the repository does
// not know how the query engine ranks or slices the results it gets
// back from FindByFilter.
type MediaRepository interface {
	// CreateMedia persists a new media item.
	CreateMedia(ctx context.Context, media *entity.Media) error

	// FindMediaByID retrieves a media item with its location preloaded.
	FindMediaByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)

	// UpdateMedia updates an existing media record.
	UpdateMedia(ctx context.Context, media *entity.Media) error

	// DeleteMedia removes a media item by its ID.
	DeleteMedia(ctx context.Context, id uuid.UUID) error

	// CountMediaByLocation returns how many media items reference a location.
	CountMediaByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)

	// FindByFilter retrieves the full filtered set, unpaged, with
	// locations preloaded, in stable creation order.
	FindByFilter(ctx context.Context, filter *entity.MediaFilter) ([]*entity.Media, error)

	// FindPageByFilter retrieves one page of the filtered set; the
	// storage layer applies filtering and pagination together.
	FindPageByFilter(ctx context.Context, filter *entity.MediaFilter, page entity.PageRequest) (*entity.Page[*entity.Media], error)
}
