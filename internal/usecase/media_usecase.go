package usecase

import (
	"context"

	"adspace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMediaInput carries a new media item for the catalog.
type CreateMediaInput struct {
	BusinessID       uuid.UUID
	LocationID       uuid.UUID
	Title            string
	Description      string
	DisplayType      entity.DisplayType
	Price            float64
	DailyImpressions int
}

// UpdateMediaInput carries a partial media update.
type UpdateMediaInput struct {
	Title            *string
	Description      *string
	DisplayType      *entity.DisplayType
	Price            *float64
	DailyImpressions *int
	Status           *entity.MediaStatus
}

// MediaUsecase manages the media catalog and answers filtered,
// optionally distance-ranked, searches over it.
type MediaUsecase interface {
	CreateMedia(ctx context.Context, input *CreateMediaInput) (*entity.Media, error)

	GetMedia(ctx context.Context, id uuid.UUID) (*entity.Media, error)

	UpdateMedia(ctx context.Context, businessID, mediaID uuid.UUID, input *UpdateMediaInput) (*entity.Media, error)

	DeleteMedia(ctx context.Context, businessID, mediaID uuid.UUID) error

	// Search returns one page of media matching the filter. With
	// nearest ranking requested and both user coordinates present, the
	// full filtered set is ranked by great-circle distance before
	// pagination; otherwise the storage layer pages directly.
	Search(ctx context.Context, filter *entity.MediaFilter, page entity.PageRequest) (*entity.Page[*entity.Media], error)
}
