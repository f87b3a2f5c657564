package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"adspace/config"
	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/domain/geo"
	"adspace/internal/domain/repository"
	"adspace/internal/errors"
	"adspace/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type mediaService struct {
	mediaRepo       repository.MediaRepository
	locationRepo    repository.LocationRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// NewMediaService creates a new media catalog service instance. A nil
// catalog config falls back to the built-in page size limits.
func NewMediaService(
	mediaRepo repository.MediaRepository,
	locationRepo repository.LocationRepository,
	catalog *config.CatalogConfig,
	logger *slog.Logger,
) usecase.MediaUsecase {
	s := &mediaService{
		mediaRepo:       mediaRepo,
		locationRepo:    locationRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
	if catalog != nil {
		if catalog.DefaultPageSize > 0 {
			s.defaultPageSize = catalog.DefaultPageSize
		}
		if catalog.MaxPageSize > 0 {
			s.maxPageSize = catalog.MaxPageSize
		}
	}

	return s
}

// CreateMedia adds an inventory item referencing an existing verified
// location owned by the same business.
func (s *mediaService) CreateMedia(ctx context.Context, input *usecase.CreateMediaInput) (*entity.Media, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}
	if location.BusinessID != input.BusinessID {
		return nil, domainerrors.ErrLocationOwnershipViolation
	}

	media := &entity.Media{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		DisplayType:      input.DisplayType,
		Price:            input.Price,
		DailyImpressions: input.DailyImpressions,
		Status:           entity.MediaStatusActive,
		BusinessID:       input.BusinessID,
		LocationID:       input.LocationID,
		Location:         location,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.mediaRepo.CreateMedia(ctx, media); err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}

	return media, nil
}

// GetMedia retrieves a media item with its location.
func (s *mediaService) GetMedia(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	media, err := s.mediaRepo.FindMediaByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, domainerrors.ErrMediaNotFound
		}

		return nil, fmt.Errorf("failed to find media by ID: %w", err)
	}

	return media, nil
}

// UpdateMedia applies a partial catalog update to an owned media item.
func (s *mediaService) UpdateMedia(ctx context.Context, businessID, mediaID uuid.UUID, input *usecase.UpdateMediaInput) (*entity.Media, error) {
	media, err := s.mediaRepo.FindMediaByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, domainerrors.ErrMediaNotFound
		}

		return nil, fmt.Errorf("failed to find media by ID: %w", err)
	}
	if media.BusinessID != businessID {
		return nil, domainerrors.ErrMediaOwnershipViolation
	}

	if input.Title != nil {
		media.Title = *input.Title
	}
	if input.Description != nil {
		media.Description = *input.Description
	}
	if input.DisplayType != nil {
		media.DisplayType = *input.DisplayType
	}
	if input.Price != nil {
		media.Price = *input.Price
	}
	if input.DailyImpressions != nil {
		media.DailyImpressions = *input.DailyImpressions
	}
	if input.Status != nil {
		media.Status = *input.Status
	}
	media.UpdatedAt = time.Now()

	if err := s.mediaRepo.UpdateMedia(ctx, media); err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}

	return media, nil
}

// DeleteMedia removes an owned media item from the catalog.
func (s *mediaService) DeleteMedia(ctx context.Context, businessID, mediaID uuid.UUID) error {
	media, err := s.mediaRepo.FindMediaByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return domainerrors.ErrMediaNotFound
		}

		return fmt.Errorf("failed to find media by ID: %w", err)
	}
	if media.BusinessID != businessID {
		return domainerrors.ErrMediaOwnershipViolation
	}

	if err := s.mediaRepo.DeleteMedia(ctx, mediaID); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	return nil
}

// Search returns one page of the filtered catalog. The page request is
// normalized first; a missing size takes the configured default and an
// oversized one is clamped to the maximum. Distance ranking loads the
// whole filtered set and pages in memory, everything else pages in the
// storage layer.
func (s *mediaService) Search(ctx context.Context, filter *entity.MediaFilter, page entity.PageRequest) (*entity.Page[*entity.Media], error) {
	normalized, err := s.normalizePage(page)
	if err != nil {
		return nil, err
	}

	if filter.NearestRequested() {
		return s.searchNearest(ctx, filter, normalized)
	}

	result, err := s.mediaRepo.FindPageByFilter(ctx, filter, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to find media page by filter: %w", err)
	}

	return result, nil
}

func (s *mediaService) normalizePage(page entity.PageRequest) (entity.PageRequest, error) {
	if page.Size == 0 {
		page.Size = s.defaultPageSize
	}
	if page.Page < 1 || page.Size < 1 {
		return entity.PageRequest{}, domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"page": "page must be >= 1 and size must be >= 1",
		})
	}
	if page.Size > s.maxPageSize {
		page.Size = s.maxPageSize
	}

	return page, nil
}

// rankedMedia pairs a media item with its precomputed distance to the
// user point. Items without coordinates carry located=false and sort
// after every located item.
type rankedMedia struct {
	media    *entity.Media
	distance float64
	located  bool
}

// searchNearest ranks the full filtered set by great-circle distance
// and slices out the requested page. The sort is stable, so items at
// equal distance and all unlocated items keep their creation order.
func (s *mediaService) searchNearest(ctx context.Context, filter *entity.MediaFilter, page entity.PageRequest) (*entity.Page[*entity.Media], error) {
	items, err := s.mediaRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find media by filter: %w", err)
	}

	user := filter.UserPoint()
	ranked := make([]rankedMedia, 0, len(items))
	for _, item := range items {
		entry := rankedMedia{media: item}
		if item.Location.HasCoordinates() {
			entry.located = true
			entry.distance = geo.Distance(user, item.Location.Point())
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].located != ranked[j].located {
			return ranked[i].located
		}
		if !ranked[i].located {
			return false
		}

		return ranked[i].distance < ranked[j].distance
	})

	total := int64(len(ranked))
	start := page.Offset()
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + page.Size
	if end > len(ranked) {
		end = len(ranked)
	}

	content := make([]*entity.Media, 0, end-start)
	for _, entry := range ranked[start:end] {
		content = append(content, entry.media)
	}

	return entity.NewPage(content, total, page), nil
}
