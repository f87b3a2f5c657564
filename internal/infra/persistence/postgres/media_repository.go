package postgres

import (
	"context"
	"strings"

	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/domain/repository"
	"adspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mediaRepository implements the domain.MediaRepository interface.
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

// CreateMedia persists a new media item.
func (repo *mediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	mediaM := fromMediaDomain(media)
	// The location row already exists; only the media row is written.
	mediaM.Location = nil

	if err := repo.db.WithContext(ctx).Create(mediaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required media information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media")
	}

	// Update the entity with generated values
	media.ID = mediaM.ID
	media.CreatedAt = mediaM.CreatedAt
	media.UpdatedAt = mediaM.UpdatedAt

	return nil
}

// FindMediaByID retrieves a media item with its location preloaded.
func (repo *mediaRepository) FindMediaByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var mediaM model.MediaModel
	err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&mediaM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media by ID")
	}

	return toMediaDomain(&mediaM), nil
}

// UpdateMedia updates an existing media record.
func (repo *mediaRepository) UpdateMedia(ctx context.Context, media *entity.Media) error {
	mediaM := fromMediaDomain(media)
	mediaM.Location = nil

	if err := repo.db.WithContext(ctx).Save(mediaM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required media information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update media")
	}

	// Update the entity with updated timestamp
	media.UpdatedAt = mediaM.UpdatedAt

	return nil
}

// DeleteMedia removes a media item by its ID.
func (repo *mediaRepository) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MediaModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete media")
	}

	// If no rows were affected, it means the media was not found.
	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

// CountMediaByLocation returns how many media items reference a location.
func (repo *mediaRepository) CountMediaByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MediaModel{}).
		Where("location_id = ?", locationID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count media by location")
	}

	return count, nil
}

// FindByFilter retrieves the full filtered set, unpaged, with locations
// preloaded, in stable creation order.
func (repo *mediaRepository) FindByFilter(ctx context.Context, filter *entity.MediaFilter) ([]*entity.Media, error) {
	var mediaModels []*model.MediaModel
	err := repo.filtered(repo.db.WithContext(ctx), filter).
		Preload("Location").
		Order("media.created_at ASC").
		Find(&mediaModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find media by filter")
	}

	return toMediaDomainSlice(mediaModels), nil
}

// FindPageByFilter retrieves one page of the filtered set.
func (repo *mediaRepository) FindPageByFilter(ctx context.Context, filter *entity.MediaFilter, page entity.PageRequest) (*entity.Page[*entity.Media], error) {
	var total int64
	if err := repo.filtered(repo.db.WithContext(ctx), filter).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count media by filter")
	}

	var mediaModels []*model.MediaModel
	err := repo.filtered(repo.db.WithContext(ctx), filter).
		Preload("Location").
		Order("media.created_at ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&mediaModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find media page by filter")
	}

	return entity.NewPage(toMediaDomainSlice(mediaModels), total, page), nil
}

// filtered translates the filter criteria to SQL, mirroring the
// semantics of entity.MediaFilter.Matches. Absent criteria contribute
// no clause.
func (repo *mediaRepository) filtered(db *gorm.DB, filter *entity.MediaFilter) *gorm.DB {
	query := db.Model(&model.MediaModel{})
	if filter == nil {
		return query
	}

	if filter.Status != nil {
		query = query.Where("media.status = ?", string(*filter.Status))
	}
	if filter.Title != nil {
		pattern := "%" + strings.ToLower(*filter.Title) + "%"
		query = query.Where("LOWER(media.title) LIKE ?", pattern)
	}
	if filter.BusinessID != nil {
		query = query.Where("media.business_id = ?", *filter.BusinessID)
	}
	if filter.ExcludeID != nil {
		query = query.Where("media.id <> ?", *filter.ExcludeID)
	}
	if filter.MinPrice != nil {
		query = query.Where("media.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("media.price <= ?", *filter.MaxPrice)
	}
	if filter.MinImpressions != nil {
		query = query.Where("media.daily_impressions >= ?", *filter.MinImpressions)
	}
	if filter.Bounds != nil {
		query = boundsClause(query, filter.Bounds)
	}

	return query
}

// boundsClause joins the locations table and constrains coordinates to
// the box. A box wrapping the antimeridian selects longitudes >= west
// OR <= east instead of a between range.
func boundsClause(query *gorm.DB, box *entity.BoundingBox) *gorm.DB {
	query = query.
		Joins("JOIN locations ON locations.id = media.location_id").
		Where("locations.latitude IS NOT NULL AND locations.longitude IS NOT NULL").
		Where("locations.latitude BETWEEN ? AND ?", box.South, box.North)

	if box.Wraps() {
		return query.Where("(locations.longitude >= ? OR locations.longitude <= ?)", box.West, box.East)
	}

	return query.Where("locations.longitude BETWEEN ? AND ?", box.West, box.East)
}

// --- Mapper Functions ---

// toMediaDomain converts a GORM MediaModel to a domain Media entity.
func toMediaDomain(data *model.MediaModel) *entity.Media {
	if data == nil {
		return nil
	}

	return &entity.Media{
		ID:               data.ID,
		Title:            data.Title,
		Description:      data.Description,
		DisplayType:      entity.DisplayType(data.DisplayType),
		Price:            data.Price,
		DailyImpressions: data.DailyImpressions,
		Status:           entity.MediaStatus(data.Status),
		BusinessID:       data.BusinessID,
		LocationID:       data.LocationID,
		Location:         toLocationDomain(data.Location),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toMediaDomainSlice(models []*model.MediaModel) []*entity.Media {
	items := make([]*entity.Media, 0, len(models))
	for _, mediaM := range models {
		items = append(items, toMediaDomain(mediaM))
	}

	return items
}

// fromMediaDomain converts a domain Media entity to a GORM MediaModel.
func fromMediaDomain(data *entity.Media) *model.MediaModel {
	if data == nil {
		return nil
	}

	return &model.MediaModel{
		ID:               data.ID,
		Title:            data.Title,
		Description:      data.Description,
		DisplayType:      string(data.DisplayType),
		Price:            data.Price,
		DailyImpressions: data.DailyImpressions,
		Status:           string(data.Status),
		BusinessID:       data.BusinessID,
		LocationID:       data.LocationID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
