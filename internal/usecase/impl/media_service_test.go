package impl

import (
	"context"
	"log/slog"
	"testing"

	"adspace/config"
	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/domain/repository"
	"adspace/internal/mocks"
	"adspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixture struct {
	service      usecase.MediaUsecase
	mediaRepo    *mocks.MockMediaRepository
	locationRepo *mocks.MockLocationRepository
}

func createTestMediaService(t *testing.T) *mediaServiceFixture {
	t.Helper()

	mediaRepo := mocks.NewMockMediaRepository(t)
	locationRepo := mocks.NewMockLocationRepository(t)
	catalog := &config.CatalogConfig{DefaultPageSize: 20, MaxPageSize: 100}

	return &mediaServiceFixture{
		service:      NewMediaService(mediaRepo, locationRepo, catalog, slog.Default()),
		mediaRepo:    mediaRepo,
		locationRepo: locationRepo,
	}
}

func mediaAt(title string, lat, lng float64) *entity.Media {
	return &entity.Media{
		ID:     uuid.New(),
		Title:  title,
		Status: entity.MediaStatusActive,
		Location: &entity.Location{
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
}

func ptrOf[T any](v T) *T {
	return &v
}

func TestMediaService_CreateMedia_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	businessID := uuid.New()
	location := &entity.Location{ID: uuid.New(), BusinessID: businessID}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.mediaRepo.EXPECT().
		CreateMedia(ctx, mock.Anything).
		Return(nil)

	media, err := fx.service.CreateMedia(ctx, &usecase.CreateMediaInput{
		BusinessID:       businessID,
		LocationID:       location.ID,
		Title:            "Harbor Bridge Billboard",
		DisplayType:      entity.DisplayTypeBillboard,
		Price:            450,
		DailyImpressions: 12000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MediaStatusActive, media.Status)
	assert.Equal(t, location, media.Location)
}

func TestMediaService_CreateMedia_ForeignLocation(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	location := &entity.Location{ID: uuid.New(), BusinessID: uuid.New()}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	media, err := fx.service.CreateMedia(ctx, &usecase.CreateMediaInput{
		BusinessID: uuid.New(),
		LocationID: location.ID,
	})
	assert.Nil(t, media)
	assert.Equal(t, domainerrors.ErrLocationOwnershipViolation, err)
}

func TestMediaService_CreateMedia_LocationNotFound(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	media, err := fx.service.CreateMedia(ctx, &usecase.CreateMediaInput{
		BusinessID: uuid.New(),
		LocationID: locationID,
	})
	assert.Nil(t, media)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestMediaService_UpdateMedia_OwnershipViolation(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	existing := &entity.Media{ID: uuid.New(), BusinessID: uuid.New()}

	fx.mediaRepo.EXPECT().
		FindMediaByID(ctx, existing.ID).
		Return(existing, nil)

	media, err := fx.service.UpdateMedia(ctx, uuid.New(), existing.ID, &usecase.UpdateMediaInput{})
	assert.Nil(t, media)
	assert.Equal(t, domainerrors.ErrMediaOwnershipViolation, err)
}

func TestMediaService_UpdateMedia_PartialFields(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	businessID := uuid.New()
	existing := &entity.Media{
		ID:         uuid.New(),
		BusinessID: businessID,
		Title:      "Old Title",
		Price:      100,
		Status:     entity.MediaStatusActive,
	}

	fx.mediaRepo.EXPECT().
		FindMediaByID(ctx, existing.ID).
		Return(existing, nil)
	fx.mediaRepo.EXPECT().
		UpdateMedia(ctx, mock.Anything).
		Return(nil)

	media, err := fx.service.UpdateMedia(ctx, businessID, existing.ID, &usecase.UpdateMediaInput{
		Price:  ptrOf(250.0),
		Status: ptrOf(entity.MediaStatusInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, "Old Title", media.Title)
	assert.Equal(t, 250.0, media.Price)
	assert.Equal(t, entity.MediaStatusInactive, media.Status)
}

func TestMediaService_Search_InvalidPage(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	_, err := fx.service.Search(ctx, &entity.MediaFilter{}, entity.PageRequest{Page: 0, Size: 10})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())

	_, err = fx.service.Search(ctx, &entity.MediaFilter{}, entity.PageRequest{Page: 1, Size: -5})
	assert.Error(t, err)
}

func TestMediaService_Search_DefaultsAndClampsSize(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	filter := &entity.MediaFilter{}

	fx.mediaRepo.EXPECT().
		FindPageByFilter(ctx, filter, entity.PageRequest{Page: 1, Size: 20}).
		Return(entity.NewPage([]*entity.Media{}, 0, entity.PageRequest{Page: 1, Size: 20}), nil).
		Once()

	_, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 1})
	require.NoError(t, err)

	fx.mediaRepo.EXPECT().
		FindPageByFilter(ctx, filter, entity.PageRequest{Page: 1, Size: 100}).
		Return(entity.NewPage([]*entity.Media{}, 0, entity.PageRequest{Page: 1, Size: 100}), nil).
		Once()

	_, err = fx.service.Search(ctx, filter, entity.PageRequest{Page: 1, Size: 5000})
	require.NoError(t, err)
}

func TestMediaService_Search_NearestOrdersByDistance(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	// User stands at the origin; c is closest, then a, then b.
	a := mediaAt("a", 0, 2)
	b := mediaAt("b", 0, 5)
	c := mediaAt("c", 0, 1)

	filter := &entity.MediaFilter{
		Sort:          entity.SortNearest,
		UserLatitude:  ptrOf(0.0),
		UserLongitude: ptrOf(0.0),
	}

	fx.mediaRepo.EXPECT().
		FindByFilter(ctx, filter).
		Return([]*entity.Media{a, b, c}, nil)

	page, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, "c", page.Content[0].Title)
	assert.Equal(t, "a", page.Content[1].Title)
	assert.Equal(t, "b", page.Content[2].Title)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
}

func TestMediaService_Search_NearestPlacesUnlocatedLast(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	near := mediaAt("near", 0, 1)
	far := mediaAt("far", 0, 50)
	unlocatedFirst := &entity.Media{ID: uuid.New(), Title: "unlocated-1"}
	unlocatedSecond := &entity.Media{ID: uuid.New(), Title: "unlocated-2", Location: &entity.Location{}}

	filter := &entity.MediaFilter{
		Sort:          entity.SortNearest,
		UserLatitude:  ptrOf(0.0),
		UserLongitude: ptrOf(0.0),
	}

	fx.mediaRepo.EXPECT().
		FindByFilter(ctx, filter).
		Return([]*entity.Media{unlocatedFirst, far, unlocatedSecond, near}, nil)

	page, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 4)
	assert.Equal(t, "near", page.Content[0].Title)
	assert.Equal(t, "far", page.Content[1].Title)
	// Unlocated items keep their relative order at the tail.
	assert.Equal(t, "unlocated-1", page.Content[2].Title)
	assert.Equal(t, "unlocated-2", page.Content[3].Title)
}

func TestMediaService_Search_NearestPaginatesRankedSet(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	items := []*entity.Media{
		mediaAt("third", 0, 3),
		mediaAt("first", 0, 1),
		mediaAt("second", 0, 2),
	}

	filter := &entity.MediaFilter{
		Sort:          entity.SortNearest,
		UserLatitude:  ptrOf(0.0),
		UserLongitude: ptrOf(0.0),
	}

	fx.mediaRepo.EXPECT().
		FindByFilter(ctx, filter).
		Return(items, nil)

	page, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "third", page.Content[0].Title)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestMediaService_Search_NearestPageBeyondRange(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	filter := &entity.MediaFilter{
		Sort:          entity.SortNearest,
		UserLatitude:  ptrOf(0.0),
		UserLongitude: ptrOf(0.0),
	}

	fx.mediaRepo.EXPECT().
		FindByFilter(ctx, filter).
		Return([]*entity.Media{mediaAt("only", 0, 1)}, nil)

	page, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 5, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 5, page.Page)
}

func TestMediaService_Search_SortWithoutCoordinatesFallsBack(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	// Nearest requested but no user point; standard paged search applies.
	filter := &entity.MediaFilter{Sort: entity.SortNearest}

	fx.mediaRepo.EXPECT().
		FindPageByFilter(ctx, filter, entity.PageRequest{Page: 1, Size: 20}).
		Return(entity.NewPage([]*entity.Media{}, 0, entity.PageRequest{Page: 1, Size: 20}), nil)

	_, err := fx.service.Search(ctx, filter, entity.PageRequest{Page: 1, Size: 20})
	require.NoError(t, err)
}

func TestMediaService_DeleteMedia_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	businessID := uuid.New()
	existing := &entity.Media{ID: uuid.New(), BusinessID: businessID}

	fx.mediaRepo.EXPECT().
		FindMediaByID(ctx, existing.ID).
		Return(existing, nil)
	fx.mediaRepo.EXPECT().
		DeleteMedia(ctx, existing.ID).
		Return(nil)

	err := fx.service.DeleteMedia(ctx, businessID, existing.ID)
	assert.NoError(t, err)
}

func TestMediaService_GetMedia_NotFound(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.mediaRepo.EXPECT().
		FindMediaByID(ctx, id).
		Return(nil, repository.ErrMediaNotFound)

	media, err := fx.service.GetMedia(ctx, id)
	assert.Nil(t, media)
	assert.Equal(t, domainerrors.ErrMediaNotFound, err)
}
