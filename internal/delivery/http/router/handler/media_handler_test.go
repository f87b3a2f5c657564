package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"adspace/internal/delivery/http/validator"
	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/mocks"
	"adspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchContext(t *testing.T, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodGet, "/media?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func emptyMediaPage(page entity.PageRequest) *entity.Page[*entity.Media] {
	return entity.NewPage([]*entity.Media{}, 0, page)
}

func TestMediaHandler_SearchMedia_MapsQueryParams(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	businessID := uuid.New()
	query := url.Values{}
	query.Set("status", "ACTIVE")
	query.Set("q", "billboard")
	query.Set("business_id", businessID.String())
	query.Set("min_price", "50")
	query.Set("max_price", "200.5")
	query.Set("min_impressions", "1000")
	query.Set("bbox", "25.0,121.4,25.2,121.7")
	query.Set("sort", "nearest")
	query.Set("lat", "25.03")
	query.Set("lng", "121.56")
	query.Set("page", "2")
	query.Set("size", "10")

	mediaUC.EXPECT().Search(mock.Anything, mock.Anything, entity.PageRequest{Page: 2, Size: 10}).
		Run(func(_ context.Context, filter *entity.MediaFilter, _ entity.PageRequest) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, entity.MediaStatusActive, *filter.Status)
			require.NotNil(t, filter.Title)
			assert.Equal(t, "billboard", *filter.Title)
			require.NotNil(t, filter.BusinessID)
			assert.Equal(t, businessID, *filter.BusinessID)
			require.NotNil(t, filter.MinPrice)
			assert.InDelta(t, 50.0, *filter.MinPrice, 0.0001)
			require.NotNil(t, filter.MaxPrice)
			assert.InDelta(t, 200.5, *filter.MaxPrice, 0.0001)
			require.NotNil(t, filter.MinImpressions)
			assert.Equal(t, 1000, *filter.MinImpressions)
			require.NotNil(t, filter.Bounds)
			assert.InDelta(t, 25.0, filter.Bounds.South, 0.0001)
			assert.InDelta(t, 121.7, filter.Bounds.East, 0.0001)
			assert.True(t, filter.NearestRequested())
		}).
		Return(emptyMediaPage(entity.PageRequest{Page: 2, Size: 10}), nil)

	c, rec := newSearchContext(t, query)

	err := handler.SearchMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_elements":0`)
}

func TestMediaHandler_SearchMedia_MalformedBoundingBox(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	query := url.Values{}
	query.Set("bbox", "25.0,121.4,25.2")

	c, rec := newSearchContext(t, query)

	err := handler.SearchMedia(c)
	require.NoError(t, err)

	// The usecase is never reached; the mock would fail on any call.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestMediaHandler_SearchMedia_UnknownStatus(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	query := url.Values{}
	query.Set("status", "PAUSED")

	c, rec := newSearchContext(t, query)

	err := handler.SearchMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status")
}

func TestMediaHandler_SearchMedia_InvalidPageNumber(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	query := url.Values{}
	query.Set("page", "two")

	c, rec := newSearchContext(t, query)

	err := handler.SearchMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid page")
}

func TestMediaHandler_CreateMedia_Success(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	businessID := uuid.New()
	locationID := uuid.New()
	created := &entity.Media{
		ID:               uuid.New(),
		Title:            "Downtown billboard",
		DisplayType:      entity.DisplayTypeBillboard,
		Price:            150,
		DailyImpressions: 12000,
		Status:           entity.MediaStatusActive,
		BusinessID:       businessID,
		LocationID:       locationID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	mediaUC.EXPECT().CreateMedia(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.CreateMediaInput) {
			assert.Equal(t, businessID, input.BusinessID)
			assert.Equal(t, locationID, input.LocationID)
			assert.Equal(t, entity.DisplayTypeBillboard, input.DisplayType)
		}).
		Return(created, nil)

	e := echo.New()
	e.Validator = validator.New()

	body := `{"location_id":"` + locationID.String() + `","title":"Downtown billboard","display_type":"BILLBOARD","price":150,"daily_impressions":12000}`
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+businessID.String()+"/media", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("businessId")
	c.SetParamValues(businessID.String())

	err := handler.CreateMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Downtown billboard")
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestMediaHandler_CreateMedia_UnknownDisplayType(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()

	businessID := uuid.New()
	body := `{"location_id":"` + uuid.New().String() + `","title":"Downtown billboard","display_type":"HOLOGRAM","price":150}`
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+businessID.String()+"/media", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("businessId")
	c.SetParamValues(businessID.String())

	err := handler.CreateMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestMediaHandler_GetMedia_NotFound(t *testing.T) {
	mediaUC := mocks.NewMockMediaUsecase(t)
	handler := &MediaHandler{
		mediaUC: mediaUC,
		logger:  slog.Default(),
	}

	mediaID := uuid.New()
	mediaUC.EXPECT().GetMedia(mock.Anything, mediaID).
		Return(nil, domainerrors.ErrMediaNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/media/"+mediaID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(mediaID.String())

	err := handler.GetMedia(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "MEDIA_NOT_FOUND")
}
