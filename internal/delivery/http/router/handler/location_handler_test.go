package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func newLocationTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLocationHandler_CreateLocation_Success(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	businessID := uuid.New()
	latitude := 39.7817
	longitude := -89.6501
	created := &entity.Location{
		ID:         uuid.New(),
		BusinessID: businessID,
		Address: entity.Address{
			Street:     "123 Main St",
			City:       "Springfield",
			Province:   "Illinois",
			Country:    "United States",
			PostalCode: "62701",
		},
		Latitude:  &latitude,
		Longitude: &longitude,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	locationUC.EXPECT().CreateLocation(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.AddLocationInput) {
			assert.Equal(t, businessID, input.BusinessID)
			assert.Equal(t, "123 Main St", input.Address.Street)
			assert.Equal(t, "Springfield", input.Address.City)
		}).
		Return(created, nil)

	body := `{"street":"123 Main St","city":"Springfield","province":"Illinois","country":"United States","postal_code":"62701"}`
	c, rec := newLocationTestContext(t, http.MethodPost, "/businesses/"+businessID.String()+"/locations", body)
	c.SetParamNames("businessId")
	c.SetParamValues(businessID.String())

	err := handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "123 Main St")
	assert.Contains(t, responseBody, "39.7817")
	assert.Contains(t, responseBody, created.ID.String())
}

func TestLocationHandler_CreateLocation_AddressRejected(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	rejection := domainerrors.NewAddressRejectedError(
		"The address could not be verified, please verify the city.",
		map[string]string{"city": "The city could not be verified."},
	)
	locationUC.EXPECT().CreateLocation(mock.Anything, mock.Anything).Return(nil, rejection)

	businessID := uuid.New()
	body := `{"street":"123 Main St","city":"Nowhere","country":"United States","postal_code":"62701"}`
	c, rec := newLocationTestContext(t, http.MethodPost, "/businesses/"+businessID.String()+"/locations", body)
	c.SetParamNames("businessId")
	c.SetParamValues(businessID.String())

	err := handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "ADDRESS_REJECTED")
	assert.Contains(t, responseBody, "please verify the city")
	assert.Contains(t, responseBody, "The city could not be verified.")
}

func TestLocationHandler_CreateLocation_MissingRequiredFields(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	businessID := uuid.New()
	body := `{"street":"123 Main St","city":"Springfield"}`
	c, rec := newLocationTestContext(t, http.MethodPost, "/businesses/"+businessID.String()+"/locations", body)
	c.SetParamNames("businessId")
	c.SetParamValues(businessID.String())

	err := handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLocationHandler_CreateLocation_InvalidBusinessID(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	c, rec := newLocationTestContext(t, http.MethodPost, "/businesses/not-a-uuid/locations", `{}`)
	c.SetParamNames("businessId")
	c.SetParamValues("not-a-uuid")

	err := handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestLocationHandler_GetLocation_NotFound(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	locationID := uuid.New()
	locationUC.EXPECT().GetLocation(mock.Anything, locationID).
		Return(nil, domainerrors.ErrLocationNotFound)

	c, rec := newLocationTestContext(t, http.MethodGet, "/locations/"+locationID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	err := handler.GetLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOCATION_NOT_FOUND")
}

func TestLocationHandler_DeleteLocation_InUse(t *testing.T) {
	locationUC := mocks.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.Default(),
	}

	businessID := uuid.New()
	locationID := uuid.New()
	locationUC.EXPECT().DeleteLocation(mock.Anything, businessID, locationID).
		Return(domainerrors.ErrLocationInUse)

	c, rec := newLocationTestContext(t, http.MethodDelete, "/businesses/"+businessID.String()+"/locations/"+locationID.String(), "")
	c.SetParamNames("businessId", "id")
	c.SetParamValues(businessID.String(), locationID.String())

	err := handler.DeleteLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOCATION_IN_USE")
}
