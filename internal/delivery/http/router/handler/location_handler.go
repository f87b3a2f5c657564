package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"adspace/internal/delivery/http/response"
	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postal_code"`
}

// UpdateLocationRequest represents the request body for updating a location
type UpdateLocationRequest struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// LocationResponse is the wire representation of a location
type LocationResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         uuid.UUID       `json:"business_id"`
	Street             string          `json:"street"`
	City               string          `json:"city"`
	Province           string          `json:"province"`
	Country            string          `json:"country"`
	PostalCode         string          `json:"postal_code"`
	Latitude           *float64        `json:"latitude"`
	Longitude          *float64        `json:"longitude"`
	RawGeocodeResponse json.RawMessage `json:"raw_geocode_response,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func toLocationResponse(location *entity.Location) *LocationResponse {
	if location == nil {
		return nil
	}

	return &LocationResponse{
		ID:                 location.ID,
		BusinessID:         location.BusinessID,
		Street:             location.Address.Street,
		City:               location.Address.City,
		Province:           location.Address.Province,
		Country:            location.Address.Country,
		PostalCode:         location.Address.PostalCode,
		Latitude:           location.Latitude,
		Longitude:          location.Longitude,
		RawGeocodeResponse: location.RawGeocodeResponse,
		CreatedAt:          location.CreatedAt,
		UpdatedAt:          location.UpdatedAt,
	}
}

// CreateLocation handles creating a new business location; the address
// must pass verification first
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", bindingMessage(err))
	}

	input := &usecase.AddLocationInput{
		BusinessID: businessID,
		Address: entity.Address{
			Street:     req.Street,
			City:       req.City,
			Province:   req.Province,
			Country:    req.Country,
			PostalCode: req.PostalCode,
		},
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLocationResponse(location), "Location created successfully")
}

// GetLocation handles retrieving a single location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	locationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), locationID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "Location retrieved successfully")
}

// ListLocations handles retrieving all locations of a business
func (h *LocationHandler) ListLocations(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	locations, err := h.locationUC.ListBusinessLocations(c.Request().Context(), businessID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	items := make([]*LocationResponse, 0, len(locations))
	for _, location := range locations {
		items = append(items, toLocationResponse(location))
	}

	return response.Success(c, http.StatusOK, items, "Locations retrieved successfully")
}

// UpdateLocation handles updating a business location; any address
// change triggers a full re-verification
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	locationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	input := &usecase.UpdateLocationInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), businessID, locationID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "Location updated successfully")
}

// DeleteLocation handles deleting a business location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	locationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), businessID, locationID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"}, "Location deleted successfully")
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
