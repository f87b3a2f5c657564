package handler

import (
	"log/slog"
	"net/http"
	"strconv"
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

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for media-related handlers
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// CreateMediaRequest represents the request body for creating a media item
type CreateMediaRequest struct {
	LocationID       uuid.UUID `json:"location_id" validate:"required"`
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description"`
	DisplayType      string    `json:"display_type" validate:"required,oneof=BILLBOARD DIGITAL_SCREEN POSTER"`
	Price            float64   `json:"price" validate:"gte=0"`
	DailyImpressions int       `json:"daily_impressions" validate:"gte=0"`
}

// UpdateMediaRequest represents the request body for updating a media item
type UpdateMediaRequest struct {
	Title            *string  `json:"title,omitempty"`
	Description      *string  `json:"description,omitempty"`
	DisplayType      *string  `json:"display_type,omitempty" validate:"omitempty,oneof=BILLBOARD DIGITAL_SCREEN POSTER"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DailyImpressions *int     `json:"daily_impressions,omitempty" validate:"omitempty,gte=0"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MediaResponse is the wire representation of a media item
type MediaResponse struct {
	ID               uuid.UUID         `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	DisplayType      string            `json:"display_type"`
	Price            float64           `json:"price"`
	DailyImpressions int               `json:"daily_impressions"`
	Status           string            `json:"status"`
	BusinessID       uuid.UUID         `json:"business_id"`
	LocationID       uuid.UUID         `json:"location_id"`
	Location         *LocationResponse `json:"location,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toMediaResponse(media *entity.Media) *MediaResponse {
	if media == nil {
		return nil
	}

	return &MediaResponse{
		ID:               media.ID,
		Title:            media.Title,
		Description:      media.Description,
		DisplayType:      string(media.DisplayType),
		Price:            media.Price,
		DailyImpressions: media.DailyImpressions,
		Status:           string(media.Status),
		BusinessID:       media.BusinessID,
		LocationID:       media.LocationID,
		Location:         toLocationResponse(media.Location),
		CreatedAt:        media.CreatedAt,
		UpdatedAt:        media.UpdatedAt,
	}
}

// CreateMedia handles adding a media item to the catalog
func (h *MediaHandler) CreateMedia(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var req CreateMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", bindingMessage(err))
	}

	input := &usecase.CreateMediaInput{
		BusinessID:       businessID,
		LocationID:       req.LocationID,
		Title:            req.Title,
		Description:      req.Description,
		DisplayType:      entity.DisplayType(req.DisplayType),
		Price:            req.Price,
		DailyImpressions: req.DailyImpressions,
	}

	media, err := h.mediaUC.CreateMedia(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMediaResponse(media), "Media created successfully")
}

// GetMedia handles retrieving a single media item
func (h *MediaHandler) GetMedia(c echo.Context) error {
	mediaID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	media, err := h.mediaUC.GetMedia(c.Request().Context(), mediaID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMediaResponse(media), "Media retrieved successfully")
}

// UpdateMedia handles updating a media item
func (h *MediaHandler) UpdateMedia(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	mediaID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	var req UpdateMediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", bindingMessage(err))
	}

	input := &usecase.UpdateMediaInput{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		DailyImpressions: req.DailyImpressions,
	}
	if req.DisplayType != nil {
		displayType := entity.DisplayType(*req.DisplayType)
		input.DisplayType = &displayType
	}
	if req.Status != nil {
		status := entity.MediaStatus(*req.Status)
		input.Status = &status
	}

	media, err := h.mediaUC.UpdateMedia(c.Request().Context(), businessID, mediaID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMediaResponse(media), "Media updated successfully")
}

// DeleteMedia handles removing a media item from the catalog
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	businessID, err := parseUUIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	mediaID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	if err := h.mediaUC.DeleteMedia(c.Request().Context(), businessID, mediaID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Media deleted successfully"}, "Media deleted successfully")
}

// SearchMedia handles the filtered, optionally distance-ranked, catalog
// search. Malformed filter parameters never reach the storage layer.
func (h *MediaHandler) SearchMedia(c echo.Context) error {
	filter, err := parseMediaFilter(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := parsePageRequest(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mediaUC.Search(c.Request().Context(), filter, page)
	if err != nil {
		return h.handleAppError(c, err)
	}

	content := make([]*MediaResponse, 0, len(result.Content))
	for _, media := range result.Content {
		content = append(content, toMediaResponse(media))
	}

	return response.Success(c, http.StatusOK, entity.Page[*MediaResponse]{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}, "Media retrieved successfully")
}

func parseMediaFilter(c echo.Context) (*entity.MediaFilter, error) {
	filter := &entity.MediaFilter{}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.MediaStatus(raw)
		if status != entity.MediaStatusActive && status != entity.MediaStatusInactive {
			return nil, errors.Errorf("unknown status %q", raw)
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("q"); raw != "" {
		filter.Title = &raw
	}
	if raw := c.QueryParam("business_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid business_id")
		}
		filter.BusinessID = &id
	}
	if raw := c.QueryParam("exclude_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid exclude_id")
		}
		filter.ExcludeID = &id
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return nil, err
	}
	if filter.MinImpressions, err = queryInt(c, "min_impressions"); err != nil {
		return nil, err
	}

	if raw := c.QueryParam("bbox"); raw != "" {
		box, err := entity.ParseBoundingBox(raw)
		if err != nil {
			return nil, err
		}
		filter.Bounds = box
	}

	filter.Sort = c.QueryParam("sort")
	if filter.UserLatitude, err = queryFloat(c, "lat"); err != nil {
		return nil, err
	}
	if filter.UserLongitude, err = queryFloat(c, "lng"); err != nil {
		return nil, err
	}

	return filter, nil
}

func parsePageRequest(c echo.Context) (entity.PageRequest, error) {
	page := entity.PageRequest{Page: 1}

	if raw := c.QueryParam("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return entity.PageRequest{}, errors.Wrap(err, "invalid page")
		}
		page.Page = value
	}
	if raw := c.QueryParam("size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return entity.PageRequest{}, errors.Wrap(err, "invalid size")
		}
		page.Size = value
	}

	return page, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	return &value, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	return &value, nil
}

// handleAppError handles application errors
func (h *MediaHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
