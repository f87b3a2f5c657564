// Package impl contains the application service implementations.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"adspace/internal/domain/entity"
	domainerrors "adspace/internal/domain/errors"
	"adspace/internal/domain/repository"
	"adspace/internal/domain/service"
	"adspace/internal/errors"
	"adspace/internal/usecase"
	"adspace/internal/util"

	"github.com/google/uuid"
)

// fieldLabels are the user-facing names used in rejection messages.
var fieldLabels = map[string]string{
	entity.FieldStreet:     "street address",
	entity.FieldCity:       "city",
	entity.FieldProvince:   "province/state",
	entity.FieldCountry:    "country",
	entity.FieldPostalCode: "postal code",
}

type locationService struct {
	locationRepo repository.LocationRepository
	mediaRepo    repository.MediaRepository
	geocoder     service.GeocodingService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance. The
// publisher is optional; a nil publisher disables event emission.
func NewLocationService(
	locationRepo repository.LocationRepository,
	mediaRepo repository.MediaRepository,
	geocoder service.GeocodingService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		mediaRepo:    mediaRepo,
		geocoder:     geocoder,
		publisher:    publisher,
		logger:       logger,
	}
}

// CreateLocation verifies the submitted address and persists the location.
func (s *locationService) CreateLocation(ctx context.Context, input *usecase.AddLocationInput) (*entity.Location, error) {
	verified, err := s.verifyAddress(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	location := &entity.Location{
		ID:                 uuid.New(),
		BusinessID:         input.BusinessID,
		Address:            input.Address,
		Latitude:           &verified.latitude,
		Longitude:          &verified.longitude,
		RawGeocodeResponse: verified.raw,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.publishVerified(ctx, location)

	return location, nil
}

// GetLocation retrieves a location by ID.
func (s *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	return location, nil
}

// ListBusinessLocations retrieves all locations owned by a business.
func (s *locationService) ListBusinessLocations(ctx context.Context, businessID uuid.UUID) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindLocationsByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to find locations by business: %w", err)
	}

	return locations, nil
}

// UpdateLocation applies an address update, re-verifying the whole
// address when any field changed. Coordinates only ever change through
// re-verification.
func (s *locationService) UpdateLocation(ctx context.Context, businessID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	if location.BusinessID != businessID {
		return nil, domainerrors.ErrLocationOwnershipViolation
	}

	updated := applyAddressUpdates(location.Address, input)
	if updated == location.Address {
		return location, nil
	}

	verified, err := s.verifyAddress(ctx, updated)
	if err != nil {
		return nil, err
	}

	location.Address = updated
	location.Latitude = &verified.latitude
	location.Longitude = &verified.longitude
	location.RawGeocodeResponse = verified.raw
	location.UpdatedAt = time.Now()

	if err := s.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	s.publishVerified(ctx, location)

	return location, nil
}

// DeleteLocation removes a location unless media still references it.
func (s *locationService) DeleteLocation(ctx context.Context, businessID, locationID uuid.UUID) error {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return fmt.Errorf("failed to find location by ID: %w", err)
	}

	if location.BusinessID != businessID {
		return domainerrors.ErrLocationOwnershipViolation
	}

	attached, err := s.mediaRepo.CountMediaByLocation(ctx, locationID)
	if err != nil {
		return fmt.Errorf("failed to count media by location: %w", err)
	}
	if attached > 0 {
		return domainerrors.ErrLocationInUse
	}

	if err := s.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

func applyAddressUpdates(address entity.Address, input *usecase.UpdateLocationInput) entity.Address {
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.Province != nil {
		address.Province = *input.Province
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}

	return address
}

func (s *locationService) publishVerified(ctx context.Context, location *entity.Location) {
	if s.publisher == nil {
		return
	}

	event := &service.LocationVerifiedEvent{
		LocationID: location.ID,
		BusinessID: location.BusinessID,
		Latitude:   *location.Latitude,
		Longitude:  *location.Longitude,
	}
	if err := s.publisher.PublishLocationVerified(ctx, event); err != nil {
		// Event delivery is best-effort; the verified location stands.
		s.logger.Warn("Failed to publish location verified event",
			slog.String("locationID", location.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// --- Address verification ---

// verifiedAddress is the successful outcome of a verification run.
type verifiedAddress struct {
	latitude  float64
	longitude float64
	raw       json.RawMessage
}

// verifyAddress resolves the address through the geocoder using the
// candidate query sequence and compares the structured result against
// the submission. It returns an AddressRejectedError with field
// diagnostics on data-quality failures, or a geocoding-unavailable
// error when the upstream service fails at any step.
func (s *locationService) verifyAddress(ctx context.Context, address entity.Address) (*verifiedAddress, error) {
	// Structurally incomplete input never reaches the geocoder.
	if strings.TrimSpace(address.PostalCode) == "" {
		return nil, rejectFields(entity.FieldPostalCode)
	}

	match, err := s.resolveCandidates(ctx, address)
	if err != nil {
		return nil, err
	}
	if match == nil {
		// Nothing to compare against; no single field can be blamed.
		return nil, rejectAllFields()
	}

	latitude, latErr := strconv.ParseFloat(match.Latitude, 64)
	longitude, lngErr := strconv.ParseFloat(match.Longitude, 64)
	if latErr != nil || lngErr != nil {
		// Coordinates present but unusable; flag the whole address.
		return nil, rejectAllFields()
	}

	if match.Address != nil {
		if field, ok := firstMismatch(address, match.Address); ok {
			return nil, rejectFields(field)
		}
	} else {
		if err := s.diagnoseWithoutBreakdown(ctx, address); err != nil {
			return nil, err
		}
	}

	return &verifiedAddress{
		latitude:  latitude,
		longitude: longitude,
		raw:       match.Raw,
	}, nil
}

// resolveCandidates tries the ordered candidate queries and returns
// the first non-empty geocoder result. Unavailability at any candidate
// aborts the whole sequence.
func (s *locationService) resolveCandidates(ctx context.Context, address entity.Address) (*entity.GeocodeMatch, error) {
	for _, query := range address.CandidateQueries() {
		match, err := s.geocoder.Resolve(ctx, query)
		if err != nil {
			return nil, s.mapGeocoderError(err)
		}
		if match != nil {
			return match, nil
		}
	}

	return nil, nil
}

// diagnoseWithoutBreakdown handles a match that carries no structured
// address. The match cannot be confirmed field by field, so a
// sub-query scoped to postal code and country pinpoints the most
// likely wrong field.
func (s *locationService) diagnoseWithoutBreakdown(ctx context.Context, address entity.Address) error {
	sub, err := s.geocoder.Resolve(ctx, address.PostalQuery())
	if err != nil {
		return s.mapGeocoderError(err)
	}

	if sub != nil && sub.Address != nil && postalEqual(sub.Address.Postcode, address.PostalCode) {
		// The postal code checks out on its own, so the mismatch most
		// likely sits in the city.
		return rejectFields(entity.FieldCity)
	}

	return rejectFields(entity.FieldPostalCode)
}

func (s *locationService) mapGeocoderError(err error) error {
	if errors.Is(err, service.ErrGeocodingUnavailable) {
		return domainerrors.ErrGeocodingUnavailable.WrapMessage(err.Error())
	}

	return err
}

// firstMismatch compares the submission against the geocoder's
// structured breakdown in fixed priority order (country > province >
// city > postal code > street) and returns the first diverging field.
// A component missing on either side is skipped, not failed.
func firstMismatch(submitted entity.Address, geocoded *entity.GeocodeAddress) (string, bool) {
	if fieldsDiffer(submitted.Country, geocoded.Country) {
		return entity.FieldCountry, true
	}
	if fieldsDiffer(submitted.Province, geocoded.StateOrProvince()) &&
		fieldsDiffer(submitted.Province, geocoded.County) {
		return entity.FieldProvince, true
	}
	if fieldsDiffer(submitted.City, geocoded.Locality()) {
		return entity.FieldCity, true
	}
	if submitted.PostalCode != "" && geocoded.Postcode != "" &&
		!postalEqual(submitted.PostalCode, geocoded.Postcode) {
		return entity.FieldPostalCode, true
	}
	if !streetMatches(submitted.Street, geocoded.Road, geocoded.HouseNumber) {
		return entity.FieldStreet, true
	}

	return "", false
}

// fieldsDiffer reports a mismatch only when both sides are present.
func fieldsDiffer(submitted, geocoded string) bool {
	if strings.TrimSpace(submitted) == "" || strings.TrimSpace(geocoded) == "" {
		return false
	}

	return !util.TextEqual(submitted, geocoded)
}

// postalEqual compares postal codes ignoring case and internal spacing
// ("EC1A 1BB" equals "ec1a1bb").
func postalEqual(a, b string) bool {
	return strings.ReplaceAll(util.NormalizeText(a), " ", "") ==
		strings.ReplaceAll(util.NormalizeText(b), " ", "")
}

// streetMatches accepts the submitted street when it agrees with the
// geocoded road and house number. Submissions combine the two in
// either order ("123 Main St", "Main St 123"), so containment of the
// road name plus, when present, the house number is enough.
func streetMatches(street, road, houseNumber string) bool {
	normStreet := util.NormalizeText(street)
	normRoad := util.NormalizeText(road)

	if normStreet == "" || normRoad == "" {
		return true
	}
	if !strings.Contains(normStreet, normRoad) && !strings.Contains(normRoad, normStreet) {
		return false
	}

	normHouse := util.NormalizeText(houseNumber)
	if normHouse != "" && !strings.Contains(normStreet, normHouse) {
		return false
	}

	return true
}

// rejectFields builds an address rejection pointing at the given
// fields. A single field yields the specific "please verify" message;
// multiple fields yield the generic one.
func rejectFields(fields ...string) *domainerrors.AddressRejectedError {
	diagnostics := make(map[string]string, len(fields))
	for _, field := range fields {
		diagnostics[field] = fmt.Sprintf("The %s could not be verified.", fieldLabels[field])
	}

	message := "The address could not be verified."
	if len(fields) == 1 {
		message = fmt.Sprintf("The address could not be verified, please verify the %s.", fieldLabels[fields[0]])
	}

	return domainerrors.NewAddressRejectedError(message, diagnostics)
}

func rejectAllFields() *domainerrors.AddressRejectedError {
	return rejectFields(
		entity.FieldStreet,
		entity.FieldCity,
		entity.FieldProvince,
		entity.FieldCountry,
		entity.FieldPostalCode,
	)
}
