// Package geocoding implements the GeocodingService against a
// Nominatim-compatible HTTP endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adspace/config"
	"adspace/internal/domain/entity"
	"adspace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultCacheSize  = 512
	defaultCacheTTL   = 15 * time.Minute
	maxResponseLength = 1 << 20
)

// Params defines the dependencies for the Nominatim client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *responseCache
	logger     *slog.Logger
}

// New creates the geocoding client. A missing base URL or User-Agent
// is a configuration defect and fails startup rather than surfacing at
// request time.
func New(params Params) (service.GeocodingService, error) {
	cfg := params.Config.Geocoding
	if cfg == nil {
		return nil, errors.New("geocoding configuration is missing")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("geocoding base URL is not configured")
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errors.New("geocoding user agent is not configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheSize := cfg.CacheMaxEntries
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &nominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		cache:      newResponseCache(cacheSize, cacheTTL),
		logger:     params.Logger,
	}, nil
}

// nominatimResult is one candidate in the upstream response array.
// Nominatim returns coordinates as strings.
type nominatimResult struct {
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Address     *nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	Country     string `json:"country"`
	State       string `json:"state"`
	Province    string `json:"province"`
	County      string `json:"county"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Postcode    string `json:"postcode"`
	Road        string `json:"road"`
	HouseNumber string `json:"house_number"`
}

// Resolve fetches the top candidate for the query. An upstream empty
// array is a nil match with a nil error; transport failures, timeouts,
// and non-2xx responses surface as ErrGeocodingUnavailable. No retries
// happen here.
func (c *nominatimClient) Resolve(ctx context.Context, query string) (*entity.GeocodeMatch, error) {
	if payload, ok := c.cache.Get(query); ok {
		return parseMatch(payload)
	}

	payload, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	c.cache.Set(query, payload)

	return parseMatch(payload)
}

func (c *nominatimClient) fetch(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocodingUnavailable, err.Error())
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocoder call failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(service.ErrGeocodingUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Geocoder returned non-success status",
			slog.String("query", query),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Wrapf(service.ErrGeocodingUnavailable, "geocoder returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLength))
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocodingUnavailable, err.Error())
	}

	return payload, nil
}

// parseMatch converts a raw response payload into the top candidate.
// A malformed payload counts as upstream failure, not as "no match".
func parseMatch(payload []byte) (*entity.GeocodeMatch, error) {
	var results []nominatimResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, errors.Wrap(service.ErrGeocodingUnavailable, "malformed geocoder response")
	}

	if len(results) == 0 {
		return nil, nil
	}

	top := results[0]
	match := &entity.GeocodeMatch{
		Latitude:    top.Lat,
		Longitude:   top.Lon,
		DisplayName: top.DisplayName,
		Raw:         json.RawMessage(payload),
	}
	if top.Address != nil {
		match.Address = &entity.GeocodeAddress{
			Country:     top.Address.Country,
			State:       top.Address.State,
			Province:    top.Address.Province,
			County:      top.Address.County,
			City:        top.Address.City,
			Town:        top.Address.Town,
			Village:     top.Address.Village,
			Postcode:    top.Address.Postcode,
			Road:        top.Address.Road,
			HouseNumber: top.Address.HouseNumber,
		}
	}

	return match, nil
}
