package geocoding

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adspace/config"
	"adspace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `[{
	"lat": "48.8566",
	"lon": "2.3522",
	"display_name": "Paris, Île-de-France, France",
	"address": {
		"country": "France",
		"state": "Île-de-France",
		"city": "Paris",
		"postcode": "75001",
		"road": "Rue de Rivoli"
	}
}]`

func newTestClient(t *testing.T, baseURL string) service.GeocodingService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		BaseURL:         baseURL,
		UserAgent:       "adspace-test/1.0",
		Timeout:         2 * time.Second,
		CacheMaxEntries: 16,
		CacheTTL:        time.Minute,
	}

	client, err := New(Params{Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)

	return client
}

func TestNominatimClient_ResolveMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Paris, France", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "adspace-test/1.0", r.Header.Get("User-Agent"))

		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	match, err := client.Resolve(context.Background(), "Paris, France")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "48.8566", match.Latitude)
	assert.Equal(t, "2.3522", match.Longitude)
	require.NotNil(t, match.Address)
	assert.Equal(t, "France", match.Address.Country)
	assert.Equal(t, "Île-de-France", match.Address.State)
	assert.JSONEq(t, sampleResponse, string(match.Raw))
}

func TestNominatimClient_NoMatchIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	match, err := client.Resolve(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestNominatimClient_NonSuccessStatusIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Resolve(context.Background(), "Paris, France")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocodingUnavailable)
}

func TestNominatimClient_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // Refuse connections.

	client := newTestClient(t, server.URL)

	_, err := client.Resolve(context.Background(), "Paris, France")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocodingUnavailable)
}

func TestNominatimClient_MalformedResponseIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Resolve(context.Background(), "Paris, France")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocodingUnavailable)
}

func TestNominatimClient_SecondResolveHitsCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for i := 0; i < 3; i++ {
		match, err := client.Resolve(context.Background(), "Paris, France")
		require.NoError(t, err)
		require.NotNil(t, match)
	}

	assert.Equal(t, 1, calls)
}

func TestNominatimClient_EmptyResultIsCachedToo(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for i := 0; i < 2; i++ {
		match, err := client.Resolve(context.Background(), "nowhere at all")
		require.NoError(t, err)
		assert.Nil(t, match)
	}

	assert.Equal(t, 1, calls)
}

func TestNew_MissingUserAgentIsConfigDefect(t *testing.T) {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		BaseURL: "https://nominatim.example.com",
	}

	_, err := New(Params{Config: cfg, Logger: slog.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user agent")
}

func TestNew_MissingConfigIsConfigDefect(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}, Logger: slog.Default()})
	require.Error(t, err)
}
