package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cordonnier/config"
	"cordonnier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeocoder(t *testing.T, baseURL string) service.Geocoder {
	t.Helper()

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:   baseURL,
			UserAgent: "shoerepair_app",
			Timeout:   2 * time.Second,
		},
	}

	return NewNominatimGeocoder(cfg, newDiscardLogger())
}

func TestNominatimGeocoder_FirstQueryHit(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		assert.Equal(t, "fr", r.URL.Query().Get("accept-language"))
		assert.Equal(t, "shoerepair_app", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"46.5197","lon":"6.6323"}]`))
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Place de la Gare 1, 1003 Lausanne, Suisse", false)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 46.5197, coord.Latitude, 0.0001)
	assert.InDelta(t, 6.6323, coord.Longitude, 0.0001)
	assert.Len(t, queries, 1)
}

func TestNominatimGeocoder_FallsBackToLastComponents(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if q == "1003 Lausanne, Suisse" {
			w.Write([]byte(`[{"lat":"46.5197","lon":"6.6323"}]`))

			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Rue Inexistante 99, 1003 Lausanne, Suisse", false)
	require.NoError(t, err)
	require.NotNil(t, coord)

	// Full query twice (plain, then with address details), then the loose tail.
	require.Len(t, queries, 3)
	assert.Equal(t, "1003 Lausanne, Suisse", queries[2])
}

func TestNominatimGeocoder_StrictStopsAfterFirstQuery(t *testing.T) {
	var queryCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queryCount++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Rue Inexistante 99, 1003 Lausanne, Suisse", true)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
	assert.Equal(t, 1, queryCount)
}

func TestNominatimGeocoder_NoMatchAnywhere(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "XXXXXX-not-a-place", false)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
}

func TestNominatimGeocoder_ServerErrorIsAMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Place de la Gare 1, 1003 Lausanne", false)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
}

func TestNominatimGeocoder_UnreachableHostIsAMiss(t *testing.T) {
	// Closed server: every request fails at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Place de la Gare 1, 1003 Lausanne", false)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
}

func TestNominatimGeocoder_EmptyAddress(t *testing.T) {
	geocoder := newGeocoder(t, "http://127.0.0.1:0")

	coord, err := geocoder.Geocode(context.Background(), "   ", false)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
}

func TestNominatimGeocoder_BadCoordinatePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-number","lon":"6.6323"}]`))
	}))
	defer server.Close()

	geocoder := newGeocoder(t, server.URL)

	coord, err := geocoder.Geocode(context.Background(), "Place de la Gare 1, 1003 Lausanne", false)
	assert.ErrorIs(t, err, service.ErrNoMatch)
	assert.Nil(t, coord)
}

func TestLastTwoComponents(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"Rue du Marché 4, 1204 Genève, Suisse", "1204 Genève, Suisse"},
		{"1204 Genève, Suisse", "1204 Genève, Suisse"},
		{"Genève", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lastTwoComponents(tt.address), "address: %s", tt.address)
	}
}
