// Package geocoding implements the Geocoder domain service against the
// Nominatim HTTP API.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"cordonnier/config"
	"cordonnier/internal/domain/entity"
	"cordonnier/internal/domain/service"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	defaultTimeout = 10 * time.Second
)

// nominatimGeocoder resolves addresses through a Nominatim instance.
// Lookups degrade through progressively looser queries before giving up;
// callers only ever see a coordinate or ErrNoMatch.
type nominatimGeocoder struct {
	baseURL      string
	userAgent    string
	countryCodes string
	client       *http.Client
	logger       *slog.Logger
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := "shoerepair_app"
	countryCodes := ""
	timeout := defaultTimeout

	if cfg.Geocoding != nil {
		if cfg.Geocoding.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.Geocoding.BaseURL, "/")
		}
		if cfg.Geocoding.UserAgent != "" {
			userAgent = cfg.Geocoding.UserAgent
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
		countryCodes = cfg.Geocoding.CountryCodes
	}

	return &nominatimGeocoder{
		baseURL:      baseURL,
		userAgent:    userAgent,
		countryCodes: countryCodes,
		client:       &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// nominatimResult is the subset of the search response we consume.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address through a ladder of progressively looser
// queries. Strict mode stops after the first query so that a workshop
// address either matches precisely or is rejected.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address string, strict bool) (*entity.Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, service.ErrNoMatch
	}

	// Rung 1: the address as given, with a French locale hint.
	if coord := g.search(ctx, address, false); coord != nil {
		return coord, nil
	}
	if strict {
		return nil, service.ErrNoMatch
	}

	// Rung 2: same query, asking for address details. Some instances rank
	// results differently when details are requested.
	if coord := g.search(ctx, address, true); coord != nil {
		return coord, nil
	}

	// Rung 3: the last two comma-separated components, typically
	// "postal code city, country" or "city, country".
	if loose := lastTwoComponents(address); loose != "" && loose != address {
		if coord := g.search(ctx, loose, false); coord != nil {
			return coord, nil
		}
	}

	return nil, service.ErrNoMatch
}

// search performs one Nominatim query. Transport failures, bad statuses and
// unparseable bodies all collapse to a miss; geocoding is never fatal.
func (g *nominatimGeocoder) search(ctx context.Context, query string, addressDetails bool) *entity.Coordinate {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "fr")
	if addressDetails {
		params.Set("addressdetails", "1")
	}
	if g.countryCodes != "" {
		params.Set("countrycodes", g.countryCodes)
	}

	endpoint := g.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		g.logger.Warn("geocoding request build failed", "query", query, "error", err)

		return nil
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocoding request failed", "query", query, "error", err)

		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("geocoding request returned non-OK status", "query", query, "status", resp.StatusCode)

		return nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		g.logger.Warn("geocoding response decode failed", "query", query, "error", err)

		return nil
	}
	if len(results) == 0 {
		return nil
	}

	coord, err := parseCoordinate(results[0])
	if err != nil {
		g.logger.Warn("geocoding result unusable", "query", query, "error", err)

		return nil
	}

	return coord
}

func parseCoordinate(result nominatimResult) (*entity.Coordinate, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	coord := entity.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.IsValid() {
		return nil, errors.Errorf("coordinate out of range: %f, %f", lat, lon)
	}

	return &coord, nil
}

// lastTwoComponents keeps the final two comma-separated parts of an address.
func lastTwoComponents(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}

	kept := parts[len(parts)-2:]
	for i := range kept {
		kept[i] = strings.TrimSpace(kept[i])
	}

	return strings.Join(kept, ", ")
}
