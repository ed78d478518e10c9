package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Coordinate is a resolved latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Geocoder resolves a free-text place string to a Coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (Coordinate, error)
}

// HTTPClient is the subset of http.Client the provider needs.
// It allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Lookup failures. Both abort the whole aggregation; callers decide
// whether to retry.
var (
	ErrNoMatch       = errors.New("geocode: no match for place")
	ErrBadCoordinate = errors.New("geocode: non-numeric coordinate in response")
)

// Nominatim geocodes via OpenStreetMap's Nominatim API. The service's
// usage policy requires a descriptive User-Agent on every request.
type Nominatim struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	log       *slog.Logger
}

const defaultTimeout = 20 * time.Second

// NewNominatim creates a Nominatim client with the default HTTP client
// and its fixed per-call timeout.
func NewNominatim(baseURL, userAgent string, log *slog.Logger) *Nominatim {
	return &Nominatim{
		client:    &http.Client{Timeout: defaultTimeout},
		baseURL:   baseURL,
		userAgent: userAgent,
		log:       log,
	}
}

// NewNominatimWithClient creates a Nominatim client with a custom HTTP
// client. Useful for tests.
func NewNominatimWithClient(client HTTPClient, baseURL, userAgent string, log *slog.Logger) *Nominatim {
	return &Nominatim{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
		log:       log,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode asks Nominatim for the single best match of place. No caching
// and no retries; any failure surfaces to the caller.
func (n *Nominatim) Geocode(ctx context.Context, place string) (Coordinate, error) {
	reqURL, err := url.Parse(n.baseURL)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocode: parse base URL: %w", err)
	}
	q := reqURL.Query()
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocode: create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocode %q: %w", place, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		n.log.ErrorContext(ctx, "nominatim error", "status", resp.StatusCode, "body", string(body))
		return Coordinate{}, fmt.Errorf("geocode %q: nominatim status %d", place, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", place, err)
	}
	if len(results) == 0 {
		return Coordinate{}, fmt.Errorf("could not geocode %q: %w", place, ErrNoMatch)
	}

	// Nominatim sends lat/lon as strings; a non-numeric value is still a
	// lookup failure, not a crash.
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: lat %q", ErrBadCoordinate, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: lon %q", ErrBadCoordinate, results[0].Lon)
	}

	n.log.DebugContext(ctx, "geocoded place", "place", place, "lat", lat, "lon", lon)
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}
