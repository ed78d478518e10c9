package providers

import (
	"context"

	"github.com/you/go-ride-agent/internal/geocode"
)

// Known quote sources.
const (
	ProviderMock = "mock"
	ProviderLyft = "lyft"
	ProviderUber = "uber"
)

// RideRequest is the caller's trip description. VehicleNeed defaults to
// "cheapest" at the I/O edges and only influences mock pricing.
type RideRequest struct {
	Pickup      string `json:"pickup"`
	Dropoff     string `json:"dropoff"`
	VehicleNeed string `json:"vehicle_need"`
}

// Quote is the normalized shape returned by all providers. A nil PriceLow
// means the provider was reachable but had no price for the trip.
type Quote struct {
	Provider   string   `json:"provider"`
	RideType   string   `json:"ride_type"`
	PriceLow   *float64 `json:"price_low,omitempty"`
	PriceHigh  *float64 `json:"price_high,omitempty"`
	Currency   string   `json:"currency"`
	ETAMinutes *int     `json:"eta_minutes,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// RideProvider fetches quotes for a resolved pickup/dropoff pair.
//
// An unconfigured provider returns an empty slice with a nil error; that
// is a normal data state, never a failure. Configured reports whether
// credentials are present so the placeholder adapters stay observable.
type RideProvider interface {
	Name() string
	Configured() bool
	Quotes(ctx context.Context, start, end geocode.Coordinate) ([]Quote, error)
}
