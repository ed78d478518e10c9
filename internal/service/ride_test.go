package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/you/go-ride-agent/internal/geocode"
	"github.com/you/go-ride-agent/internal/metrics"
	"github.com/you/go-ride-agent/internal/providers"
)

type geocoderStub struct {
	coords  map[string]geocode.Coordinate
	failFor string
	calls   int32
}

func (g *geocoderStub) Geocode(_ context.Context, place string) (geocode.Coordinate, error) {
	atomic.AddInt32(&g.calls, 1)
	if g.failFor != "" && g.failFor == place {
		return geocode.Coordinate{}, fmt.Errorf("could not geocode %q: %w", place, geocode.ErrNoMatch)
	}
	return g.coords[place], nil
}

type providerStub struct {
	name   string
	quotes []providers.Quote
	err    error
	calls  *int32
}

func (p providerStub) Name() string     { return p.name }
func (p providerStub) Configured() bool { return true }

func (p providerStub) Quotes(_ context.Context, _, _ geocode.Coordinate) ([]providers.Quote, error) {
	if p.calls != nil {
		atomic.AddInt32(p.calls, 1)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.quotes, nil
}

func valToPtr[T any](param T) *T {
	return &param
}

func happyGeocoder() *geocoderStub {
	return &geocoderStub{coords: map[string]geocode.Coordinate{
		"Chicago O'Hare Airport": {Latitude: 41.9742, Longitude: -87.9073},
		"Navy Pier, Chicago":     {Latitude: 41.8917, Longitude: -87.6086},
	}}
}

func newTestService(g geocode.Geocoder, prov ...providers.RideProvider) *RideService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRideService(g, prov, logger, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestBestRide_MockFallbackEndToEnd(t *testing.T) {
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft"},
		providerStub{name: "uber"},
	)

	req := providers.RideRequest{
		Pickup:      "Chicago O'Hare Airport",
		Dropoff:     "Navy Pier, Chicago",
		VehicleNeed: "cheapest",
	}
	res, err := svc.BestRide(context.Background(), req, true)
	require.NoError(t, err)

	require.Equal(t, req, res.Request)
	require.Len(t, res.Quotes, 2)
	require.Equal(t, "UberX (mock)", res.Quotes[0].RideType)
	require.Equal(t, 22.50, *res.Quotes[0].PriceLow)
	require.Equal(t, 24.00, *res.Quotes[0].PriceHigh)
	require.Equal(t, 6, *res.Quotes[0].ETAMinutes)
	require.Equal(t, "Lyft (mock)", res.Quotes[1].RideType)
	require.Equal(t, 19.75, *res.Quotes[1].PriceLow)
	require.Equal(t, 23.00, *res.Quotes[1].PriceHigh)
	require.Equal(t, 7, *res.Quotes[1].ETAMinutes)

	require.NotNil(t, res.Cheapest)
	require.Equal(t, "Lyft (mock)", res.Cheapest.RideType)
	require.Equal(t, 19.75, *res.Cheapest.PriceLow)
}

func TestBestRide_MockFallbackXL(t *testing.T) {
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft"},
		providerStub{name: "uber"},
	)

	req := providers.RideRequest{
		Pickup:      "Chicago O'Hare Airport",
		Dropoff:     "Navy Pier, Chicago",
		VehicleNeed: "XL",
	}
	res, err := svc.BestRide(context.Background(), req, true)
	require.NoError(t, err)

	require.Len(t, res.Quotes, 2)
	require.Equal(t, 32.50, *res.Quotes[0].PriceLow)
	require.Equal(t, 36.00, *res.Quotes[0].PriceHigh)
	require.Equal(t, 29.75, *res.Quotes[1].PriceLow)
	require.Equal(t, 35.00, *res.Quotes[1].PriceHigh)
	require.NotNil(t, res.Cheapest)
	require.Equal(t, 29.75, *res.Cheapest.PriceLow)
}

func TestBestRide_FallbackGatedByAnyPrice(t *testing.T) {
	// One priced real quote suppresses the mock fallback entirely.
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft", quotes: []providers.Quote{
			{Provider: "lyft", RideType: "Lyft Standard", PriceLow: valToPtr(15.00), Currency: "USD"},
		}},
		providerStub{name: "uber"},
	)

	res, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago", VehicleNeed: "cheapest",
	}, true)
	require.NoError(t, err)

	require.Len(t, res.Quotes, 1)
	require.Equal(t, "Lyft Standard", res.Quotes[0].RideType)
	require.NotNil(t, res.Cheapest)
	require.Equal(t, 15.00, *res.Cheapest.PriceLow)
}

func TestBestRide_UnpricedRealQuotesTriggerFallback(t *testing.T) {
	// "Reachable but no price" is still unpriced, so the working list is
	// discarded wholesale in favor of the mock quotes.
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft", quotes: []providers.Quote{
			{Provider: "lyft", RideType: "Lyft Standard", Currency: "USD", Notes: "surge data unavailable"},
		}},
		providerStub{name: "uber"},
	)

	res, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago",
	}, true)
	require.NoError(t, err)
	require.Len(t, res.Quotes, 2)
	require.Equal(t, providers.ProviderMock, res.Quotes[0].Provider)
}

func TestBestRide_NoMockKeepsUnpricedQuotes(t *testing.T) {
	unpriced := providers.Quote{Provider: "lyft", RideType: "Lyft Standard", Currency: "USD"}
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft", quotes: []providers.Quote{unpriced}},
		providerStub{name: "uber"},
	)

	res, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago",
	}, false)
	require.NoError(t, err)
	require.Equal(t, []providers.Quote{unpriced}, res.Quotes)
	require.Nil(t, res.Cheapest)
}

func TestBestRide_ProviderOrderPreserved(t *testing.T) {
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft", quotes: []providers.Quote{
			{Provider: "lyft", RideType: "Lyft Standard", PriceLow: valToPtr(18.00), Currency: "USD"},
		}},
		providerStub{name: "uber", quotes: []providers.Quote{
			{Provider: "uber", RideType: "UberX", PriceLow: valToPtr(16.00), Currency: "USD"},
		}},
	)

	res, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago",
	}, true)
	require.NoError(t, err)
	require.Len(t, res.Quotes, 2)
	require.Equal(t, "lyft", res.Quotes[0].Provider)
	require.Equal(t, "uber", res.Quotes[1].Provider)
	require.Equal(t, "UberX", res.Cheapest.RideType)
}

func TestBestRide_GeocodeFailureAbortsBeforeProviders(t *testing.T) {
	var providerCalls int32
	geo := happyGeocoder()
	geo.failFor = "Navy Pier, Chicago"

	svc := newTestService(geo,
		providerStub{name: "lyft", calls: &providerCalls},
		providerStub{name: "uber", calls: &providerCalls},
	)

	res, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago",
	}, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, geocode.ErrNoMatch))
	require.Empty(t, res.Quotes)
	require.Nil(t, res.Cheapest)
	if got := atomic.LoadInt32(&providerCalls); got != 0 {
		t.Fatalf("providers must not be called after a geocode failure; calls=%d", got)
	}
}

func TestBestRide_ProviderErrorPropagates(t *testing.T) {
	svc := newTestService(happyGeocoder(),
		providerStub{name: "lyft", err: errors.New("API request fail")},
		providerStub{name: "uber"},
	)

	_, err := svc.BestRide(context.Background(), providers.RideRequest{
		Pickup: "Chicago O'Hare Airport", Dropoff: "Navy Pier, Chicago",
	}, true)
	require.Error(t, err)
	require.Equal(t, "lyft: API request fail", err.Error())
}

func TestCheapest_StableMinimum(t *testing.T) {
	quotes := []providers.Quote{
		{Provider: "lyft", RideType: "first", PriceLow: valToPtr(12.00)},
		{Provider: "uber", RideType: "unpriced"},
		{Provider: "uber", RideType: "tied", PriceLow: valToPtr(12.00)},
		{Provider: "uber", RideType: "pricier", PriceLow: valToPtr(14.00)},
	}

	c := Cheapest(quotes)
	require.NotNil(t, c)
	require.Equal(t, "first", c.RideType)
}

func TestCheapest_NoPricedQuotes(t *testing.T) {
	require.Nil(t, Cheapest(nil))
	require.Nil(t, Cheapest([]providers.Quote{
		{Provider: "lyft", RideType: "unpriced"},
		{Provider: "uber", RideType: "also unpriced"},
	}))
}
