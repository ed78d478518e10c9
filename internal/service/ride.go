package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you/go-ride-agent/internal/geocode"
	"github.com/you/go-ride-agent/internal/metrics"
	"github.com/you/go-ride-agent/internal/providers"
)

// QuoteResult is the sole output artifact of the aggregation core. Built
// once per invocation, never mutated after construction. Cheapest points
// at a copy of the winning quote, or is nil when nothing carried a price.
type QuoteResult struct {
	Request  providers.RideRequest `json:"request"`
	Quotes   []providers.Quote     `json:"quotes"`
	Cheapest *providers.Quote      `json:"cheapest,omitempty"`
}

// RideService orchestrates geocode, provider fan-out, mock fallback, and
// cheapest selection.
type RideService struct {
	geocoder  geocode.Geocoder
	providers []providers.RideProvider
	log       *slog.Logger
	metrics   *metrics.Metrics
}

func NewRideService(
	geocoder geocode.Geocoder,
	prov []providers.RideProvider,
	log *slog.Logger,
	m *metrics.Metrics,
) *RideService {
	return &RideService{
		geocoder:  geocoder,
		providers: prov,
		log:       log,
		metrics:   m,
	}
}

// BestRide resolves both endpoints, collects quotes from the configured
// adapters in their fixed order, substitutes mock quotes when permitted
// and nothing real was priced, and selects the cheapest.
//
// The two geocode calls run concurrently with first-error-wins semantics;
// either failure aborts before any provider is called. No retries anywhere
// on this path.
func (s *RideService) BestRide(ctx context.Context, req providers.RideRequest, useMockIfNeeded bool) (QuoteResult, error) {
	var start, end geocode.Coordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.timedGeocode(gctx, req.Pickup)
		if err != nil {
			return err
		}
		start = c
		return nil
	})
	g.Go(func() error {
		c, err := s.timedGeocode(gctx, req.Dropoff)
		if err != nil {
			return err
		}
		end = c
		return nil
	})
	if err := g.Wait(); err != nil {
		s.metrics.Aggregations.WithLabelValues("lookup_error").Inc()
		return QuoteResult{}, err
	}

	// Fixed adapter order; quote ordering is part of the contract.
	var quotes []providers.Quote
	for _, p := range s.providers {
		qs, err := p.Quotes(ctx, start, end)
		if err != nil {
			s.metrics.Aggregations.WithLabelValues("provider_error").Inc()
			return QuoteResult{}, fmt.Errorf("%s: %w", p.Name(), err)
		}
		quotes = append(quotes, qs...)
	}

	// Mock fallback replaces the whole list, and only when not a single
	// real quote carries a price.
	if useMockIfNeeded && !anyPriced(quotes) {
		quotes = providers.MockQuotes(req)
		s.metrics.MockFallbacks.Inc()
		s.log.DebugContext(ctx, "no priced quotes from real providers, using mock fallback",
			"pickup", req.Pickup, "dropoff", req.Dropoff)
	}

	s.metrics.Aggregations.WithLabelValues("ok").Inc()
	return QuoteResult{Request: req, Quotes: quotes, Cheapest: Cheapest(quotes)}, nil
}

func (s *RideService) timedGeocode(ctx context.Context, place string) (geocode.Coordinate, error) {
	started := time.Now()
	c, err := s.geocoder.Geocode(ctx, place)
	s.metrics.GeocodeSeconds.Observe(time.Since(started).Seconds())
	return c, err
}

func anyPriced(quotes []providers.Quote) bool {
	for _, q := range quotes {
		if q.PriceLow != nil {
			return true
		}
	}
	return false
}

// Cheapest selects the quote with the minimum low-end price among priced
// quotes. A tie keeps the earliest quote (stable minimum over insertion
// order). Returns nil when no quote has a price.
func Cheapest(quotes []providers.Quote) *providers.Quote {
	var best *providers.Quote
	for i := range quotes {
		q := quotes[i]
		if q.PriceLow == nil {
			continue
		}
		if best == nil || *q.PriceLow < *best.PriceLow {
			best = &q
		}
	}
	return best
}
