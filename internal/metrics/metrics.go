package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Aggregations   *prometheus.CounterVec
	MockFallbacks  prometheus.Counter
	GeocodeSeconds prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Aggregations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ride_aggregations_total",
			Help: "Total number of quote aggregations by outcome.",
		}, []string{"outcome"}),
		MockFallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ride_mock_fallbacks_total",
			Help: "Total number of aggregations that substituted mock quotes.",
		}),
		GeocodeSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "ride_geocode_request_duration_seconds",
			Help:    "Duration of geocoding lookups.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
