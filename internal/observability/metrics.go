package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the backend.
type Metrics struct {
	RateLookups    *prometheus.CounterVec // labels: outcome={success,validation,not_found,error}
	DateListings   *prometheus.CounterVec // labels: outcome={success,validation,error}
	Calculations   *prometheus.CounterVec // labels: outcome={success,validation,error}
	LookupDuration prometheus.Histogram
}

// NewMetrics creates and registers all backend metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RateLookups,
		m.DateListings,
		m.Calculations,
		m.LookupDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RateLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emission_tracker",
			Name:      "rate_lookups_total",
			Help:      "Exchange rate point lookups by outcome.",
		}, []string{"outcome"}),
		DateListings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emission_tracker",
			Name:      "date_listings_total",
			Help:      "Available-date listings by outcome.",
		}, []string{"outcome"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emission_tracker",
			Name:      "calculations_total",
			Help:      "Emission calculations by outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "emission_tracker",
			Name:      "rate_lookup_duration_seconds",
			Help:      "Duration of rate store reads.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}
