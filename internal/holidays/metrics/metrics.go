package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the holiday feed adapter.
type Metrics struct {
	// Fetch attempts by outcome: "success", "failure", "circuit_open"
	FetchOutcome *prometheus.CounterVec

	FetchLatency prometheus.Histogram

	// Sets handed to computations by status: "fresh", "stale", "degraded"
	ServedStatus *prometheus.CounterVec

	HolidaysLoaded prometheus.Gauge
}

// New registers the holiday metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "workdays_holiday_fetch_total",
			Help: "Holiday feed fetch attempts by outcome",
		}, []string{"outcome"}),
		FetchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "workdays_holiday_fetch_duration_seconds",
			Help:    "Duration of holiday feed fetches including cache lookups",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ServedStatus: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "workdays_holiday_sets_served_total",
			Help: "Holiday sets handed to computations by freshness status",
		}, []string{"status"}),
		HolidaysLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "workdays_holidays_loaded",
			Help: "Number of dates in the last successfully fetched holiday set",
		}),
	}
}

// IncrementFetch records a fetch attempt outcome.
func (m *Metrics) IncrementFetch(outcome string) {
	if m != nil {
		m.FetchOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveFetchLatency records the duration of one fetch.
func (m *Metrics) ObserveFetchLatency(d time.Duration) {
	if m != nil {
		m.FetchLatency.Observe(d.Seconds())
	}
}

// IncrementServed records the status of a set handed to a computation.
func (m *Metrics) IncrementServed(status string) {
	if m != nil {
		m.ServedStatus.WithLabelValues(status).Inc()
	}
}

// SetLoaded records the size of the latest good set.
func (m *Metrics) SetLoaded(n int) {
	if m != nil {
		m.HolidaysLoaded.Set(float64(n))
	}
}
