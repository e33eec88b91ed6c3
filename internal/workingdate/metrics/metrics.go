package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for working date computations.
type Metrics struct {
	// Computations by outcome: "ok", "invalid", "internal"
	ComputeOutcome *prometheus.CounterVec

	// Full computation latency including the holiday lookup
	ComputeLatency prometheus.Histogram

	// Working days and hours requested, to size typical requests
	RequestedDays  prometheus.Histogram
	RequestedHours prometheus.Histogram
}

// New registers the computation metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ComputeOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "workdays_computations_total",
			Help: "Working date computations by outcome",
		}, []string{"outcome"}),
		ComputeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "workdays_compute_duration_seconds",
			Help:    "Duration of working date computations including the holiday lookup",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		RequestedDays: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "workdays_requested_days",
			Help:    "Working days requested per computation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 60, 250},
		}),
		RequestedHours: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "workdays_requested_hours",
			Help:    "Working hours requested per computation",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 40, 160},
		}),
	}
}

// IncrementOutcome records a computation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ComputeOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveLatency records the duration of one computation.
func (m *Metrics) ObserveLatency(d time.Duration) {
	if m != nil {
		m.ComputeLatency.Observe(d.Seconds())
	}
}

// ObserveRequest records the requested amounts.
func (m *Metrics) ObserveRequest(days int, hours float64) {
	if m != nil {
		m.RequestedDays.Observe(float64(days))
		m.RequestedHours.Observe(hours)
	}
}
