package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "dutyswap"

// Outcome label values.
const (
	outcomeSuccess   = "success"
	outcomeBadInput  = "bad_request"
	outcomeRejected  = "rejected"
	outcomeNoOptimal = "no_optimal"
	outcomeInternal  = "internal"
)

// Metrics holds the optimizer's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	Optimizations *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	SwapCount     *prometheus.HistogramVec
	InFlight      prometheus.Gauge
}

// NewMetrics registers all collectors on a fresh registry, so several
// servers (and tests) can coexist in one process.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Optimizations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "runs_total",
			Help:      "Total number of optimization requests by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "duration_seconds",
			Help:      "Optimization wall time in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}, []string{"strategy"}),
		SwapCount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "swap_count",
			Help:      "Number of requests fulfilled per successful optimization",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"strategy"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "in_flight",
			Help:      "Optimizations currently running",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observe(strategy, outcome string, seconds float64, swaps int) {
	if m == nil {
		return
	}
	m.Optimizations.WithLabelValues(strategy, outcome).Inc()
	m.Duration.WithLabelValues(strategy).Observe(seconds)
	if outcome == outcomeSuccess {
		m.SwapCount.WithLabelValues(strategy).Observe(float64(swaps))
	}
}

func (m *Metrics) begin() {
	if m != nil {
		m.InFlight.Inc()
	}
}

func (m *Metrics) end() {
	if m != nil {
		m.InFlight.Dec()
	}
}
