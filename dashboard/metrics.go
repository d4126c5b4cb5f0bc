package dashboard

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	// FetchErrors counts failed history refreshes per symbol.
	FetchErrors *prometheus.CounterVec
	// Refreshes counts completed scoring runs per symbol.
	Refreshes *prometheus.CounterVec
	// ComputeDuration observes the duration of full pipeline runs.
	ComputeDuration prometheus.Histogram
	// TimingScore tracks the latest composite timing score per symbol.
	TimingScore *prometheus.GaugeVec
	// Percentile tracks the latest score percentile per symbol.
	Percentile *prometheus.GaugeVec
}

// NewMetrics initializes the metrics registry and its collectors.
func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		FetchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timing_fetch_errors_total",
				Help: "Total number of failed history refreshes per symbol",
			},
			[]string{"symbol"},
		),
		Refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timing_refreshes_total",
				Help: "Total number of completed scoring runs per symbol",
			},
			[]string{"symbol"},
		),
		ComputeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "timing_compute_duration_seconds",
				Help:    "Duration of full indicator and scoring runs in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		TimingScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "timing_score",
				Help: "Latest composite timing score per symbol",
			},
			[]string{"symbol"},
		),
		Percentile: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "timing_score_percentile",
				Help: "Latest timing score percentile per symbol",
			},
			[]string{"symbol"},
		),
	}

	metrics.registry.MustRegister(metrics.FetchErrors, metrics.Refreshes,
		metrics.ComputeDuration, metrics.TimingScore, metrics.Percentile)

	return metrics
}

// Handler returns the http handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
