package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "focos_api"

// Metrics holds the Prometheus counters, histograms, and gauges for the API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: route, status
	RequestDuration *prometheus.HistogramVec // labels: route

	// Query metrics.
	QueryFallbacks prometheus.Counter
	CacheLookups   *prometheus.CounterVec // labels: result={hit,miss}

	// Dataset metrics.
	DatasetRows        prometheus.Gauge
	DatasetWarnings    prometheus.Gauge
	DatasetLoadSeconds prometheus.Gauge
}

// NewMetrics creates and registers all API metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.QueryFallbacks,
		m.CacheLookups,
		m.DatasetRows,
		m.DatasetWarnings,
		m.DatasetLoadSeconds,
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
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),
		QueryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_fallbacks_total",
			Help:      "Queries answered with the raw sample after an internal failure.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Aggregation cache lookups by result.",
		}, []string{"result"}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Number of rows in the loaded table.",
		}),
		DatasetWarnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_warnings",
			Help:      "Degraded-mode warnings emitted while cleaning the table.",
		}),
		DatasetLoadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_load_seconds",
			Help:      "Time spent loading and cleaning the table at startup.",
		}),
	}
}

// CacheResult records a cache lookup outcome.
func (m *Metrics) CacheResult(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}
