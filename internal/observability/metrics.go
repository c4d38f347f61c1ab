package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "climate_pulse"

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	// HTTP API metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: route

	// Computation metrics.
	ProjectionsComputed *prometheus.CounterVec // labels: scenario
	ProjectionCache     *prometheus.CounterVec // labels: result={hit,miss}
	FootprintEstimates  prometheus.Counter

	// Dataset metrics.
	DatasetRows         *prometheus.GaugeVec // labels: dataset={temperature,emissions,sea_level}
	DatasetLoadErrors   prometheus.Counter
	DatasetLoadDuration prometheus.Histogram
	DatasetsLoaded      prometheus.Gauge

	// Projection event publishing.
	ProjectionEventsPublished *prometheus.CounterVec // labels: outcome={success,error}
	PublishingEnabled         prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests by route pattern and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP API request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		ProjectionsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projections_computed_total",
			Help:      "Scenario projections served, by scenario.",
		}, []string{"scenario"}),
		ProjectionCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projection_cache_total",
			Help:      "Projection cache lookups by result.",
		}, []string{"result"}),
		FootprintEstimates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "footprint_estimates_total",
			Help:      "Carbon footprint estimates computed.",
		}),
		DatasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows loaded per dataset.",
		}, []string{"dataset"}),
		DatasetLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_load_errors_total",
			Help:      "Failed dataset load attempts.",
		}),
		DatasetLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a complete dataset load.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		DatasetsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "datasets_loaded",
			Help:      "1 once all datasets are loaded, 0 before.",
		}),
		ProjectionEventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projection_events_published_total",
			Help:      "Projection events published to Kafka, by outcome.",
		}, []string{"outcome"}),
		PublishingEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projection_publishing_enabled",
			Help:      "1 when projection events are published to Kafka, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.ProjectionsComputed,
		m.ProjectionCache,
		m.FootprintEstimates,
		m.DatasetRows,
		m.DatasetLoadErrors,
		m.DatasetLoadDuration,
		m.DatasetsLoaded,
		m.ProjectionEventsPublished,
		m.PublishingEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:              prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"route", "status"}),
		HTTPRequestDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds"}, []string{"route"}),
		ProjectionsComputed:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "projections_computed_total"}, []string{"scenario"}),
		ProjectionCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "projection_cache_total"}, []string{"result"}),
		FootprintEstimates:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "footprint_estimates_total"}),
		DatasetRows:               prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: "dataset_rows"}, []string{"dataset"}),
		DatasetLoadErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "dataset_load_errors_total"}),
		DatasetLoadDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "dataset_load_duration_seconds"}),
		DatasetsLoaded:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "datasets_loaded"}),
		ProjectionEventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "projection_events_published_total"}, []string{"outcome"}),
		PublishingEnabled:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "projection_publishing_enabled"}),
	}
}
