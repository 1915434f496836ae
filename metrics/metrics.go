// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus instrumentation for the road network:
// shortest-path queries, file ingestion and catalog sizes.
//
// Each Registry owns a private prometheus.Registry, so several managers (and
// tests) can coexist in one process without duplicate-registration panics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path query outcomes.
const (
	ResultFound   = "found"
	ResultNoRoute = "no_route"
)

// Loader record outcomes.
const (
	RecordLoaded  = "loaded"
	RecordSkipped = "skipped"
	RecordFailed  = "failed"
)

// Registry holds all metrics for the application.
type Registry struct {
	PathQueriesTotal  *prometheus.CounterVec
	PathQueryDuration prometheus.Histogram
	PathLength        prometheus.Histogram

	LoaderRecordsTotal *prometheus.CounterVec

	Towns prometheus.Gauge
	Roads prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initPathMetrics()
	r.initLoaderMetrics()
	r.initCatalogMetrics()
	return r
}

func (r *Registry) initPathMetrics() {
	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadnet_path_queries_total",
			Help: "Total number of shortest-path queries by outcome",
		},
		[]string{"result"},
	)

	r.PathQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadnet_path_query_duration_seconds",
			Help:    "Shortest-path query duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)

	r.PathLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadnet_path_steps",
			Help:    "Number of roads on returned shortest paths",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
}

func (r *Registry) initLoaderMetrics() {
	r.LoaderRecordsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadnet_loader_records_total",
			Help: "Total number of road records read by outcome",
		},
		[]string{"result"},
	)
}

func (r *Registry) initCatalogMetrics() {
	r.Towns = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "roadnet_towns",
		Help: "Number of towns in the graph",
	})
	r.Roads = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "roadnet_roads",
		Help: "Number of roads in the graph",
	})
}

// RecordPathQuery records one shortest-path query and the number of steps returned.
func (r *Registry) RecordPathQuery(steps int, duration time.Duration) {
	result := ResultFound
	if steps == 0 {
		result = ResultNoRoute
	} else {
		r.PathLength.Observe(float64(steps))
	}
	r.PathQueriesTotal.WithLabelValues(result).Inc()
	r.PathQueryDuration.Observe(duration.Seconds())
}

// RecordLoaderRecord counts one ingested line by outcome.
func (r *Registry) RecordLoaderRecord(result string) {
	r.LoaderRecordsTotal.WithLabelValues(result).Inc()
}

// SetCatalogSize updates the town and road gauges.
func (r *Registry) SetCatalogSize(towns, roads int) {
	r.Towns.Set(float64(towns))
	r.Roads.Set(float64(roads))
}

// GetPrometheusRegistry returns the underlying prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
