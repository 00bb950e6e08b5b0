package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all metrics for the service
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RateLimitedTotal     *prometheus.CounterVec

	// Analytics Metrics
	AnalyticsRunsTotal        *prometheus.CounterVec
	AnalyticsRunDuration      *prometheus.HistogramVec
	AnalyticsWorkingSetSize   prometheus.Histogram
	AnalyticsDimensionsTotal  *prometheus.CounterVec
	AnalyticsDimensionLatency *prometheus.HistogramVec
	AnalyticsDimensionItems   *prometheus.HistogramVec

	// Data access Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBRowsLoaded    *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialized plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
	}

	r.initHTTPMetrics()
	r.initAnalyticsMetrics()
	r.initDBMetrics()

	return r
}

// Gatherer exposes the underlying registry to promhttp and tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
