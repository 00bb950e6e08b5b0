package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalyticsMetrics() {
	r.AnalyticsRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumnisphere_analytics_runs_total",
			Help: "Total number of analytics runs by selector and status",
		},
		[]string{"selector", "status"},
	)

	r.AnalyticsRunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alumnisphere_analytics_run_duration_seconds",
			Help:    "Analytics run latency in seconds, fetch included",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"selector"},
	)

	r.AnalyticsWorkingSetSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "alumnisphere_analytics_working_set_alumni",
			Help:    "Alumni in the working set after the date window",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		},
	)

	r.AnalyticsDimensionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumnisphere_analytics_dimensions_total",
			Help: "Total number of dimension aggregations by dimension and status",
		},
		[]string{"dimension", "status"},
	)

	r.AnalyticsDimensionLatency = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alumnisphere_analytics_dimension_duration_seconds",
			Help:    "Dimension aggregation latency in seconds, trends included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dimension"},
	)

	r.AnalyticsDimensionItems = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alumnisphere_analytics_dimension_items",
			Help:    "Distinct items grouped per dimension before pagination",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"dimension"},
	)
}
