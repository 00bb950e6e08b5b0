package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDBMetrics() {
	r.DBQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumnisphere_db_queries_total",
			Help: "Total number of database queries by operation and status",
		},
		[]string{"operation", "status"},
	)

	r.DBQueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alumnisphere_db_query_duration_seconds",
			Help:    "Database query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	r.DBRowsLoaded = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumnisphere_db_rows_loaded_total",
			Help: "Rows read by the alumni repository per operation",
		},
		[]string{"operation"},
	)
}
