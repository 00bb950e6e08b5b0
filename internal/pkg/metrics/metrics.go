package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordRateLimited counts a rejected request
func (r *Registry) RecordRateLimited(path string) {
	r.RateLimitedTotal.WithLabelValues(path).Inc()
}

// RecordRun records one analytics run. The working set is only observed for
// successful runs.
func (r *Registry) RecordRun(selector string, workingSet int, d time.Duration, err error) {
	r.AnalyticsRunsTotal.WithLabelValues(selector, status(err)).Inc()
	r.AnalyticsRunDuration.WithLabelValues(selector).Observe(d.Seconds())
	if err == nil {
		r.AnalyticsWorkingSetSize.Observe(float64(workingSet))
	}
}

// RecordDimension records one dimension aggregation
func (r *Registry) RecordDimension(dimension string, items int, d time.Duration, err error) {
	r.AnalyticsDimensionsTotal.WithLabelValues(dimension, status(err)).Inc()
	r.AnalyticsDimensionLatency.WithLabelValues(dimension).Observe(d.Seconds())
	if err == nil {
		r.AnalyticsDimensionItems.WithLabelValues(dimension).Observe(float64(items))
	}
}

// RecordQuery records a repository query and the rows it loaded
func (r *Registry) RecordQuery(operation string, rows int, d time.Duration, err error) {
	r.DBQueriesTotal.WithLabelValues(operation, status(err)).Inc()
	r.DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if rows > 0 {
		r.DBRowsLoaded.WithLabelValues(operation).Add(float64(rows))
	}
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
