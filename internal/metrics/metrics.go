package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mgnrega_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	HTTPDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mgnrega_http_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	NearestLookupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_nearest_lookups_total",
		Help: "Total nearest-district resolutions",
	})
	DashboardCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_dashboard_cache_hits_total",
		Help: "Total dashboard redis cache hits",
	})
	DashboardCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_dashboard_cache_misses_total",
		Help: "Total dashboard redis cache misses",
	})
	FeedRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_feed_requests_total",
		Help: "Total external feed requests",
	})
	FeedFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_feed_failures_total",
		Help: "Total external feed failures",
	})
	IngestRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mgnrega_ingest_runs_total",
		Help: "Ingestion runs by outcome",
	}, []string{"outcome"})
	IngestRowsWrittenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mgnrega_ingest_rows_written_total",
		Help: "Total monthly performance rows written by ingestion",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPDurationMs)
	prometheus.MustRegister(NearestLookupsTotal)
	prometheus.MustRegister(DashboardCacheHitsTotal)
	prometheus.MustRegister(DashboardCacheMissesTotal)
	prometheus.MustRegister(FeedRequestsTotal)
	prometheus.MustRegister(FeedFailuresTotal)
	prometheus.MustRegister(IngestRunsTotal)
	prometheus.MustRegister(IngestRowsWrittenTotal)
}

// Handler returns the Prometheus scrape handler, mounted at /metrics by the
// server entrypoint.
func Handler() http.Handler { return promhttp.Handler() }
