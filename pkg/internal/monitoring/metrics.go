package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	PageCacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_page_cache_requests_total",
			Help: "Index page cache lookups by result",
		},
		[]string{"result"},
	)

	FollowOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_follow_operations_total",
			Help: "Follow and unfollow calls by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		PageCacheRequests,
		FollowOperations,
	)
}
