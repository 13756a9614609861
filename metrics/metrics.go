// Package metrics provides Prometheus metrics for the finder server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	listingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finder_listings_total",
			Help: "Total number of directory listings by outcome",
		},
		[]string{"query", "result"},
	)

	listingEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finder_listing_entries",
			Help:    "Number of entries returned per directory listing",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	itemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finder_item_operations_total",
			Help: "Total number of filesystem item operations",
		},
		[]string{"operation", "result"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordListing counts one listing call. entries is ignored when err is not nil.
func RecordListing(withQuery bool, entries int, err error) {
	query := "none"
	if withQuery {
		query = "present"
	}
	if err != nil {
		listingsTotal.WithLabelValues(query, "error").Inc()
		return
	}
	listingsTotal.WithLabelValues(query, "ok").Inc()
	listingEntries.Observe(float64(entries))
}

func RecordItemOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	itemOperationsTotal.WithLabelValues(operation, result).Inc()
}
