package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and route
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamelibrary_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamelibrary_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamelibrary_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// CatalogOperations counts game service calls by outcome (ok, validation,
	// not_found, conflict, error).
	CatalogOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_catalog_operations_total",
			Help: "Total number of catalog operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	ImageArchiveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_image_archive_failures_total",
			Help: "Total number of failed image archive operations",
		},
		[]string{"operation"},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}

func RecordCatalogOperation(operation, outcome string) {
	CatalogOperations.WithLabelValues(operation, outcome).Inc()
}
