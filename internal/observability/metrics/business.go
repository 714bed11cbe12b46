// Package metrics defines the application's Prometheus business metrics
// and small helpers for recording them. HTTP-level metrics live in the
// handler layer; this package covers domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NewsCreatedTotal counts successfully created news items.
	NewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_created_total",
			Help: "Total number of news items created",
		},
	)

	// NewsCacheSize tracks the current length of the in-process news cache.
	// The cache is unbounded, so this gauge is the main operational signal
	// for memory growth.
	NewsCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_cache_size",
			Help: "Current number of news items held in the in-process cache",
		},
	)

	// DurableSaveFailuresTotal counts best-effort durable store writes that
	// failed and were swallowed. A rising counter with a healthy API is
	// expected on read-only deployments.
	DurableSaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_durable_save_failures_total",
			Help: "Total number of swallowed durable store write failures",
		},
	)

	// UploadsTotal counts upload relay attempts by outcome.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Total number of image upload attempts",
		},
		[]string{"status"},
	)
)

// RecordNewsCreated records a successfully created news item and the
// resulting cache size.
func RecordNewsCreated(cacheSize int) {
	NewsCreatedTotal.Inc()
	NewsCacheSize.Set(float64(cacheSize))
}

// RecordDurableSaveFailure records a swallowed durable store write failure.
func RecordDurableSaveFailure() {
	DurableSaveFailuresTotal.Inc()
}

// RecordUpload records the result of an upload relay attempt.
// Status should be either "success" or "failure".
func RecordUpload(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	UploadsTotal.WithLabelValues(status).Inc()
}
