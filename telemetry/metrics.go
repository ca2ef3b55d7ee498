package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PlaysRecorded counts plays that were committed, by rating
	PlaysRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackhaus_plays_recorded_total",
			Help: "Total number of plays recorded",
		},
		[]string{"rating"},
	)

	// CatalogCreated counts catalog entities created by a resolve, by kind
	// (artist, album, track, station)
	CatalogCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackhaus_catalog_created_total",
			Help: "Total number of catalog entities created while recording plays",
		},
		[]string{"kind"},
	)

	// RecordRetries counts play recordings that were retried after a conflict
	RecordRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trackhaus_record_retries_total",
			Help: "Total number of play recordings retried because of a storage conflict",
		},
	)

	// StatsDuration tracks how long computing listener statistics takes
	StatsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trackhaus_stats_duration_seconds",
			Help:    "Duration of listener statistics computation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// MetricsHandler returns the handler serving the prometheus metrics
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
