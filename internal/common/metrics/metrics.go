// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls made to the places API",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of places API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	LikedRestaurants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "liked_restaurants",
			Help: "Number of place ids currently in the liked set",
		},
	)

	LikedLookupsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liked_lookups_skipped_total",
			Help: "Liked place ids dropped from a listing because their lookup failed or the listing ran out of time",
		},
	)
)
