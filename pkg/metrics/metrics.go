// Package metrics exposes the Prometheus collectors shared by the quote and
// discovery pipelines and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderRequests counts outbound rating provider calls by product and outcome.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of rating provider requests",
		},
		[]string{"product", "outcome"},
	)

	// ProviderLatency tracks rating provider round trips.
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Duration of rating provider requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"product"},
	)

	// QuotesReturned counts normalized quotes handed back to callers.
	QuotesReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_returned_total",
			Help: "Total number of normalized quotes returned",
		},
		[]string{"product"},
	)

	// PartialBatches counts multi-call quote requests where some sub-calls failed.
	PartialBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_partial_batches_total",
			Help: "Quote requests answered with a subset of the requested plans",
		},
		[]string{"product"},
	)

	// RateLimited counts API requests rejected by the rate limiter.
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// LeadScores observes computed lead scores by scenario.
	LeadScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_lead_score",
			Help:    "Distribution of discovery lead scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"scenario"},
	)
)

// Provider call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
