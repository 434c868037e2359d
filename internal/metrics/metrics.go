// Package metrics exposes the Prometheus instrumentation for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinehub_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency by route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cinehub_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PurchasesTotal counts completed store purchases.
	PurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinehub_purchases_total",
		Help: "Total completed store purchases.",
	})

	// PointsAwardedTotal sums points credited across all earn paths.
	PointsAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinehub_points_awarded_total",
		Help: "Total points credited to users.",
	})

	// PointsSpentTotal sums points deducted by purchases.
	PointsSpentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinehub_points_spent_total",
		Help: "Total points spent in the store.",
	})

	// SuggestionsReviewedTotal counts suggestion reviews by outcome.
	SuggestionsReviewedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinehub_suggestions_reviewed_total",
		Help: "Total suggestion reviews by outcome.",
	}, []string{"outcome"})
)
