// Package observability exposes the Prometheus metrics of the HTTP API.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fable_http_requests_total",
		Help: "Total number of HTTP requests handled, by route and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fable_http_request_seconds",
		Help:    "Time spent handling an HTTP request.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	AdventuresCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fable_adventures_created_total",
		Help: "Total number of adventures created through the API.",
	})

	AdventuresDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fable_adventures_deleted_total",
		Help: "Total number of adventures deleted through the API.",
	})
)
