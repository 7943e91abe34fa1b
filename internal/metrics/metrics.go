// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPLatency observes request latency by method, route and status.
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// ShoppingListOps counts successful shopping list mutations by operation.
	ShoppingListOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_list_operations_total",
			Help: "Total successful shopping list operations",
		},
		[]string{"op"}, // created|deleted|updated|item_added|item_removed
	)

	// LoginFailures counts rejected login attempts.
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_login_failures_total",
			Help: "Total failed login attempts",
		},
	)

	initOnce sync.Once
)

// Handler serves the default registry.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. It is safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(HTTPLatency)
		prometheus.MustRegister(ShoppingListOps)
		prometheus.MustRegister(LoginFailures)
	})
}
