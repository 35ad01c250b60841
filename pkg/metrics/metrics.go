// Package metrics exposes the Prometheus instruments the API records into.
// Collectors are registered with promauto on the default registry and served
// by the /metrics endpoint in cmd/api.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GraphQLRequests counts executed GraphQL operations by name and outcome.
	GraphQLRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Name:      "graphql_requests_total",
			Help:      "Total GraphQL operations executed.",
		},
		[]string{"operation", "status"},
	)

	// GraphQLDuration observes GraphQL request latency in seconds.
	GraphQLDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bookstore",
			Name:      "graphql_request_duration_seconds",
			Help:      "GraphQL request latency.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// Purchases counts purchase attempts by outcome
	// (completed, out_of_stock, insufficient_funds, not_found, error).
	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Name:      "purchases_total",
			Help:      "Purchase attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// PurchaseAmount observes the amount debited per completed purchase, in
	// currency units.
	PurchaseAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bookstore",
			Name:      "purchase_amount",
			Help:      "Amount debited per completed purchase.",
			Buckets:   []float64{1, 5, 10, 20, 50, 100, 200, 500},
		},
	)

	// SimilarityQueries counts similarity lookups by cache result.
	SimilarityQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Name:      "similarity_queries_total",
			Help:      "Similar-book lookups by cache result (hit, miss).",
		},
		[]string{"cache"},
	)
)
