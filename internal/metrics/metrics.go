// Package metrics exposes Prometheus counters for the HTTP layer and the
// recipe-domain operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecipesCooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCooked,
			Help: HelpTextRecipesCooked,
		},
		[]string{LabelRecipeType},
	)

	RecipesRated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesRated,
			Help: HelpTextRecipesRated,
		},
	)

	RecipesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCreated,
			Help: HelpTextRecipesCreated,
		},
		[]string{LabelRecipeType},
	)

	FridgeUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFridgeUpdates,
			Help: HelpTextFridgeUpdates,
		},
		[]string{LabelOperation},
	)

	SearchesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
		[]string{LabelMode},
	)

	UsersDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersDeleted,
			Help: HelpTextUsersDeleted,
		},
	)
)
