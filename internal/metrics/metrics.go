package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the marketplace collectors.
	Registry = prometheus.NewRegistry()

	listingFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soko",
			Subsystem: "listings",
			Name:      "fetches_total",
			Help:      "Listing snapshot fetches by outcome.",
		},
		[]string{"outcome"},
	)

	chainReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "soko",
			Subsystem: "listings",
			Name:      "chain_reads_total",
			Help:      "Read calls issued against the marketplace contract while fetching listings.",
		},
	)

	allowanceChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soko",
			Subsystem: "allowance",
			Name:      "checks_total",
			Help:      "Allowance orchestration results by token.",
		},
		[]string{"token", "result"},
	)

	actions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soko",
			Subsystem: "actions",
			Name:      "total",
			Help:      "Listing and purchase actions by kind and final stage.",
		},
		[]string{"kind", "stage"},
	)

	actionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "soko",
			Subsystem: "actions",
			Name:      "duration_seconds",
			Help:      "Wall time of an action run, including confirmations.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"kind"},
	)

	sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soko",
			Subsystem: "session",
			Name:      "transitions_total",
			Help:      "Wallet session state transitions by target state.",
		},
		[]string{"state"},
	)
)

func init() {
	Registry.MustRegister(
		listingFetches,
		chainReads,
		allowanceChecks,
		actions,
		actionDuration,
		sessionTransitions,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveFetch(outcome string, reads int) {
	listingFetches.WithLabelValues(outcome).Inc()
	chainReads.Add(float64(reads))
}

func ObserveAllowance(token, result string) {
	allowanceChecks.WithLabelValues(token, result).Inc()
}

func ObserveAction(kind, stage string, seconds float64) {
	actions.WithLabelValues(kind, stage).Inc()
	actionDuration.WithLabelValues(kind).Observe(seconds)
}

func ObserveSessionTransition(state string) {
	sessionTransitions.WithLabelValues(state).Inc()
}
