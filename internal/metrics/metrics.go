package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vote reconciliation metrics
var (
	// VoteIntentsTotal counts toggle intents by target kind and direction
	VoteIntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_intents_total",
			Help: "Total vote toggle intents by target kind and direction",
		},
		[]string{"kind", "direction"},
	)

	// VoteRemoteCallsTotal counts remote vote calls by operation and outcome
	VoteRemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_remote_calls_total",
			Help: "Total remote vote calls by operation and status",
		},
		[]string{"operation", "status"},
	)

	// VoteRemoteDuration tracks how long the optimistic state stays unconfirmed
	VoteRemoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vote_remote_duration_seconds",
			Help:    "Remote vote call duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// VoteRollbacksTotal counts rollbacks; result is "reverted" or "reverted_after_overlap"
	VoteRollbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_rollbacks_total",
			Help: "Total optimistic vote rollbacks by target kind and result",
		},
		[]string{"kind", "result"},
	)
)

// Forum API client metrics
var (
	// ForumAPIRequestsTotal counts forum API requests by operation and status class
	ForumAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_api_requests_total",
			Help: "Total forum API requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	// ForumAPICircuitState is 0 closed, 1 half-open, 2 open
	ForumAPICircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forum_api_circuit_state",
			Help: "Forum API circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Event stream metrics
var (
	// EventClientsConnected tracks currently connected websocket observers
	EventClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_clients_connected",
			Help: "Current number of connected event stream clients",
		},
	)

	// EventMessagesDropped counts messages dropped for slow clients
	EventMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_messages_dropped_total",
			Help: "Total event stream messages dropped because a client buffer was full",
		},
	)
)
