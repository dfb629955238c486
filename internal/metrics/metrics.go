package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal counts poll cycles by chain kind
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_polls_total",
			Help: "Total number of confirmation tracker poll cycles",
		},
		[]string{"chain_kind"},
	)

	// PhaseTransitions counts entered phases
	PhaseTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_phase_transitions_total",
			Help: "Total number of tracker phase transitions by target phase",
		},
		[]string{"phase"},
	)

	// SessionsTotal counts finished sessions by outcome
	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_sessions_total",
			Help: "Total number of tracking sessions by outcome",
		},
		[]string{"outcome"},
	)

	// ActiveSessions tracks sessions that still poll
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_active_sessions",
			Help: "Number of tracking sessions with an outstanding poll",
		},
	)

	// CollaboratorErrors counts failed lookups by collaborator
	CollaboratorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_collaborator_errors_total",
			Help: "Total number of failed tracker lookups",
		},
		[]string{"collaborator"},
	)

	// StaleResults counts poll results dropped because their session was superseded
	StaleResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_stale_results_total",
			Help: "Total number of discarded poll results from superseded sessions",
		},
	)

	// PollDuration tracks how long one poll cycle takes
	PollDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_poll_duration_seconds",
			Help:    "Poll cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chain_kind"},
	)

	// PersistErrors counts snapshot writes that failed
	PersistErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_persist_errors_total",
			Help: "Total number of failed transfer snapshot writes",
		},
	)
)
