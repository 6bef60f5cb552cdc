package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volunteerconnect_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// Registrations counts account registrations by user type.
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volunteerconnect_registrations_total",
			Help: "Total number of registered accounts",
		},
		[]string{"user_type"},
	)

	// MatchAccepts counts accepted event matches.
	MatchAccepts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerconnect_match_accepts_total",
			Help: "Total number of accepted volunteer/event matches",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volunteerconnect_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
