package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeTimeout  = "timeout"
	OutcomeFailure  = "failure"
)

var (
	// SignalGenerations counts generation runs by outcome.
	SignalGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gmn_signal_generations_total",
		Help: "Signal generation runs by outcome.",
	}, []string{"outcome"})

	// GenerationDuration observes end-to-end generation latency.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gmn_signal_generation_duration_seconds",
		Help:    "End-to-end signal generation latency.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	// ArtGenerations counts artwork requests by outcome.
	ArtGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gmn_art_generations_total",
		Help: "Caption artwork generation requests by outcome.",
	}, []string{"outcome"})
)
