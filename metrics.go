package safepass

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Name:      "transitions_submitted_total",
			Help:      "Status transitions accepted into the executor.",
		},
		[]string{"action"},
	)

	transitionsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Name:      "transitions_failed_total",
			Help:      "Status transitions whose request failed after retries.",
		},
		[]string{"action"},
	)

	transitionsDedupedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Name:      "transitions_deduped_total",
			Help:      "Duplicate transition submissions dropped while one was in flight.",
		},
	)
)
