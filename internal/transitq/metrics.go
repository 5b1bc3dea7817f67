package transitq

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Subsystem: "transitq",
			Name:      "submissions_total",
			Help:      "Transition jobs accepted into the executor.",
		},
		[]string{"shard"},
	)

	duplicatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Subsystem: "transitq",
			Name:      "duplicates_rejected_total",
			Help:      "Transition submissions rejected because the key was already in flight.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safepass_client",
			Subsystem: "transitq",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because a shard stayed full past the enqueue timeout.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "safepass_client",
			Subsystem: "transitq",
			Name:      "queue_depth",
			Help:      "Jobs waiting in each shard.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "safepass_client",
			Subsystem: "transitq",
			Name:      "run_duration_seconds",
			Help:      "Observed duration of transition jobs.",
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
