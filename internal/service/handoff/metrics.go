package handoff

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handoff_segment_transitions_total",
			Help: "Total number of applied segment status transitions",
		},
		[]string{"to"},
	)

	HandoversTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handoff_handovers_total",
			Help: "Total number of handover steps by stage",
		},
		[]string{"stage"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handoff_cancellations_total",
			Help: "Total number of segment cancellations by initiator",
		},
		[]string{"initiator"},
	)
)
