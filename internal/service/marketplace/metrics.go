package marketplace

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SegmentsAdvertisedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_segments_advertised_total",
			Help: "Total number of segment_available notifications sent to couriers",
		},
	)

	ProposalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_proposals_total",
			Help: "Total number of proposals by outcome",
		},
		[]string{"result"},
	)

	AcceptancesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_acceptances_total",
			Help: "Total number of proposal acceptances by outcome",
		},
		[]string{"result"},
	)

	SegmentsReopenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_segments_reopened_total",
			Help: "Total number of replacement segments created for cancelled ones",
		},
	)
)
