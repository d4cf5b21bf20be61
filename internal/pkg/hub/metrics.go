package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_events_published_total",
			Help: "Total number of events published on the channel fabric",
		},
		[]string{"type"},
	)

	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_events_dropped_total",
			Help: "Total number of events dropped because a subscriber buffer was full",
		},
		[]string{"type"},
	)

	ActiveSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_active_subscriptions",
			Help: "Number of live subscriptions (connections)",
		},
	)
)
