package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chat_messages_total",
		Help: "Total number of chat messages sent by type",
	},
	[]string{"type"},
)
