package fleet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PositionsReportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fleet_positions_reported_total",
		Help: "Total number of accepted courier position reports by availability",
	},
	[]string{"availability"},
)
