package access

import (
	"github.com/prometheus/client_golang/prometheus"
)

var decisionCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tms_access_decisions_total",
		Help: "document access decisions by result and reason",
	},
	[]string{"result", "reason"},
)

// Collectors returns the metrics owned by this package for registration
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{decisionCounter}
}
