package coach

import "github.com/prometheus/client_golang/prometheus"

// Result sources.
const (
	sourceAI         = "ai"
	sourceFallback   = "fallback"
	sourceSimulation = "simulation"
)

var resultsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fitscan",
		Subsystem: "coach",
		Name:      "results_total",
		Help:      "Results served, by operation and by where they came from (ai, fallback, simulation)",
	},
	[]string{"operation", "source"},
)

func init() {
	prometheus.MustRegister(resultsTotal)
}

func observe(op, source string) { resultsTotal.WithLabelValues(op, source).Inc() }
