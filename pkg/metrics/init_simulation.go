package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlap_simulations_total",
			Help: "Total number of diffusion cascades run",
		},
		[]string{"variant"}, // lt, dlt
	)

	r.CascadeSize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "overlap_cascade_size",
			Help:    "Number of nodes activated per cascade, seeds included",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 500, 1000, 10000},
		},
		[]string{"variant"},
	)

	r.CascadeRounds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "overlap_cascade_rounds",
			Help:    "Number of propagation rounds per cascade",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
		},
		[]string{"variant"},
	)

	r.SpreadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "overlap_spread_duration_seconds",
			Help:    "Duration of one spread aggregation over a seed batch",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
