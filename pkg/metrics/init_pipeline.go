package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPipelineMetrics() {
	r.PipelineRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlap_pipeline_runs_total",
			Help: "Total number of detection pipeline runs",
		},
		[]string{"status"}, // success, error
	)

	r.PipelineDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "overlap_pipeline_duration_seconds",
			Help:    "End-to-end duration of detection runs",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.CommunitiesExpandedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "overlap_communities_expanded_total",
			Help: "Total number of communities grown by influence expansion",
		},
	)

	r.CoverSetsDiscardedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "overlap_cover_sets_discarded_total",
			Help: "Total number of expanded sets dropped as subsets of larger sets",
		},
	)

	r.CoverSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "overlap_cover_size",
			Help: "Number of communities in the most recent reduced cover",
		},
	)

	r.WeightViolationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "overlap_weight_violations_total",
			Help: "Total number of weight tables rejected by the in-weight check",
		},
	)
}
