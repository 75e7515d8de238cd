package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveCascade records one finished diffusion run
func (r *Registry) ObserveCascade(variant string, size, rounds int) {
	r.SimulationsTotal.WithLabelValues(variant).Inc()
	r.CascadeSize.WithLabelValues(variant).Observe(float64(size))
	r.CascadeRounds.WithLabelValues(variant).Observe(float64(rounds))
}

// ObserveSpread records the duration of one spread aggregation
func (r *Registry) ObserveSpread(seeds int, d time.Duration) {
	r.SpreadDuration.Observe(d.Seconds())
}

// RecordExpansion records how many communities were expanded and how many
// expanded sets the minimal cover dropped
func (r *Registry) RecordExpansion(expanded, discarded, kept int) {
	r.CommunitiesExpandedTotal.Add(float64(expanded))
	r.CoverSetsDiscardedTotal.Add(float64(discarded))
	r.CoverSize.Set(float64(kept))
}

// RecordWeightViolation counts a rejected weight table
func (r *Registry) RecordWeightViolation() {
	r.WeightViolationsTotal.Inc()
}

// RecordPipelineRun records a finished detection run
func (r *Registry) RecordPipelineRun(err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.PipelineRunsTotal.WithLabelValues(status).Inc()
	r.PipelineDuration.Observe(duration.Seconds())
}

// UpdateSystemMetrics snapshots goroutine count and heap usage
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}

// WriteTextfile writes the current state of all metrics to path in the
// Prometheus text format, for node_exporter's textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	r.UpdateSystemMetrics()
	return prometheus.WriteToTextfile(path, r.registry)
}
