package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics emitted by detection runs
type Registry struct {
	// Simulation Metrics
	SimulationsTotal *prometheus.CounterVec
	CascadeSize      *prometheus.HistogramVec
	CascadeRounds    *prometheus.HistogramVec
	SpreadDuration   prometheus.Histogram

	// Pipeline Metrics
	PipelineRunsTotal        *prometheus.CounterVec
	PipelineDuration         prometheus.Histogram
	CommunitiesExpandedTotal prometheus.Counter
	CoverSetsDiscardedTotal  prometheus.Counter
	CoverSize                prometheus.Gauge
	WeightViolationsTotal    prometheus.Counter

	// System Metrics
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initSimulationMetrics()
	r.initPipelineMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
