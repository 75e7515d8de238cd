package overlap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/config"
	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
	"github.com/dd0wney/cluso-overlap/pkg/metrics"
)

// Detector runs the overlapping community detection pipeline:
// baseline partition, weight assignment and check, spread aggregation,
// expansion and minimal-cover reduction.
type Detector struct {
	opts    Options
	logger  logging.Logger
	metrics *metrics.Registry
}

// Result is the outcome of one Detect run
type Result struct {
	RunID              string
	Seed               uint64
	Baseline           community.Partition
	BaselineModularity float64
	Expanded           community.Cover // before reduction; nil when overlap is off
	Cover              community.Cover
	Discarded          int
	Duration           time.Duration
}

// NewDetector validates opts and builds a detector
func NewDetector(opts Options, options ...Option) (*Detector, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	d := &Detector{opts: opts, logger: logging.NewNopLogger()}
	for _, o := range options {
		o(d)
	}
	d.logger = d.logger.With(logging.Component("overlap"))
	return d, nil
}

// Options returns the effective options, with the resolved seed
func (d *Detector) Options() Options {
	return d.opts
}

// Detect builds the baseline partition of g and, when overlap is enabled,
// expands it into a minimal cover.
func (d *Detector) Detect(ctx context.Context, g *graph.DiGraph) (*Result, error) {
	runID := uuid.NewString()
	logger := d.logger.With(logging.RunID(runID))
	start := time.Now()

	phase := logging.StartPhase(logger, "baseline")
	baseline, err := d.Baseline(g)
	if err != nil {
		phase.Fail(err)
		d.finish(err, start)
		return nil, err
	}
	phase.End(logging.Count(len(baseline.Groups())))

	return d.detect(ctx, logger, runID, g, baseline, start)
}

// DetectFrom skips the baseline phase and expands a caller-supplied partition
func (d *Detector) DetectFrom(ctx context.Context, g *graph.DiGraph, baseline community.Partition) (*Result, error) {
	runID := uuid.NewString()
	return d.detect(ctx, d.logger.With(logging.RunID(runID)), runID, g, baseline, time.Now())
}

func (d *Detector) detect(ctx context.Context, logger logging.Logger, runID string, g *graph.DiGraph, baseline community.Partition, start time.Time) (*Result, error) {
	res := &Result{
		RunID:              runID,
		Seed:               d.opts.Seed,
		Baseline:           baseline,
		BaselineModularity: community.Modularity(g, baseline),
	}

	if !d.opts.Overlap {
		res.Cover = baseline.Groups()
		res.Duration = time.Since(start)
		d.finish(nil, start)
		logger.Info("detection complete", logging.Count(len(res.Cover)), logging.Latency(res.Duration))
		return res, nil
	}

	phase := logging.StartPhase(logger, "weights")
	weights, err := d.Weights(g)
	if err != nil {
		phase.Fail(err)
		d.finish(err, start)
		return nil, err
	}
	phase.End(logging.Count(weights.Len()))

	expanded, err := d.expand(ctx, logger, baseline, g, weights)
	if err != nil {
		d.finish(err, start)
		return nil, err
	}

	res.Expanded = expanded
	res.Cover = community.ReduceCover(expanded)
	res.Discarded = len(expanded) - len(res.Cover)
	res.Duration = time.Since(start)

	if d.metrics != nil {
		d.metrics.RecordExpansion(len(expanded), res.Discarded, len(res.Cover))
	}
	d.finish(nil, start)
	logger.Info("detection complete",
		logging.Count(len(res.Cover)),
		logging.Int("discarded", res.Discarded),
		logging.Latency(res.Duration))
	return res, nil
}

func (d *Detector) finish(err error, start time.Time) {
	if d.metrics != nil {
		d.metrics.RecordPipelineRun(err, time.Since(start))
	}
}

// Baseline returns the non-overlapping partition of g
func (d *Detector) Baseline(g *graph.DiGraph) (community.Partition, error) {
	switch d.opts.Baseline {
	case config.BaselineLabelPropagation:
		return community.LabelPropagation(g, d.opts.LabelIterations).NodeCommunity, nil
	default:
		seeded, err := community.CliquePercolation(g, d.opts.CliqueK)
		if err != nil {
			return nil, fmt.Errorf("baseline: %w", err)
		}
		return community.RefineModularity(g, seeded), nil
	}
}

// Weights assigns influence weights to g and rejects tables that break the
// in-weight bound
func (d *Detector) Weights(g *graph.DiGraph) (*influence.WeightTable, error) {
	weights, err := influence.BuildWeights(g, d.opts.Weights, influence.NewRand(d.opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	if err := influence.CheckInvariant(g, weights, d.opts.Tolerance); err != nil {
		if d.metrics != nil {
			d.metrics.RecordWeightViolation()
		}
		return nil, fmt.Errorf("weights: %w", err)
	}
	return weights, nil
}
