package overlap

import (
	"context"
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
	"github.com/dd0wney/cluso-overlap/pkg/logging"
)

// ExpandAndReduce grows every community of partition by the nodes its seeds
// reach in at least threshold of trials diffusion runs, then reduces the
// result to an inclusion-minimal cover indexed 0..n-1.
//
// It uses the LT variant, member seeding and a clock-derived seed. Use a
// Detector to control those.
func ExpandAndReduce(ctx context.Context, partition community.Partition, g *graph.DiGraph, weights *influence.WeightTable, trials, threshold int) (community.Cover, error) {
	opts := DefaultOptions()
	opts.Trials = trials
	opts.Threshold = threshold
	d, err := NewDetector(opts)
	if err != nil {
		return nil, err
	}
	return d.ExpandAndReduce(ctx, partition, g, weights)
}

// ExpandAndReduce runs expansion and minimal-cover reduction with the
// detector's options
func (d *Detector) ExpandAndReduce(ctx context.Context, partition community.Partition, g *graph.DiGraph, weights *influence.WeightTable) (community.Cover, error) {
	expanded, err := d.expand(ctx, d.logger, partition, g, weights)
	if err != nil {
		return nil, err
	}
	reduced := community.ReduceCover(expanded)
	if d.metrics != nil {
		d.metrics.RecordExpansion(len(expanded), len(expanded)-len(reduced), len(reduced))
	}
	return reduced, nil
}

func (d *Detector) expand(ctx context.Context, logger logging.Logger, partition community.Partition, g *graph.DiGraph, weights *influence.WeightTable) (community.Cover, error) {
	if len(partition) == 0 {
		return nil, ErrEmptyPartition
	}

	groups := partition.Groups()
	seeds, err := community.SeedsFor(g, groups, d.opts.SeedPolicy)
	if err != nil {
		return nil, err
	}

	sim, err := influence.NewSimulator(g, weights, d.opts.Variant)
	if err != nil {
		return nil, err
	}
	spreadOpts := influence.SpreadOptions{
		Trials:  d.opts.Trials,
		Workers: d.opts.Workers,
		Seed:    d.opts.Seed,
	}
	if d.metrics != nil {
		spreadOpts.Observer = d.metrics
	}
	agg, err := influence.NewAggregator(sim, spreadOpts)
	if err != nil {
		return nil, err
	}

	var all []graph.NodeID
	for _, id := range groups.IDs() {
		all = append(all, seeds[id]...)
	}

	phase := logging.StartPhase(logger, "spread")
	freqs, err := agg.SpreadAll(ctx, all)
	if err != nil {
		phase.Fail(err)
		return nil, fmt.Errorf("spread: %w", err)
	}
	phase.End(
		logging.Count(len(freqs)),
		logging.Trials(d.opts.Trials),
		logging.Variant(d.opts.Variant.String()))

	expanded, err := community.Expand(groups, seeds, freqs, d.opts.Threshold)
	if err != nil {
		return nil, err
	}

	if logger.GetLevel() == logging.DebugLevel {
		for _, id := range expanded.IDs() {
			logger.Debug("community expanded",
				logging.Community(id),
				logging.Int("seeds", len(seeds[id])),
				logging.Int("before", len(groups[id])),
				logging.Int("after", len(expanded[id])))
		}
	}
	return expanded, nil
}
