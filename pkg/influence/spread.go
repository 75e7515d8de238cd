package influence

import (
	"context"
	"fmt"
	"time"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/dd0wney/cluso-overlap/pkg/parallel"
)

// DefaultTrials is the number of independent runs per seed
const DefaultTrials = 20

// FrequencyTable counts, per reached node, in how many trials it was activated
type FrequencyTable map[graph.NodeID]int

// Add merges other into t by summing counts
func (t FrequencyTable) Add(other FrequencyTable) {
	for n, c := range other {
		t[n] += c
	}
}

// Frequent returns the nodes reached in at least threshold trials, in no
// particular order.
func (t FrequencyTable) Frequent(threshold int) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(t))
	for n, c := range t {
		if c >= threshold {
			out = append(out, n)
		}
	}
	return out
}

// Observer receives one callback per finished trial and one per spread call.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveCascade(variant string, size, rounds int)
	ObserveSpread(seeds int, d time.Duration)
}

// SpreadOptions configures an Aggregator
type SpreadOptions struct {
	Trials   int      // runs per seed, DefaultTrials when zero
	Workers  int      // worker goroutines, GOMAXPROCS when zero
	Seed     uint64   // base seed; trial generators are derived from it
	Observer Observer // optional
}

// Aggregator repeatedly runs a Simulator from individual seeds and tabulates
// how often every node is reached.
type Aggregator struct {
	sim  *Simulator
	opts SpreadOptions
}

// NewAggregator creates an aggregator around a simulator
func NewAggregator(sim *Simulator, opts SpreadOptions) (*Aggregator, error) {
	if sim == nil {
		return nil, fmt.Errorf("new aggregator: nil simulator")
	}
	if opts.Trials == 0 {
		opts.Trials = DefaultTrials
	}
	if opts.Trials < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, opts.Trials)
	}
	return &Aggregator{sim: sim, opts: opts}, nil
}

// Trials returns the number of runs per seed
func (a *Aggregator) Trials() int {
	return a.opts.Trials
}

// Spread runs all trials from a single seed
func (a *Aggregator) Spread(ctx context.Context, seed graph.NodeID) (FrequencyTable, error) {
	tables, err := a.SpreadAll(ctx, []graph.NodeID{seed})
	if err != nil {
		return nil, err
	}
	return tables[seed], nil
}

// SpreadAll runs Trials independent cascades from each seed in isolation.
//
// Trials of one seed are split into contiguous chunks, one pool task per
// (seed, chunk). Each task owns its run state and a partial frequency table;
// partial tables are merged by addition once the pool drains. The generator
// of trial t for seed s is derived from (Seed, index of s, t) only, so the
// result does not depend on the worker count.
func (a *Aggregator) SpreadAll(ctx context.Context, seeds []graph.NodeID) (map[graph.NodeID]FrequencyTable, error) {
	start := time.Now()
	g := a.sim.Graph()

	seeds = uniqueSeeds(seeds)
	streams := make([]uint64, len(seeds))
	for i, s := range seeds {
		idx, ok := g.Index(s)
		if !ok {
			return nil, &DiffusionError{Op: "spread", Node: s, Cause: ErrUnknownSeed}
		}
		streams[i] = uint64(idx)
	}

	pool, err := parallel.NewWorkerPool(a.opts.Workers)
	if err != nil {
		return nil, err
	}

	chunks := pool.Workers()
	if chunks > a.opts.Trials {
		chunks = a.opts.Trials
	}
	partials := make([][]FrequencyTable, len(seeds))

	for si := range seeds {
		partials[si] = make([]FrequencyTable, chunks)
		for c := 0; c < chunks; c++ {
			lo := c * a.opts.Trials / chunks
			hi := (c + 1) * a.opts.Trials / chunks
			ok := pool.Submit(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				table, err := a.runTrials(seeds[si], streams[si], lo, hi)
				if err != nil {
					return err
				}
				partials[si][c] = table
				return nil
			})
			if !ok {
				pool.Close()
				return nil, fmt.Errorf("spread: worker pool closed")
			}
		}
	}

	if err := pool.Wait(); err != nil {
		return nil, err
	}

	result := make(map[graph.NodeID]FrequencyTable, len(seeds))
	for si, seed := range seeds {
		merged := make(FrequencyTable)
		for _, p := range partials[si] {
			merged.Add(p)
		}
		result[seed] = merged
	}

	if a.opts.Observer != nil {
		a.opts.Observer.ObserveSpread(len(seeds), time.Since(start))
	}
	return result, nil
}

func uniqueSeeds(seeds []graph.NodeID) []graph.NodeID {
	seen := make(map[graph.NodeID]struct{}, len(seeds))
	out := make([]graph.NodeID, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// runTrials runs trials [lo, hi) for one seed into a fresh table
func (a *Aggregator) runTrials(seed graph.NodeID, stream uint64, lo, hi int) (FrequencyTable, error) {
	table := make(FrequencyTable)
	seeds := []graph.NodeID{seed}

	for t := lo; t < hi; t++ {
		c, err := a.sim.Run(seeds, TrialRand(a.opts.Seed, stream, t))
		if err != nil {
			return nil, err
		}
		for _, n := range c.Activated {
			table[n]++
		}
		if a.opts.Observer != nil {
			a.opts.Observer.ObserveCascade(a.sim.Variant().String(), len(c.Activated), c.Rounds)
		}
	}
	return table, nil
}

// AverageSpread returns the mean size of the activated set over iterations
// independent runs from the same seed set.
func AverageSpread(sim *Simulator, seeds []graph.NodeID, iterations int, rng Source) (float64, error) {
	if iterations <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTrials, iterations)
	}

	total := 0
	for i := 0; i < iterations; i++ {
		c, err := sim.Run(seeds, rng)
		if err != nil {
			return 0, err
		}
		total += len(c.Activated)
	}
	return float64(total) / float64(iterations), nil
}
