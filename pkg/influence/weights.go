package influence

import (
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// Policy selects how influence weights are derived from the graph
type Policy int

const (
	// PolicyUniform gives each in-edge of v the weight 1 / (sum of in-multiplicities of v)
	PolicyUniform Policy = iota
	// PolicyRandom draws a weight per in-edge and normalizes per target
	PolicyRandom
)

// String returns the configuration name of a policy
func (p Policy) String() string {
	switch p {
	case PolicyUniform:
		return "uniform"
	case PolicyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration name to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "uniform", "":
		return PolicyUniform, nil
	case "random":
		return PolicyRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// WeightTable maps an ordered node pair to the target's susceptibility to the
// source. It is immutable once built.
type WeightTable struct {
	weights map[graph.Edge]float64
}

// NewWeightTable copies the given weights into a table
func NewWeightTable(weights map[graph.Edge]float64) *WeightTable {
	w := make(map[graph.Edge]float64, len(weights))
	for e, v := range weights {
		w[e] = v
	}
	return &WeightTable{weights: w}
}

// Weight returns the weight of from -> to
func (t *WeightTable) Weight(from, to graph.NodeID) (float64, bool) {
	w, ok := t.weights[graph.Edge{From: from, To: to}]
	return w, ok
}

// Len returns the number of weighted edges
func (t *WeightTable) Len() int {
	return len(t.weights)
}

// BuildWeights derives a weight table under the given policy. rng is only
// consumed by PolicyRandom and may be nil for PolicyUniform.
func BuildWeights(g *graph.DiGraph, policy Policy, rng Source) (*WeightTable, error) {
	switch policy {
	case PolicyUniform:
		return Uniform(g)
	case PolicyRandom:
		return Random(g, rng)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, policy)
	}
}

// Uniform gives every in-edge of a node v the weight 1/d(v), where d(v) is the
// sum of in-edge multiplicities of v. Nodes without in-edges get no entries.
func Uniform(g *graph.DiGraph) (*WeightTable, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	weights := make(map[graph.Edge]float64, g.GetStatistics().EdgeCount)
	for _, v := range g.Nodes() {
		arcs := g.InArcs(v)
		if len(arcs) == 0 {
			continue
		}
		dv := 0
		for _, a := range arcs {
			dv += a.Multiplicity
		}
		if dv == 0 {
			return nil, &DiffusionError{Op: "uniform", Node: v, Cause: ErrDegenerateWeights}
		}
		for _, a := range arcs {
			weights[graph.Edge{From: a.Peer, To: v}] = 1 / float64(dv)
		}
	}
	return &WeightTable{weights: weights}, nil
}

// Random draws a uniform value in [0,1) for every in-edge of each node and
// divides each draw by the multiplicity-weighted sum of the node's draws.
// Every call produces a fresh table.
func Random(g *graph.DiGraph, rng Source) (*WeightTable, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, fmt.Errorf("random weights: nil random source")
	}

	weights := make(map[graph.Edge]float64, g.GetStatistics().EdgeCount)
	for _, v := range g.Nodes() {
		arcs := g.InArcs(v)
		if len(arcs) == 0 {
			continue
		}
		draws := make([]float64, len(arcs))
		total := 0.0
		for i, a := range arcs {
			draws[i] = rng.Float64()
			total += float64(a.Multiplicity) * draws[i]
		}
		if total == 0 {
			return nil, &DiffusionError{Op: "random", Node: v, Cause: ErrDegenerateWeights}
		}
		for i, a := range arcs {
			weights[graph.Edge{From: a.Peer, To: v}] = draws[i] / total
		}
	}
	return &WeightTable{weights: weights}, nil
}
