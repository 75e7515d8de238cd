package influence

import (
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// Variant selects the cascade model
type Variant int

const (
	// VariantLT is the static Linear Threshold model
	VariantLT Variant = iota
	// VariantDLT is the dynamic Linear Threshold model in which the influence of
	// already-active predecessors grows or decays every round
	VariantDLT
)

// String returns the configuration name of a variant
func (v Variant) String() string {
	switch v {
	case VariantLT:
		return "lt"
	case VariantDLT:
		return "dlt"
	default:
		return "unknown"
	}
}

// ParseVariant converts a configuration name to a Variant
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "lt", "LT", "":
		return VariantLT, nil
	case "dlt", "DLT":
		return VariantDLT, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Cascade is the outcome of one simulation run
type Cascade struct {
	// Activated holds every node ever activated, seeds first, then in
	// activation order. Callers should treat it as a set.
	Activated []graph.NodeID
	// Rounds is the number of propagation rounds executed
	Rounds int
	// Sizes[k] is |T| after round k; Sizes[0] is the seed count
	Sizes []int
}

// Simulator runs threshold cascades over a fixed graph and weight table.
// Both are read-only, so a Simulator may be shared by concurrent runs as long
// as each run has its own random source.
type Simulator struct {
	graph   *graph.DiGraph
	weights *WeightTable
	variant Variant
}

// NewSimulator creates a simulator for the given model
func NewSimulator(g *graph.DiGraph, w *WeightTable, variant Variant) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeights
	}
	if variant != VariantLT && variant != VariantDLT {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, variant)
	}
	return &Simulator{graph: g, weights: w, variant: variant}, nil
}

// Variant returns the cascade model of the simulator
func (s *Simulator) Variant() Variant {
	return s.variant
}

// Graph returns the graph the simulator runs on
func (s *Simulator) Graph() *graph.DiGraph {
	return s.graph
}

// Run draws a fresh threshold for every node from rng and propagates
// activation from seeds until a round activates nothing.
func (s *Simulator) Run(seeds []graph.NodeID, rng Source) (*Cascade, error) {
	st, err := s.newRunState(seeds, rng)
	if err != nil {
		return nil, err
	}

	switch s.variant {
	case VariantDLT:
		err = s.runDLT(st, rng)
	default:
		err = s.runLT(st)
	}
	if err != nil {
		return nil, err
	}

	return &Cascade{
		Activated: st.activated,
		Rounds:    st.rounds,
		Sizes:     st.sizes,
	}, nil
}

// Simulate runs a single cascade and returns the activated set
func Simulate(g *graph.DiGraph, seeds []graph.NodeID, w *WeightTable, variant Variant, rng Source) ([]graph.NodeID, error) {
	sim, err := NewSimulator(g, w, variant)
	if err != nil {
		return nil, err
	}
	c, err := sim.Run(seeds, rng)
	if err != nil {
		return nil, err
	}
	return c.Activated, nil
}

// runState is owned by a single run and discarded afterwards
type runState struct {
	threshold []float64
	influence []float64
	active    []bool
	activated []graph.NodeID
	frontier  []graph.NodeID
	rounds    int
	sizes     []int
}

func (s *Simulator) newRunState(seeds []graph.NodeID, rng Source) (*runState, error) {
	if len(seeds) == 0 {
		return nil, &DiffusionError{Op: "simulate", Cause: ErrEmptySeeds}
	}
	if rng == nil {
		return nil, fmt.Errorf("simulate: nil random source")
	}

	n := s.graph.NodeCount()
	st := &runState{
		threshold: make([]float64, n),
		influence: make([]float64, n),
		active:    make([]bool, n),
	}

	for _, seed := range seeds {
		i, ok := s.graph.Index(seed)
		if !ok {
			return nil, &DiffusionError{Op: "simulate", Node: seed, Cause: ErrUnknownSeed}
		}
		if st.active[i] {
			continue
		}
		st.active[i] = true
		st.activated = append(st.activated, seed)
	}
	st.frontier = append([]graph.NodeID(nil), st.activated...)
	st.sizes = append(st.sizes, len(st.activated))

	for i := range st.threshold {
		st.threshold[i] = rng.Float64()
	}
	return st, nil
}

func (st *runState) activate(v graph.NodeID, i int) {
	st.active[i] = true
	st.activated = append(st.activated, v)
}

// arcInfluence returns weight(u->v) * multiplicity(u,v)
func (s *Simulator) arcInfluence(u, v graph.NodeID) (float64, error) {
	w, ok := s.weights.Weight(u, v)
	if !ok {
		return 0, &DiffusionError{Op: "simulate", Node: u, Peer: v, Cause: ErrMissingWeight}
	}
	m, err := s.graph.Multiplicity(u, v)
	if err != nil {
		return 0, &DiffusionError{Op: "simulate", Node: u, Peer: v, Cause: err}
	}
	return w * float64(m), nil
}
