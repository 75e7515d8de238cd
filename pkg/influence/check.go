package influence

import (
	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// DefaultTolerance is the slack allowed above 1 by CheckInvariant
const DefaultTolerance = 1e-4

// InSum returns the sum of weight x multiplicity over the in-edges of v
func InSum(g *graph.DiGraph, w *WeightTable, v graph.NodeID) (float64, error) {
	total := 0.0
	for _, a := range g.InArcs(v) {
		weight, ok := w.Weight(a.Peer, v)
		if !ok {
			return 0, &DiffusionError{Op: "check", Node: a.Peer, Peer: v, Cause: ErrMissingWeight}
		}
		total += weight * float64(a.Multiplicity)
	}
	return total, nil
}

// CheckInvariant verifies that no node's weighted in-sum exceeds 1 + eps.
// It returns nil on success and an *InvariantViolation naming the first
// offending node (in graph order) otherwise. A missing weight entry is
// reported as a *DiffusionError.
func CheckInvariant(g *graph.DiGraph, w *WeightTable, eps float64) error {
	if g == nil {
		return ErrNilGraph
	}
	if w == nil {
		return ErrNilWeights
	}

	for _, v := range g.Nodes() {
		total, err := InSum(g, w, v)
		if err != nil {
			return err
		}
		if total > 1+eps {
			return &InvariantViolation{Node: v, Sum: total, Tolerance: eps}
		}
	}
	return nil
}
