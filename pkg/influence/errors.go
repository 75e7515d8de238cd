package influence

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// Common sentinel errors
var (
	ErrNilGraph          = errors.New("graph is nil")
	ErrNilWeights        = errors.New("weight table is nil")
	ErrEmptySeeds        = errors.New("seed set is empty")
	ErrUnknownSeed       = errors.New("seed node is not in the graph")
	ErrMissingWeight     = errors.New("no influence weight for edge")
	ErrDegenerateWeights = errors.New("in-edge weights sum to zero")
	ErrUnknownVariant    = errors.New("unknown diffusion variant")
	ErrUnknownPolicy     = errors.New("unknown weight policy")
	ErrInvalidTrials     = errors.New("trial count must be positive")
)

// DiffusionError describes a failed operation on a specific node or edge.
type DiffusionError struct {
	Op    string       // Operation that failed (e.g. "simulate", "uniform")
	Node  graph.NodeID // Node involved, or edge source
	Peer  graph.NodeID // Edge target, empty for node errors
	Cause error
}

// Error implements the error interface.
func (e *DiffusionError) Error() string {
	if e.Peer != "" {
		return fmt.Sprintf("%s edge %s->%s: %v", e.Op, e.Node, e.Peer, e.Cause)
	}
	if e.Node != "" {
		return fmt.Sprintf("%s node %s: %v", e.Op, e.Node, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DiffusionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *DiffusionError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// InvariantViolation is the diagnostic returned by CheckInvariant when the
// weighted in-sum of a node exceeds 1 + tolerance.
type InvariantViolation struct {
	Node      graph.NodeID
	Sum       float64
	Tolerance float64
}

// Error implements the error interface.
func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("for node %s the LT property is incorrect: weighted in-sum equals %g (tolerance %g)",
		v.Node, v.Sum, v.Tolerance)
}
