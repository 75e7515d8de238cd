package influence

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariant_UniformPasses(t *testing.T) {
	g := randomGraph(1, 30)
	w, err := Uniform(g)
	require.NoError(t, err)

	assert.NoError(t, CheckInvariant(g, w, DefaultTolerance))
}

func TestCheckInvariant_ReportsOffendingNode(t *testing.T) {
	g := graph.NewDiGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.SetEdge("a", "c", 2))
	require.NoError(t, g.AddEdge("b", "c"))

	w := NewWeightTable(map[graph.Edge]float64{
		{From: "a", To: "b"}: 1.0,
		{From: "a", To: "c"}: 0.4,
		{From: "b", To: "c"}: 0.3,
	})

	err := CheckInvariant(g, w, DefaultTolerance)
	require.Error(t, err)

	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, graph.NodeID("c"), violation.Node)
	assert.InDelta(t, 1.1, violation.Sum, 1e-9)
	assert.Contains(t, err.Error(), "node c")
}

func TestCheckInvariant_Tolerance(t *testing.T) {
	g := graph.NewDiGraph()
	require.NoError(t, g.AddEdge("a", "b"))

	w := NewWeightTable(map[graph.Edge]float64{{From: "a", To: "b"}: 1.00005})

	assert.NoError(t, CheckInvariant(g, w, 1e-4))
	assert.Error(t, CheckInvariant(g, w, 1e-5))
}

func TestCheckInvariant_MissingWeight(t *testing.T) {
	g := chainGraph()
	w := NewWeightTable(nil)

	err := CheckInvariant(g, w, DefaultTolerance)
	assert.ErrorIs(t, err, ErrMissingWeight)

	var de *DiffusionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "check", de.Op)
}

func TestCheckInvariant_NilInputs(t *testing.T) {
	assert.ErrorIs(t, CheckInvariant(nil, NewWeightTable(nil), 0), ErrNilGraph)
	assert.ErrorIs(t, CheckInvariant(chainGraph(), nil, 0), ErrNilWeights)
}
