package influence

import (
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// scriptedSource replays fixed draws, then returns zero
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next]
	s.next++
	return v
}

// chainGraph returns the doubled path a - b - c
func chainGraph() *graph.DiGraph {
	return graph.FromUndirected([]graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})
}

// randomGraph builds a doubled random graph with n nodes and about 2n edges,
// some of them repeated so that multiplicities above one occur.
func randomGraph(seed uint64, n int) *graph.DiGraph {
	rng := NewRand(seed)
	pairs := make([]graph.Edge, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		u := rng.IntN(n)
		v := rng.IntN(n)
		pairs = append(pairs, graph.Edge{
			From: graph.NodeID(fmt.Sprintf("n%d", u)),
			To:   graph.NodeID(fmt.Sprintf("n%d", v)),
		})
	}
	return graph.FromUndirected(pairs)
}
