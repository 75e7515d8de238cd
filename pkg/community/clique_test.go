package community

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

func edges(pairs ...[2]string) []graph.Edge {
	out := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = graph.Edge{From: graph.NodeID(p[0]), To: graph.NodeID(p[1])}
	}
	return out
}

func TestCliquePercolation_SharedEdgeMerges(t *testing.T) {
	// triangles 1-2-3 and 2-3-4 share the edge 2-3
	g := graph.FromUndirected(edges(
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"1", "3"},
		[2]string{"2", "4"}, [2]string{"3", "4"},
		[2]string{"4", "5"},
	))

	p, err := CliquePercolation(g, 3)
	if err != nil {
		t.Fatalf("CliquePercolation failed: %v", err)
	}

	for _, n := range []graph.NodeID{"1", "2", "3", "4"} {
		if p[n] != 0 {
			t.Errorf("Expected node %s in community 0, got %d", n, p[n])
		}
	}
	if p["5"] != 1 {
		t.Errorf("Expected leftover node 5 in singleton community 1, got %d", p["5"])
	}
}

func TestCliquePercolation_SharedNodeDoesNotMerge(t *testing.T) {
	// triangles 1-2-3 and 3-4-5 share only node 3; 6 is isolated
	g := graph.FromUndirected(edges(
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"1", "3"},
		[2]string{"3", "4"}, [2]string{"4", "5"}, [2]string{"3", "5"},
	))
	g.AddNode("6")

	p, err := CliquePercolation(g, 3)
	if err != nil {
		t.Fatalf("CliquePercolation failed: %v", err)
	}

	if p["1"] != 0 || p["2"] != 0 {
		t.Errorf("Expected first triangle in community 0, got %v", p)
	}
	if p["4"] != 1 || p["5"] != 1 {
		t.Errorf("Expected second triangle in community 1, got %v", p)
	}
	// the shared node keeps the later community
	if p["3"] != 1 {
		t.Errorf("Expected node 3 in community 1, got %d", p["3"])
	}
	if p["6"] != 2 {
		t.Errorf("Expected isolated node in community 2, got %d", p["6"])
	}
	if len(p) != 6 {
		t.Errorf("Expected every node assigned, got %d", len(p))
	}
}

func TestCliquePercolation_NoCliques(t *testing.T) {
	g := graph.FromUndirected(edges([2]string{"a", "b"}, [2]string{"b", "c"}))

	p, err := CliquePercolation(g, 3)
	if err != nil {
		t.Fatalf("CliquePercolation failed: %v", err)
	}
	if p["a"] != 0 || p["b"] != 1 || p["c"] != 2 {
		t.Errorf("Expected singletons in graph order, got %v", p)
	}
}

func TestCliquePercolation_InvalidK(t *testing.T) {
	_, err := CliquePercolation(graph.NewDiGraph(), 1)
	if !errors.Is(err, ErrInvalidCliqueK) {
		t.Errorf("Expected ErrInvalidCliqueK, got %v", err)
	}
}
