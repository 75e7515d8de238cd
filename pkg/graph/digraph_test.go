package graph

import (
	"errors"
	"testing"
)

func TestDiGraph_AddEdgeCollapsesParallelArcs(t *testing.T) {
	g := NewDiGraph()
	for i := 0; i < 3; i++ {
		if err := g.AddEdge("a", "b"); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}

	m, err := g.Multiplicity("a", "b")
	if err != nil {
		t.Fatalf("Multiplicity failed: %v", err)
	}
	if m != 3 {
		t.Errorf("Expected multiplicity 3, got %d", m)
	}

	stats := g.GetStatistics()
	if stats.NodeCount != 2 || stats.EdgeCount != 1 || stats.ArcCount != 3 {
		t.Errorf("Unexpected statistics: %+v", stats)
	}
	if len(g.Successors("a")) != 1 {
		t.Errorf("Expected a single successor entry, got %v", g.Successors("a"))
	}
}

func TestDiGraph_SelfLoopRejected(t *testing.T) {
	g := NewDiGraph()
	err := g.AddEdge("a", "a")
	if !errors.Is(err, ErrSelfLoop) {
		t.Fatalf("Expected ErrSelfLoop, got %v", err)
	}
}

func TestDiGraph_SetEdge(t *testing.T) {
	g := NewDiGraph()

	if err := g.SetEdge("a", "b", 0); !errors.Is(err, ErrInvalidMultiplicity) {
		t.Fatalf("Expected ErrInvalidMultiplicity, got %v", err)
	}
	if err := g.SetEdge("a", "b", 4); err != nil {
		t.Fatalf("SetEdge failed: %v", err)
	}
	if err := g.SetEdge("a", "b", 2); err != nil {
		t.Fatalf("SetEdge overwrite failed: %v", err)
	}

	m, _ := g.Multiplicity("a", "b")
	if m != 2 {
		t.Errorf("Expected multiplicity 2 after overwrite, got %d", m)
	}
	if got := g.InMultiplicity("b"); got != 2 {
		t.Errorf("Expected in-multiplicity 2, got %d", got)
	}
}

func TestDiGraph_MissingEdge(t *testing.T) {
	g := NewDiGraph()
	g.AddNode("a")

	if _, err := g.Multiplicity("a", "b"); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Expected ErrEdgeNotFound, got %v", err)
	}
	if g.Successors("missing") != nil {
		t.Error("Expected nil successors for unknown node")
	}
}

func TestDiGraph_InsertionOrder(t *testing.T) {
	g := NewDiGraph()
	_ = g.AddEdge("c", "a")
	_ = g.AddEdge("c", "b")
	_ = g.AddEdge("a", "b")

	nodes := g.Nodes()
	want := []NodeID{"c", "a", "b"}
	for i := range want {
		if nodes[i] != want[i] {
			t.Fatalf("Nodes() = %v, want %v", nodes, want)
		}
	}

	preds := g.Predecessors("b")
	if len(preds) != 2 || preds[0] != "c" || preds[1] != "a" {
		t.Errorf("Predecessors(b) = %v, want [c a]", preds)
	}

	edges := g.Edges()
	if len(edges) != 3 || edges[0] != (Edge{From: "c", To: "a"}) {
		t.Errorf("Edges() = %v", edges)
	}
}

func TestFromUndirected(t *testing.T) {
	g := FromUndirected([]Edge{
		{From: "1", To: "2"},
		{From: "2", To: "1"},
		{From: "2", To: "3"},
		{From: "3", To: "3"},
	})

	tests := []struct {
		from, to NodeID
		want     int
	}{
		{"1", "2", 2},
		{"2", "1", 2},
		{"2", "3", 1},
		{"3", "2", 1},
	}
	for _, tt := range tests {
		m, err := g.Multiplicity(tt.from, tt.to)
		if err != nil {
			t.Fatalf("Multiplicity(%s,%s) failed: %v", tt.from, tt.to, err)
		}
		if m != tt.want {
			t.Errorf("Multiplicity(%s,%s) = %d, want %d", tt.from, tt.to, m, tt.want)
		}
	}

	if g.HasEdge("3", "3") {
		t.Error("Self loop should have been dropped")
	}
	if !g.HasNode("3") {
		t.Error("Node 3 should still exist")
	}
}

func TestDiGraph_Undirected(t *testing.T) {
	g := FromUndirected([]Edge{{From: "a", To: "b"}, {From: "b", To: "c"}})
	_ = g.AddEdge("c", "a") // one-way arc still makes them adjacent

	view, ids := g.Undirected()
	if view.Nodes().Len() != 3 {
		t.Fatalf("Expected 3 nodes, got %d", view.Nodes().Len())
	}
	if view.Edges().Len() != 3 {
		t.Errorf("Expected 3 undirected edges, got %d", view.Edges().Len())
	}
	if ids[0] != "a" || ids[2] != "c" {
		t.Errorf("Unexpected id mapping %v", ids)
	}
}

func TestDiGraph_Neighbors(t *testing.T) {
	g := NewDiGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "a")
	_ = g.AddEdge("c", "a")

	n := g.Neighbors("a")
	if len(n) != 2 || n[0] != "b" || n[1] != "c" {
		t.Errorf("Neighbors(a) = %v, want [b c]", n)
	}
}
