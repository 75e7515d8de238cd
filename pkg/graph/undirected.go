package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// FromUndirected builds the doubled directed view of an undirected edge list.
// Every pair {u, v} adds one arc u->v and one arc v->u, so a pair listed k
// times ends up with multiplicity k in both directions. Self loops are dropped.
func FromUndirected(pairs []Edge) *DiGraph {
	g := NewDiGraph()
	for _, p := range pairs {
		if p.From == p.To {
			g.AddNode(p.From)
			continue
		}
		// Errors are impossible here: endpoints differ and multiplicity is 1.
		_ = g.AddEdge(p.From, p.To)
		_ = g.AddEdge(p.To, p.From)
	}
	return g
}

// Undirected returns a gonum simple graph over the same nodes in which u and v
// are adjacent when either arc between them exists. Gonum node IDs are the
// insertion positions of g; ids[i] maps position i back to its NodeID.
func (g *DiGraph) Undirected() (view *simple.UndirectedGraph, ids []NodeID) {
	view = simple.NewUndirectedGraph()
	for i := range g.nodes {
		view.AddNode(simple.Node(int64(i)))
	}
	for i := range g.nodes {
		for _, to := range g.succ[i] {
			j := g.index[to]
			if view.HasEdgeBetween(int64(i), int64(j)) {
				continue
			}
			view.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
		}
	}
	return view, g.Nodes()
}

// Neighbors returns the union of successors and predecessors of id, without
// duplicates, successors first.
func (g *DiGraph) Neighbors(id NodeID) []NodeID {
	succ := g.Successors(id)
	pred := g.Predecessors(id)
	seen := make(map[NodeID]struct{}, len(succ)+len(pred))
	out := make([]NodeID, 0, len(succ)+len(pred))
	for _, list := range [][]NodeID{succ, pred} {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
