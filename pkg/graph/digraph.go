package graph

import "fmt"

// DiGraph is an in-memory directed graph in which parallel arcs between the
// same ordered pair are collapsed into a single arc carrying a multiplicity.
//
// Nodes, successors and predecessors are kept in insertion order so that any
// traversal that consumes randomness in node order is reproducible.
type DiGraph struct {
	nodes []NodeID
	index map[NodeID]int
	succ  [][]NodeID
	pred  [][]NodeID
	mult  map[Edge]int
}

// NewDiGraph creates an empty directed graph
func NewDiGraph() *DiGraph {
	return &DiGraph{
		index: make(map[NodeID]int),
		mult:  make(map[Edge]int),
	}
}

// AddNode adds a node if it is not present yet. Adding an existing node is a no-op.
func (g *DiGraph) AddNode(id NodeID) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.succ = append(g.succ, nil)
	g.pred = append(g.pred, nil)
}

// AddEdge adds one arc from -> to, incrementing the multiplicity of an
// existing arc. Missing endpoints are created.
func (g *DiGraph) AddEdge(from, to NodeID) error {
	return g.addMultiplicity(from, to, 1)
}

// SetEdge sets the multiplicity of the arc from -> to, creating it if needed
func (g *DiGraph) SetEdge(from, to NodeID, multiplicity int) error {
	if multiplicity < 1 {
		return fmt.Errorf("set edge %s->%s: %w (got %d)", from, to, ErrInvalidMultiplicity, multiplicity)
	}
	e := Edge{From: from, To: to}
	if _, ok := g.mult[e]; ok {
		g.mult[e] = multiplicity
		return nil
	}
	return g.addMultiplicity(from, to, multiplicity)
}

func (g *DiGraph) addMultiplicity(from, to NodeID, n int) error {
	if from == to {
		return fmt.Errorf("add edge %s->%s: %w", from, to, ErrSelfLoop)
	}
	g.AddNode(from)
	g.AddNode(to)

	e := Edge{From: from, To: to}
	if _, ok := g.mult[e]; !ok {
		fi, ti := g.index[from], g.index[to]
		g.succ[fi] = append(g.succ[fi], to)
		g.pred[ti] = append(g.pred[ti], from)
	}
	g.mult[e] += n
	return nil
}

// HasNode reports whether id is part of the graph
func (g *DiGraph) HasNode(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether the arc from -> to exists
func (g *DiGraph) HasEdge(from, to NodeID) bool {
	_, ok := g.mult[Edge{From: from, To: to}]
	return ok
}

// Multiplicity returns the multiplicity of the arc from -> to
func (g *DiGraph) Multiplicity(from, to NodeID) (int, error) {
	m, ok := g.mult[Edge{From: from, To: to}]
	if !ok {
		return 0, fmt.Errorf("%s->%s: %w", from, to, ErrEdgeNotFound)
	}
	return m, nil
}

// Nodes returns a copy of all node IDs in insertion order
func (g *DiGraph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Index returns the insertion position of a node
func (g *DiGraph) Index(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Successors returns the out-neighbours of id. The returned slice must not be modified.
func (g *DiGraph) Successors(id NodeID) []NodeID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.succ[i]
}

// Predecessors returns the in-neighbours of id. The returned slice must not be modified.
func (g *DiGraph) Predecessors(id NodeID) []NodeID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.pred[i]
}

// InArcs returns the incoming arcs of id with their multiplicities
func (g *DiGraph) InArcs(id NodeID) []Arc {
	preds := g.Predecessors(id)
	arcs := make([]Arc, 0, len(preds))
	for _, p := range preds {
		arcs = append(arcs, Arc{Peer: p, Multiplicity: g.mult[Edge{From: p, To: id}]})
	}
	return arcs
}

// OutArcs returns the outgoing arcs of id with their multiplicities
func (g *DiGraph) OutArcs(id NodeID) []Arc {
	succs := g.Successors(id)
	arcs := make([]Arc, 0, len(succs))
	for _, s := range succs {
		arcs = append(arcs, Arc{Peer: s, Multiplicity: g.mult[Edge{From: id, To: s}]})
	}
	return arcs
}

// InMultiplicity returns the sum of multiplicities over the in-arcs of id
func (g *DiGraph) InMultiplicity(id NodeID) int {
	total := 0
	for _, a := range g.InArcs(id) {
		total += a.Multiplicity
	}
	return total
}

// Edges returns every arc in node insertion order, successors in insertion order
func (g *DiGraph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.mult))
	for i, from := range g.nodes {
		for _, to := range g.succ[i] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// NodeCount returns the number of nodes
func (g *DiGraph) NodeCount() int {
	return len(g.nodes)
}

// GetStatistics returns node and arc counts
func (g *DiGraph) GetStatistics() Statistics {
	arcs := 0
	for _, m := range g.mult {
		arcs += m
	}
	return Statistics{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.mult),
		ArcCount:  arcs,
	}
}
