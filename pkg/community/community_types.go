package community

import (
	"sort"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// NodeSet is an unordered set of nodes
type NodeSet map[graph.NodeID]struct{}

// NewNodeSet creates a set holding ids
func NewNodeSet(ids ...graph.NodeID) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id
func (s NodeSet) Add(id graph.NodeID) {
	s[id] = struct{}{}
}

// Has reports whether id is a member
func (s NodeSet) Has(id graph.NodeID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy
func (s NodeSet) Clone() NodeSet {
	c := make(NodeSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// SubsetOf reports whether every member of s is also in other
func (s NodeSet) SubsetOf(other NodeSet) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// IntersectionSize returns |s ∩ other|
func (s NodeSet) IntersectionSize(other NodeSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}
	return n
}

// Sorted returns the members in lexical order
func (s NodeSet) Sorted() []graph.NodeID {
	out := make([]graph.NodeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Partition maps every node to exactly one community ID
type Partition map[graph.NodeID]int

// Groups inverts the partition into community ID -> members
func (p Partition) Groups() Cover {
	c := make(Cover)
	for node, id := range p {
		set, ok := c[id]
		if !ok {
			set = make(NodeSet)
			c[id] = set
		}
		set.Add(node)
	}
	return c
}

// Cover maps a community ID to its members. Member sets may overlap.
type Cover map[int]NodeSet

// IDs returns the community IDs in ascending order
func (c Cover) IDs() []int {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Sets returns the member sets ordered by ascending community ID
func (c Cover) Sets() []NodeSet {
	ids := c.IDs()
	sets := make([]NodeSet, len(ids))
	for i, id := range ids {
		sets[i] = c[id]
	}
	return sets
}

// Universe returns every node that belongs to at least one community
func (c Cover) Universe() NodeSet {
	u := make(NodeSet)
	for _, set := range c {
		for id := range set {
			u.Add(id)
		}
	}
	return u
}

// Community describes one detected community
type Community struct {
	ID      int
	Nodes   []graph.NodeID
	Size    int
	Density float64 // Arc density within community
}

// DetectionResult is a non-overlapping baseline partition with its quality
type DetectionResult struct {
	Communities   []*Community
	Modularity    float64   // Quality measure of the partitioning
	NodeCommunity Partition // Node ID -> Community ID
}

// Summarize describes every community of c in ascending ID order. Density
// is the fraction of ordered member pairs joined by an arc.
func Summarize(g *graph.DiGraph, c Cover) []*Community {
	out := make([]*Community, 0, len(c))
	for _, id := range c.IDs() {
		set := c[id]
		nodes := set.Sorted()
		arcs := 0
		for _, u := range nodes {
			for _, v := range g.Successors(u) {
				if set.Has(v) {
					arcs++
				}
			}
		}
		density := 0.0
		if n := len(nodes); n > 1 {
			density = float64(arcs) / float64(n*(n-1))
		}
		out = append(out, &Community{
			ID:      id,
			Nodes:   nodes,
			Size:    len(nodes),
			Density: density,
		})
	}
	return out
}
