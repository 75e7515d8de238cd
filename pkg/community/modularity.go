package community

import (
	gonumgraph "gonum.org/v1/gonum/graph"
	gonumcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// gainEpsilon guards against moves driven by rounding noise
const gainEpsilon = 1e-12

// Modularity returns the Newman modularity of p on the undirected view of g.
// Nodes missing from p count as singleton communities. A graph without edges
// has modularity 0.
func Modularity(g *graph.DiGraph, p Partition) float64 {
	view, ids := g.Undirected()
	if view.Edges().Len() == 0 {
		return 0
	}

	compact := compactPartition(ids, p)
	byID := make(map[int][]gonumgraph.Node)
	order := make([]int, 0)
	for i, node := range ids {
		c := compact[node]
		if _, ok := byID[c]; !ok {
			order = append(order, c)
		}
		byID[c] = append(byID[c], simple.Node(int64(i)))
	}

	communities := make([][]gonumgraph.Node, 0, len(order))
	for _, c := range order {
		communities = append(communities, byID[c])
	}
	return gonumcommunity.Q(view, communities, 1)
}

// RefineModularity performs Louvain-style local moving starting from p.
//
// Nodes are visited in graph order; each node moves to the neighbouring
// community with the largest positive modularity gain. Passes repeat until a
// full pass moves nothing. Community IDs in the result are compacted to
// 0..n-1 in order of first appearance.
func RefineModularity(g *graph.DiGraph, p Partition) Partition {
	ids := g.Nodes()
	compact := compactPartition(ids, p)

	neighbours := make([][]int, len(ids))
	edges2 := 0 // twice the undirected edge count
	for i, node := range ids {
		for _, n := range g.Neighbors(node) {
			j, _ := g.Index(n)
			neighbours[i] = append(neighbours[i], j)
		}
		edges2 += len(neighbours[i])
	}
	if edges2 == 0 {
		return compact
	}
	m2 := float64(edges2)

	comm := make([]int, len(ids))
	total := make(map[int]float64)
	for i, node := range ids {
		comm[i] = compact[node]
		total[comm[i]] += float64(len(neighbours[i]))
	}

	for moved := true; moved; {
		moved = false
		for i := range ids {
			ki := float64(len(neighbours[i]))
			if ki == 0 {
				continue
			}
			current := comm[i]

			links := make(map[int]float64)
			candidates := make([]int, 0, len(neighbours[i]))
			for _, j := range neighbours[i] {
				c := comm[j]
				if _, ok := links[c]; !ok {
					candidates = append(candidates, c)
				}
				links[c]++
			}

			total[current] -= ki
			best := current
			bestGain := links[current] - total[current]*ki/m2
			for _, c := range candidates {
				gain := links[c] - total[c]*ki/m2
				if gain > bestGain+gainEpsilon {
					best, bestGain = c, gain
				}
			}
			total[best] += ki
			if best != current {
				comm[i] = best
				moved = true
			}
		}
	}

	refined := make(Partition, len(ids))
	for i, node := range ids {
		refined[node] = comm[i]
	}
	return compactPartition(ids, refined)
}

// compactPartition renumbers communities 0..n-1 in order of first appearance
// along ids. Nodes missing from p get fresh singleton communities.
func compactPartition(ids []graph.NodeID, p Partition) Partition {
	out := make(Partition, len(ids))
	remap := make(map[int]int)
	next := 0
	for _, node := range ids {
		old, ok := p[node]
		if !ok {
			out[node] = next
			next++
			continue
		}
		c, seen := remap[old]
		if !seen {
			c = next
			remap[old] = c
			next++
		}
		out[node] = c
	}
	return out
}
