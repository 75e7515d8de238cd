package community

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// CliquePercolation builds the initial non-overlapping blocks.
//
// Maximal cliques with at least k members are found with Bron-Kerbosch on the
// undirected view of g. Two such cliques are adjacent when they share at least
// k-1 nodes, and every connected group of adjacent cliques forms one
// community. Groups are numbered by their earliest node in graph order; a
// node in several groups keeps the highest-numbered one. Every node outside
// all groups becomes a singleton community with the next free ID.
func CliquePercolation(g *graph.DiGraph, k int) (Partition, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCliqueK, k)
	}

	view, ids := g.Undirected()
	var cliques [][]int
	for _, c := range topo.BronKerbosch(view) {
		if len(c) < k {
			continue
		}
		members := make([]int, len(c))
		for i, n := range c {
			members[i] = int(n.ID())
		}
		sort.Ints(members)
		cliques = append(cliques, members)
	}

	uf := newUnionFind(len(cliques))
	for i := 0; i < len(cliques); i++ {
		for j := i + 1; j < len(cliques); j++ {
			if sharedCount(cliques[i], cliques[j]) >= k-1 {
				uf.union(i, j)
			}
		}
	}

	// collect node positions per component
	components := make(map[int]map[int]struct{})
	for i, c := range cliques {
		root := uf.find(i)
		if components[root] == nil {
			components[root] = make(map[int]struct{})
		}
		for _, n := range c {
			components[root][n] = struct{}{}
		}
	}

	groups := make([][]int, 0, len(components))
	for _, nodes := range components {
		members := make([]int, 0, len(nodes))
		for n := range nodes {
			members = append(members, n)
		}
		sort.Ints(members)
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	p := make(Partition, len(ids))
	for id, members := range groups {
		for _, n := range members {
			p[ids[n]] = id
		}
	}

	next := len(groups)
	for _, node := range ids {
		if _, ok := p[node]; ok {
			continue
		}
		p[node] = next
		next++
	}
	return p, nil
}

// sharedCount counts common elements of two sorted slices
func sharedCount(a, b []int) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}
