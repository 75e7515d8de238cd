package community

import (
	"fmt"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
	"github.com/dd0wney/cluso-overlap/pkg/influence"
)

// SeedPolicy selects which members of a community start diffusions
type SeedPolicy int

const (
	// SeedMembers seeds a diffusion from every member of the community
	SeedMembers SeedPolicy = iota
	// SeedRepresentative seeds only from the member that comes first in graph order
	SeedRepresentative
)

// String returns the configuration name of a policy
func (p SeedPolicy) String() string {
	switch p {
	case SeedMembers:
		return "members"
	case SeedRepresentative:
		return "representative"
	default:
		return "unknown"
	}
}

// ParseSeedPolicy converts a configuration name to a SeedPolicy
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch s {
	case "members", "":
		return SeedMembers, nil
	case "representative":
		return SeedRepresentative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// SeedsFor lists the diffusion seeds of every community in graph order.
// A member missing from g is reported as a *influence.DiffusionError
// wrapping influence.ErrUnknownSeed.
func SeedsFor(g *graph.DiGraph, groups Cover, policy SeedPolicy) (map[int][]graph.NodeID, error) {
	if policy != SeedMembers && policy != SeedRepresentative {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, policy)
	}

	owners := make(map[graph.NodeID][]int)
	for _, id := range groups.IDs() {
		for _, node := range groups[id].Sorted() {
			if !g.HasNode(node) {
				return nil, &influence.DiffusionError{Op: "seeds", Node: node, Cause: influence.ErrUnknownSeed}
			}
			owners[node] = append(owners[node], id)
		}
	}

	seeds := make(map[int][]graph.NodeID, len(groups))
	for _, node := range g.Nodes() {
		for _, id := range owners[node] {
			if policy == SeedRepresentative && len(seeds[id]) > 0 {
				continue
			}
			seeds[id] = append(seeds[id], node)
		}
	}
	return seeds, nil
}

// Expand adds to every community each node that one of its seeds reached in
// at least threshold trials. Expansion is additive: original members are kept
// and groups itself is not modified.
func Expand(groups Cover, seeds map[int][]graph.NodeID, freqs map[graph.NodeID]influence.FrequencyTable, threshold int) (Cover, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}

	expanded := make(Cover, len(groups))
	for id, members := range groups {
		set := members.Clone()
		for _, seed := range seeds[id] {
			for _, node := range freqs[seed].Frequent(threshold) {
				set.Add(node)
			}
		}
		expanded[id] = set
	}
	return expanded, nil
}
