package community

import "sort"

// MinimalCover removes every set that is contained in another one.
//
// Sets are stably sorted by increasing size; each set is then compared with
// the sets after it and dropped as soon as one of them contains it, after
// which the scan resumes at the same position. Equal sets collapse into the
// later one. The input slice is not modified.
func MinimalCover(sets []NodeSet) []NodeSet {
	sorted := make([]NodeSet, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) < len(sorted[j]) })

	i := 0
	for i < len(sorted)-1 {
		contained := false
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i].SubsetOf(sorted[j]) {
				contained = true
				break
			}
		}
		if contained {
			sorted = append(sorted[:i], sorted[i+1:]...)
			continue
		}
		i++
	}
	return sorted
}

// ReduceCover applies MinimalCover to the sets of c taken in ascending ID
// order and re-indexes the survivors 0..n-1 by position.
func ReduceCover(c Cover) Cover {
	reduced := MinimalCover(c.Sets())
	out := make(Cover, len(reduced))
	for i, set := range reduced {
		out[i] = set
	}
	return out
}

// IsMinimal reports whether no set is a subset of another set at a
// different position.
func IsMinimal(sets []NodeSet) bool {
	for i := range sets {
		for j := range sets {
			if i != j && sets[i].SubsetOf(sets[j]) {
				return false
			}
		}
	}
	return true
}
