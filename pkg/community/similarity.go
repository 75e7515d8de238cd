package community

import (
	"fmt"
	"math"
)

// UniverseSize returns the number of distinct nodes across all covers
func UniverseSize(covers ...Cover) int {
	u := make(NodeSet)
	for _, c := range covers {
		for _, set := range c {
			for id := range set {
				u.Add(id)
			}
		}
	}
	return len(u)
}

// NMI returns the normalized mutual information between covers a and b over
// a universe of n nodes:
//
//	num = -2 Σ_ij n_ij ln(n_ij n / (n_i n_j))
//	den = Σ_i n_i ln(n_i / n) + Σ_j n_j ln(n_j / n)
//
// Pairs with an empty intersection contribute nothing to num. Empty
// communities and a zero denominator are reported as errors.
func NMI(a, b Cover, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUniverse, n)
	}

	aIDs, bIDs := a.IDs(), b.IDs()
	for _, id := range aIDs {
		if len(a[id]) == 0 {
			return 0, fmt.Errorf("first cover, community %d: %w", id, ErrEmptyCommunity)
		}
	}
	for _, id := range bIDs {
		if len(b[id]) == 0 {
			return 0, fmt.Errorf("second cover, community %d: %w", id, ErrEmptyCommunity)
		}
	}

	N := float64(n)
	num := 0.0
	for _, i := range aIDs {
		ni := float64(len(a[i]))
		for _, j := range bIDs {
			nij := a[i].IntersectionSize(b[j])
			if nij == 0 {
				continue
			}
			nj := float64(len(b[j]))
			num += float64(nij) * math.Log(float64(nij)*N/(ni*nj))
		}
	}
	num *= -2

	den := 0.0
	for _, i := range aIDs {
		ni := float64(len(a[i]))
		den += ni * math.Log(ni/N)
	}
	for _, j := range bIDs {
		nj := float64(len(b[j]))
		den += nj * math.Log(nj/N)
	}

	if den == 0 {
		return 0, ErrDegenerateCover
	}
	return num / den, nil
}
