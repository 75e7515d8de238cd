package influence

import "github.com/dd0wney/cluso-overlap/pkg/graph"

// ledgerEntry is one predecessor's current contribution to a target
type ledgerEntry struct {
	pred  int
	value float64
}

// runDLT propagates the dynamic Linear Threshold model.
//
// Every active node carries a power factor. A node entering the frontier gets
// power 1. At the start of each round the power of every node that was active
// before the previous round is multiplied by (1 + growth - decay), both drawn
// uniformly in [0,1). Whenever a frontier node touches an inactive target, all
// entries already in the target's ledger are rescaled by their predecessor's
// current power, the frontier node's own contribution is recorded, and the
// target's influence becomes the ledger sum. Activated targets stop
// accumulating.
func (s *Simulator) runDLT(st *runState, rng Source) error {
	n := s.graph.NodeCount()
	power := make([]float64, n)
	ledgers := make([][]ledgerEntry, n)
	inFrontier := make([]bool, n)

	for len(st.frontier) > 0 {
		st.rounds++

		for _, u := range st.frontier {
			ui, _ := s.graph.Index(u)
			inFrontier[ui] = true
		}
		for _, a := range st.activated {
			ai, _ := s.graph.Index(a)
			if inFrontier[ai] {
				continue
			}
			growth := rng.Float64()
			decay := rng.Float64()
			power[ai] *= 1 + growth - decay
		}

		var next []graph.NodeID
		for _, u := range st.frontier {
			ui, _ := s.graph.Index(u)
			power[ui] = 1.0

			for _, v := range s.graph.Successors(u) {
				vi, _ := s.graph.Index(v)
				if st.active[vi] {
					continue
				}

				ledger := ledgers[vi]
				recorded := false
				for k := range ledger {
					ledger[k].value *= power[ledger[k].pred]
					if ledger[k].pred == ui {
						recorded = true
					}
				}
				if !recorded {
					inf, err := s.arcInfluence(u, v)
					if err != nil {
						return err
					}
					ledger = append(ledger, ledgerEntry{pred: ui, value: inf * power[ui]})
				}
				ledgers[vi] = ledger

				total := 0.0
				for _, e := range ledger {
					total += e.value
				}
				st.influence[vi] = total

				if total >= st.threshold[vi] {
					st.activate(v, vi)
					next = append(next, v)
				}
			}
		}

		for _, u := range st.frontier {
			ui, _ := s.graph.Index(u)
			inFrontier[ui] = false
		}
		st.frontier = next
		st.sizes = append(st.sizes, len(st.activated))
	}
	return nil
}
