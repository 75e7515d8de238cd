package influence

import "github.com/dd0wney/cluso-overlap/pkg/graph"

// runLT propagates the static Linear Threshold model. Each newly active node
// adds weight x multiplicity to every inactive successor once; a successor
// activates as soon as its accumulated influence reaches its threshold.
func (s *Simulator) runLT(st *runState) error {
	for len(st.frontier) > 0 {
		st.rounds++
		var next []graph.NodeID

		for _, u := range st.frontier {
			for _, v := range s.graph.Successors(u) {
				vi, _ := s.graph.Index(v)
				if st.active[vi] {
					continue
				}
				inf, err := s.arcInfluence(u, v)
				if err != nil {
					return err
				}
				st.influence[vi] += inf
				if st.influence[vi] >= st.threshold[vi] {
					st.activate(v, vi)
					next = append(next, v)
				}
			}
		}

		st.frontier = next
		st.sizes = append(st.sizes, len(st.activated))
	}
	return nil
}
