package community

import "github.com/dd0wney/cluso-overlap/pkg/graph"

// LabelPropagation performs label propagation for community detection.
// Every node starts in its own community and repeatedly adopts the most
// frequent label among its neighbours (ties go to the smallest label) until
// a pass changes nothing or maxIterations passes ran.
func LabelPropagation(g *graph.DiGraph, maxIterations int) *DetectionResult {
	ids := g.Nodes()

	// Initialize: each node in its own community
	labels := make(map[graph.NodeID]int, len(ids))
	for i, node := range ids {
		labels[node] = i
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		for _, node := range ids {
			labelCount := make(map[int]int)
			for _, n := range g.Neighbors(node) {
				labelCount[labels[n]]++
			}
			if len(labelCount) == 0 {
				continue
			}

			maxCount := 0
			maxLabel := labels[node]
			for label, count := range labelCount {
				if count > maxCount || (count == maxCount && label < maxLabel) {
					maxCount = count
					maxLabel = label
				}
			}

			if maxLabel != labels[node] {
				labels[node] = maxLabel
				changed = true
			}
		}

		if !changed {
			break // Converged
		}
	}

	return NewDetectionResult(g, Partition(labels))
}

// NewDetectionResult compacts p and describes its communities
func NewDetectionResult(g *graph.DiGraph, p Partition) *DetectionResult {
	compact := compactPartition(g.Nodes(), p)
	return &DetectionResult{
		Communities:   Summarize(g, compact.Groups()),
		Modularity:    Modularity(g, compact),
		NodeCommunity: compact,
	}
}
