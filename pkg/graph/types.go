package graph

// NodeID is an opaque node label. Labels are compared by value only.
type NodeID string

// Edge is an ordered node pair (From -> To)
type Edge struct {
	From NodeID
	To   NodeID
}

// Arc is an outgoing or incoming adjacency entry with its multiplicity
type Arc struct {
	Peer         NodeID
	Multiplicity int
}

// Statistics summarizes a graph snapshot
type Statistics struct {
	NodeCount int
	EdgeCount int // distinct ordered pairs
	ArcCount  int // sum of multiplicities
}
