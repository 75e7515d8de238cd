package graph

import "errors"

// Common sentinel errors
var (
	ErrNodeNotFound        = errors.New("node not found")
	ErrEdgeNotFound        = errors.New("edge not found")
	ErrInvalidMultiplicity = errors.New("edge multiplicity must be at least 1")
	ErrSelfLoop            = errors.New("self loops are not allowed")
)
