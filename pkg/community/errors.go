package community

import "errors"

// Common sentinel errors
var (
	ErrEmptyCommunity   = errors.New("community has no members")
	ErrDegenerateCover  = errors.New("cover makes mutual information undefined")
	ErrInvalidUniverse  = errors.New("universe size must be positive")
	ErrInvalidThreshold = errors.New("frequency threshold must be at least 1")
	ErrInvalidCliqueK   = errors.New("clique size must be at least 2")
	ErrUnknownPolicy    = errors.New("unknown seed policy")
)
