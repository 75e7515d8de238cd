package coverio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line that does not have the expected columns
	ErrMalformedLine = errors.New("malformed line")

	// ErrConflictingAssignment is returned when a partition file assigns one node twice
	ErrConflictingAssignment = errors.New("node assigned to more than one community")
)

// ParseError locates a failure inside an input stream
type ParseError struct {
	Line  int
	Text  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
