package overlap

import "errors"

var (
	// ErrEmptyPartition is returned when there is nothing to expand
	ErrEmptyPartition = errors.New("partition has no communities")

	// ErrThresholdAboveTrials is returned when no node could ever be frequent enough
	ErrThresholdAboveTrials = errors.New("frequency threshold exceeds trial count")

	// ErrUnknownBaseline is returned for an unrecognized baseline algorithm name
	ErrUnknownBaseline = errors.New("unknown baseline")
)
