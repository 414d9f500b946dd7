package gaussgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusters is returned when the cluster count is not positive.
	ErrInvalidClusters = errors.New("cluster count must be positive")

	// ErrInvalidPoints is returned when the point count is negative or does
	// not fit the 32-bit positions tracked per cluster.
	ErrInvalidPoints = errors.New("point count out of range")
)

// ArtifactError reports a failure while persisting one artifact.
//
// The underlying store or codec error can be accessed via errors.Unwrap.
type ArtifactError struct {
	Name  string
	Op    string
	cause error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.cause)
}

func (e *ArtifactError) Unwrap() error { return e.cause }
