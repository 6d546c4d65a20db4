// Package skew defines the SkewDiagram type and its sentinel errors.
package skew

import (
	"errors"

	"github.com/katalvlaran/young/partition"
)

// Sentinel errors for skew-diagram construction.
var (
	// ErrNilPartition is returned when either partition is nil.
	ErrNilPartition = errors.New("skew: partition is nil")

	// ErrSkewSize indicates the inner partition sums past the outer one.
	ErrSkewSize = errors.New("skew: inner partition sum exceeds outer sum")

	// ErrSkewLength indicates the inner partition has more rows than the outer.
	ErrSkewLength = errors.New("skew: inner partition has more rows than outer")

	// ErrSkewRow indicates an inner row wider than the matching outer row.
	ErrSkewRow = errors.New("skew: inner row exceeds outer row")
)

// SkewDiagram is the validated cell set λ/μ of two nested Young diagrams:
// the boxes of λ not covered by μ. Immutable after construction.
type SkewDiagram struct {
	outer, inner *partition.Partition
	lam, mu      []int // private copies for O(1) membership tests
}
