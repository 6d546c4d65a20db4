// Package tableau defines the YoungTableau type, construction options and
// sentinel errors.
package tableau

import (
	"errors"

	"github.com/katalvlaran/young/partition"
)

// Sentinel errors for tableau construction and geometry.
var (
	// ErrNilShape is returned when a nil partition is passed to New.
	ErrNilShape = errors.New("tableau: shape partition is nil")

	// ErrSizeMismatch is returned when the fill length differs from the
	// partition sum.
	ErrSizeMismatch = errors.New("tableau: fill length does not match partition sum")

	// ErrDimension is returned when the hook product does not divide n!
	// exactly; valid tableaux never trigger it.
	ErrDimension = errors.New("tableau: hook-length product does not divide n!")
)

// YoungTableau is a Young diagram with a label in each box, stored as a
// row-major Len(shape) × shape[0] grid padded with sentinel 0 outside the
// diagram. Immutable after construction.
type YoungTableau struct {
	shape      *partition.Partition
	rows, cols int
	grid       []int // row-major, len rows*cols
}

// Option configures tableau construction.
type Option func(*options)

type options struct {
	fill []int
}

// WithFill supplies a custom labeling, consumed row-major; its length must
// equal the partition sum. Without it the tableau is filled with 1..n.
func WithFill(fill []int) Option {
	return func(o *options) { o.fill = fill }
}
