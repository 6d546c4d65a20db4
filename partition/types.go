// Package partition defines the Partition value type and sentinel errors
// shared by the counting and generation algorithms.
package partition

import "errors"

// Sentinel errors for partition construction, access and mutation.
var (
	// ErrInvalidPartition is returned when a sequence is not a valid
	// partition (not non-increasing, or containing a part < 1), or when an
	// in-place update would break those invariants.
	ErrInvalidPartition = errors.New("partition: invalid partition")

	// ErrIndexOutOfRange is returned by element access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("partition: index out of range")
)

// Partition is a partition of a non-negative integer: a non-increasing
// sequence of positive parts. The zero-length Partition is the (valid)
// empty partition of 0.
//
// A Partition is immutable after construction except for Set, which updates
// a single part under the invariants above. Instances passed through Set
// must be exclusively owned by the caller; none of the other methods
// mutate.
type Partition struct {
	parts []int
	sum   int
}
