package partition

import "fmt"

// New constructs a Partition from parts, validating that the sequence is
// non-increasing with every part ≥ 1. The input is deep-copied so later
// caller mutations cannot break the invariant. An empty (or nil) slice
// yields the empty partition of 0.
// Returns ErrInvalidPartition on any violation.
// Complexity: O(k) for k parts.
func New(parts []int) (*Partition, error) {
	for i, v := range parts {
		if v < 1 {
			return nil, fmt.Errorf("%w: part %d is %d, want ≥ 1", ErrInvalidPartition, i, v)
		}
		if i > 0 && v > parts[i-1] {
			return nil, fmt.Errorf("%w: parts %d,%d not non-increasing (%d < %d)", ErrInvalidPartition, i-1, i, parts[i-1], v)
		}
	}
	cp := make([]int, len(parts))
	copy(cp, parts)

	return trusted(cp), nil
}

// trusted wraps an already-valid, caller-owned slice without re-validation.
// Used by producers that construct sorted-positive sequences by design
// (Generator, Conjugate). The slice must not be aliased elsewhere.
func trusted(parts []int) *Partition {
	s := 0
	for _, v := range parts {
		s += v
	}

	return &Partition{parts: parts, sum: s}
}

// Sum returns the integer this partition partitions.
// Complexity: O(1).
func (p *Partition) Sum() int { return p.sum }

// Len returns the number of parts.
// Complexity: O(1).
func (p *Partition) Len() int { return len(p.parts) }

// Parts returns a copy of the parts; mutating it does not affect p.
// Complexity: O(k).
func (p *Partition) Parts() []int {
	cp := make([]int, len(p.parts))
	copy(cp, p.parts)

	return cp
}

// At returns the part at 0-based index i.
// Returns ErrIndexOutOfRange outside [0, Len()).
func (p *Partition) At(i int) (int, error) {
	if i < 0 || i >= len(p.parts) {
		return 0, fmt.Errorf("%w: %d with %d parts", ErrIndexOutOfRange, i, len(p.parts))
	}

	return p.parts[i], nil
}

// Set replaces the part at 0-based index i with v, keeping the partition
// valid in place: v must satisfy p[i+1] ≤ v ≤ p[i-1], where the bound
// before the first part is +∞ and the bound after the last part is 1.
// Returns ErrIndexOutOfRange for a bad index, ErrInvalidPartition when v
// breaks the neighbor bounds. The instance must be exclusively owned by
// the caller; Set performs no synchronization.
func (p *Partition) Set(i, v int) error {
	if i < 0 || i >= len(p.parts) {
		return fmt.Errorf("%w: %d with %d parts", ErrIndexOutOfRange, i, len(p.parts))
	}
	lo := 1
	if i+1 < len(p.parts) {
		lo = p.parts[i+1]
	}
	if v < lo {
		return fmt.Errorf("%w: %d at index %d below lower bound %d", ErrInvalidPartition, v, i, lo)
	}
	if i > 0 && v > p.parts[i-1] {
		return fmt.Errorf("%w: %d at index %d above upper bound %d", ErrInvalidPartition, v, i, p.parts[i-1])
	}
	p.sum += v - p.parts[i]
	p.parts[i] = v

	return nil
}

// Conjugate returns the conjugate partition λ′, the transpose of the Young
// diagram of p: λ′[i] = |{ j : λ[j] ≥ i+1 }|. Conjugation is an involution:
// p.Conjugate().Conjugate() equals p.
// Complexity: O(n) over the diagram cells.
func (p *Partition) Conjugate() *Partition {
	if len(p.parts) == 0 {
		return trusted(nil)
	}
	out := make([]int, p.parts[0])
	for _, v := range p.parts {
		for j := 0; j < v; j++ {
			out[j]++
		}
	}

	return trusted(out)
}

// Equal reports element-wise equality of two partitions.
func (p *Partition) Equal(q *Partition) bool {
	if q == nil || len(p.parts) != len(q.parts) {
		return false
	}
	for i, v := range p.parts {
		if q.parts[i] != v {
			return false
		}
	}

	return true
}
