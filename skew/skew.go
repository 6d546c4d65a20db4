package skew

import (
	"fmt"

	"github.com/katalvlaran/young/partition"
)

// New constructs the skew diagram outer/inner, validating containment:
// inner.Sum() ≤ outer.Sum(), inner.Len() ≤ outer.Len(), and row-wise
// inner[i] ≤ outer[i]. The checks surface as ErrSkewSize, ErrSkewLength
// and ErrSkewRow respectively; ErrNilPartition covers nil inputs.
// Complexity: O(rows).
func New(outer, inner *partition.Partition) (*SkewDiagram, error) {
	if outer == nil || inner == nil {
		return nil, ErrNilPartition
	}
	if inner.Sum() > outer.Sum() {
		return nil, fmt.Errorf("%w: %d > %d", ErrSkewSize, inner.Sum(), outer.Sum())
	}
	if inner.Len() > outer.Len() {
		return nil, fmt.Errorf("%w: %d > %d rows", ErrSkewLength, inner.Len(), outer.Len())
	}
	lam, mu := outer.Parts(), inner.Parts()
	for i, m := range mu {
		if m > lam[i] {
			return nil, fmt.Errorf("%w: row %d has %d > %d", ErrSkewRow, i, m, lam[i])
		}
	}

	return &SkewDiagram{outer: outer, inner: inner, lam: lam, mu: mu}, nil
}

// Outer returns λ, the outer partition.
func (x *SkewDiagram) Outer() *partition.Partition { return x.outer }

// Inner returns μ, the inner partition.
func (x *SkewDiagram) Inner() *partition.Partition { return x.inner }

// N returns the number of cells of the skew shape: Sum(λ) − Sum(μ).
func (x *SkewDiagram) N() int { return x.outer.Sum() - x.inner.Sum() }

// Contains reports whether cell (i,j), 0-based, belongs to the skew shape:
// inside λ's row i but beyond μ's (μ rows past its length count as 0).
// Complexity: O(1).
func (x *SkewDiagram) Contains(i, j int) bool {
	if i < 0 || i >= len(x.lam) || j < 0 || j >= x.lam[i] {
		return false
	}
	if i < len(x.mu) && j < x.mu[i] {
		return false
	}

	return true
}

// Matrix returns the 0/1 occupancy grid of shape Len(λ) × λ[0]; cell
// (i,j) is 1 exactly when it belongs to the skew shape. Intended for
// external rendering.
// Complexity: O(rows×cols).
func (x *SkewDiagram) Matrix() [][]int {
	rows := len(x.lam)
	cols := 0
	if rows > 0 {
		cols = x.lam[0]
	}
	m := make([][]int, rows)
	for i := 0; i < rows; i++ {
		m[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			if x.Contains(i, j) {
				m[i][j] = 1
			}
		}
	}

	return m
}

// Equal reports structural equality of the (λ, μ) pairs.
func (x *SkewDiagram) Equal(y *SkewDiagram) bool {
	if y == nil {
		return false
	}

	return x.outer.Equal(y.outer) && x.inner.Equal(y.inner)
}
