package tableau

import (
	"fmt"

	"github.com/katalvlaran/young/partition"
)

// New builds a YoungTableau over shape p, filled row-major with 1..Sum(p)
// or with the labels from WithFill. The fill is copied into the grid, so
// the caller may reuse its slice.
// Returns ErrNilShape for a nil shape, ErrSizeMismatch when a supplied fill
// has the wrong length.
// Complexity: O(rows×cols) time and memory.
func New(p *partition.Partition, opts ...Option) (*YoungTableau, error) {
	if p == nil {
		return nil, ErrNilShape
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := p.Sum()
	if o.fill != nil && len(o.fill) != n {
		return nil, fmt.Errorf("%w: got %d labels for sum %d", ErrSizeMismatch, len(o.fill), n)
	}

	parts := p.Parts()
	rows := len(parts)
	cols := 0
	if rows > 0 {
		cols = parts[0]
	}

	t := &YoungTableau{
		shape: p,
		rows:  rows,
		cols:  cols,
		grid:  make([]int, rows*cols),
	}
	idx := 0
	for i, rowLen := range parts {
		for j := 0; j < rowLen; j++ {
			if o.fill != nil {
				t.grid[i*cols+j] = o.fill[idx]
			} else {
				t.grid[i*cols+j] = idx + 1
			}
			idx++
		}
	}

	return t, nil
}

// Shape returns the underlying partition.
func (t *YoungTableau) Shape() *partition.Partition { return t.shape }

// N returns the number of boxes in the diagram.
func (t *YoungTableau) N() int { return t.shape.Sum() }

// Size returns the padded grid dimensions: Len(shape) rows, shape[0] cols.
func (t *YoungTableau) Size() (rows, cols int) { return t.rows, t.cols }

// At returns the label of cell (i,j) in 0-based coordinates, or 0 when the
// cell lies outside the diagram or outside the grid entirely. The sentinel
// doubles as the membership signal; it never reports an error.
// Complexity: O(1).
func (t *YoungTableau) At(i, j int) int {
	if i < 0 || j < 0 || i >= t.rows || j >= t.cols {
		return 0
	}

	return t.grid[i*t.cols+j]
}

// inDiagram reports whether (i,j) is a box of the shape. Derived from the
// shape rather than the labels, so a custom fill may legally contain zeros
// without confusing the geometry.
func (t *YoungTableau) inDiagram(i, j int) bool {
	if i < 0 || i >= t.rows || j < 0 {
		return false
	}
	rowLen, _ := t.shape.At(i)

	return j < rowLen
}

// Conjugate returns the transpose tableau: shape conjugated, and cell (i,j)
// of the result carrying the label of cell (j,i) of t. An involution.
// Complexity: O(rows×cols).
func (t *YoungTableau) Conjugate() *YoungTableau {
	shape := t.shape.Conjugate()
	rows, cols := t.cols, t.rows
	c := &YoungTableau{
		shape: shape,
		rows:  rows,
		cols:  cols,
		grid:  make([]int, rows*cols),
	}
	for i, rowLen := range shape.Parts() {
		for j := 0; j < rowLen; j++ {
			c.grid[i*cols+j] = t.At(j, i)
		}
	}

	return c
}

// Matrix returns a copy of the padded grid, row by row; 0 marks cells
// outside the diagram. Intended for external rendering.
// Complexity: O(rows×cols).
func (t *YoungTableau) Matrix() [][]int {
	m := make([][]int, t.rows)
	for i := 0; i < t.rows; i++ {
		m[i] = make([]int, t.cols)
		copy(m[i], t.grid[i*t.cols:(i+1)*t.cols])
	}

	return m
}

// Equal reports structural equality: same shape and same labels.
func (t *YoungTableau) Equal(u *YoungTableau) bool {
	if u == nil || !t.shape.Equal(u.shape) {
		return false
	}
	// Shapes equal implies identical grid dimensions.
	for i, v := range t.grid {
		if u.grid[i] != v {
			return false
		}
	}

	return true
}
