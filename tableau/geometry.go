package tableau

import (
	"fmt"
	"math/big"
)

// RowLength returns the arm length plus one: the number of diagram cells in
// row i from column j to the end of the row (0-based coordinates), or 0
// when (i,j) lies outside the diagram.
// Complexity: O(1).
func (t *YoungTableau) RowLength(i, j int) int {
	if !t.inDiagram(i, j) {
		return 0
	}
	rowLen, _ := t.shape.At(i)

	return rowLen - j
}

// ColLength returns the leg length plus one: the number of diagram cells in
// column j from row i downward, or 0 when (i,j) lies outside the diagram.
// Complexity: O(rows).
func (t *YoungTableau) ColLength(i, j int) int {
	if !t.inDiagram(i, j) {
		return 0
	}
	count := 0
	for r := i; r < t.rows && t.inDiagram(r, j); r++ {
		count++
	}

	return count
}

// HookLength returns the hook length of cell (i,j): the cell itself plus
// the cells to its right and below it, or 0 outside the diagram.
func (t *YoungTableau) HookLength(i, j int) int {
	if !t.inDiagram(i, j) {
		return 0
	}

	return t.RowLength(i, j) + t.ColLength(i, j) - 1
}

// Dimension evaluates the hook-length formula
//
//	dim λ = n! / Π_{(i,j)∈λ} hook(i,j)
//
// the dimension of the irreducible representation of Sₙ indexed by the
// shape, equal to the number of standard Young tableaux of that shape.
// The division is carried out exactly in big integers; a nonzero remainder
// means a broken internal invariant and returns ErrDimension instead of a
// truncated value. The empty shape has dimension 1.
// Complexity: O(n·rows) hook scans plus big-integer arithmetic on n!.
func (t *YoungTableau) Dimension() (*big.Int, error) {
	num := factorial(t.N())
	den := big.NewInt(1)
	hook := new(big.Int)
	for i, rowLen := range t.shape.Parts() {
		for j := 0; j < rowLen; j++ {
			h := t.HookLength(i, j)
			if h < 1 {
				return nil, fmt.Errorf("%w: hook(%d,%d) = %d", ErrDimension, i, j, h)
			}
			den.Mul(den, hook.SetInt64(int64(h)))
		}
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s %% %s != 0", ErrDimension, num, den)
	}

	return q, nil
}

// factorial returns n! as a big.Int; 1 for n ≤ 1.
func factorial(n int) *big.Int {
	f := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}

	return f
}
