package tableau_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/young/partition"
	"github.com/katalvlaran/young/tableau"
)

func mustPartition(t *testing.T, parts []int) *partition.Partition {
	t.Helper()
	p, err := partition.New(parts)
	if err != nil {
		t.Fatalf("New(%v) error: %v", parts, err)
	}

	return p
}

// TestNew_DefaultFill checks the 1..n row-major fill and the 0-padding of
// cells outside the diagram.
func TestNew_DefaultFill(t *testing.T) {
	y, err := tableau.New(mustPartition(t, []int{3, 2, 1}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := [][]int{
		{1, 2, 3},
		{4, 5, 0},
		{6, 0, 0},
	}
	for i, row := range want {
		for j, label := range row {
			if got := y.At(i, j); got != label {
				t.Errorf("At(%d,%d) = %d; want %d", i, j, got, label)
			}
		}
	}
	if rows, cols := y.Size(); rows != 3 || cols != 3 {
		t.Errorf("Size() = %d×%d; want 3×3", rows, cols)
	}
	if y.N() != 6 {
		t.Errorf("N() = %d; want 6", y.N())
	}
}

// TestAt_OutOfGrid ensures access beyond the grid returns the sentinel.
func TestAt_OutOfGrid(t *testing.T) {
	y, err := tableau.New(mustPartition(t, []int{2, 1}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		if got := y.At(c[0], c[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d; want 0", c[0], c[1], got)
		}
	}
}

// TestNew_WithFill covers custom labelings and the size-mismatch error.
func TestNew_WithFill(t *testing.T) {
	p := mustPartition(t, []int{2, 2})
	y, err := tableau.New(p, tableau.WithFill([]int{4, 3, 2, 1}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if y.At(0, 0) != 4 || y.At(1, 1) != 1 {
		t.Errorf("custom fill misplaced: got corners %d, %d", y.At(0, 0), y.At(1, 1))
	}

	if _, err = tableau.New(p, tableau.WithFill([]int{1, 2, 3})); !errors.Is(err, tableau.ErrSizeMismatch) {
		t.Errorf("short fill error = %v; want ErrSizeMismatch", err)
	}
	if _, err = tableau.New(nil); !errors.Is(err, tableau.ErrNilShape) {
		t.Errorf("nil shape error = %v; want ErrNilShape", err)
	}
}

// TestNew_EmptyShape: the empty partition yields a 0×0 tableau.
func TestNew_EmptyShape(t *testing.T) {
	y, err := tableau.New(mustPartition(t, nil))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if rows, cols := y.Size(); rows != 0 || cols != 0 {
		t.Errorf("Size() = %d×%d; want 0×0", rows, cols)
	}
	if y.At(0, 0) != 0 {
		t.Error("At(0,0) on empty tableau should be 0")
	}
}

// TestConjugate transposes shape and labels, and is an involution.
func TestConjugate(t *testing.T) {
	y, err := tableau.New(mustPartition(t, []int{3, 2}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	c := y.Conjugate()

	if got := c.Shape().Parts(); got[0] != 2 || got[1] != 2 || got[2] != 1 {
		t.Errorf("conjugate shape = %v; want [2 2 1]", got)
	}
	want := [][]int{
		{1, 4},
		{2, 5},
		{3, 0},
	}
	for i, row := range want {
		for j, label := range row {
			if got := c.At(i, j); got != label {
				t.Errorf("conj At(%d,%d) = %d; want %d", i, j, got, label)
			}
		}
	}
	if !c.Conjugate().Equal(y) {
		t.Error("Conjugate is not an involution")
	}
}

// TestMatrix returns an independent copy of the padded grid.
func TestMatrix(t *testing.T) {
	y, err := tableau.New(mustPartition(t, []int{2, 1}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	m := y.Matrix()
	if m[0][0] != 1 || m[0][1] != 2 || m[1][0] != 3 || m[1][1] != 0 {
		t.Errorf("Matrix() = %v; want [[1 2] [3 0]]", m)
	}
	m[0][0] = 99
	if y.At(0, 0) != 1 {
		t.Error("mutating Matrix() output affected the tableau")
	}
}

// TestEqual covers structural equality over shape and labels.
func TestEqual(t *testing.T) {
	p := mustPartition(t, []int{2, 1})
	a, _ := tableau.New(p)
	b, _ := tableau.New(mustPartition(t, []int{2, 1}))
	c, _ := tableau.New(p, tableau.WithFill([]int{3, 2, 1}))
	d, _ := tableau.New(mustPartition(t, []int{3}))
	if !a.Equal(b) {
		t.Error("identical tableaux reported unequal")
	}
	if a.Equal(c) || a.Equal(d) || a.Equal(nil) {
		t.Error("distinct tableaux reported equal")
	}
}
