// Package tableau implements Young tableaux: the Young diagram of a
// partition with a label placed in each box, plus the hook-length geometry
// used by the dimension formula for irreducible representations of the
// symmetric group.
//
// What:
//
//   - YoungTableau wraps a shape (a partition.Partition) and a row-major
//     fill; cells outside the diagram hold the sentinel 0.
//   - Conjugate reflects a tableau across its main diagonal, transposing
//     both shape and labels.
//   - RowLength, ColLength and HookLength measure arms, legs and hooks of
//     individual cells; Dimension evaluates n!/Πhook exactly.
//
// Why:
//
//   - dim λ, the dimension of the irreducible Sₙ-representation indexed by
//     the shape λ, is the number of standard tableaux of that shape and
//     falls out of the hook-length formula.
//   - The classical identity Σ (dim λ)² = n! over all shapes of n makes the
//     formula self-checking.
//
// Complexity:
//
//   - New:        O(rows×cols) time and memory for the padded grid.
//   - Conjugate:  O(rows×cols).
//   - HookLength: O(rows+cols) per cell; Dimension: O(n·(rows+cols)) plus
//     big-integer arithmetic on n!.
//
// Options:
//
//   - WithFill: supply a custom labeling instead of the default 1..n.
//
// Errors:
//
//   - ErrNilShape:     nil shape passed to New.
//   - ErrSizeMismatch: fill length differs from the partition sum.
//   - ErrDimension:    the hook product fails to divide n! — an internal
//     invariant violation surfaced loudly rather than truncated.
package tableau
