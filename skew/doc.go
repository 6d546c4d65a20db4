// Package skew implements skew diagrams: the cell-set difference λ/μ of
// two nested Young diagrams.
//
// What:
//
//   - SkewDiagram pairs an outer partition λ with an inner partition μ and
//     validates containment at construction; instances are immutable.
//   - Contains answers cell membership; Matrix exports the 0/1 occupancy
//     grid for external rendering.
//   - LegLength and IsRimHook support rim-hook (border-strip) analysis of
//     the kind used by the Murnaghan–Nakayama rule.
//
// Why:
//
//   - Skew shapes index skew representations and appear whenever one
//     diagram grows out of another (branching, Littlewood–Richardson).
//   - Rim hooks are the combinatorial currency of symmetric-group
//     character computations.
//
// Complexity:
//
//   - New:       O(rows) containment checks.
//   - Contains:  O(1); Matrix: O(rows×cols).
//   - IsRimHook: O(rows×cols) — a 2×2-block scan plus one flood fill over
//     the occupied cells.
//
// Errors:
//
//   - ErrNilPartition: nil outer or inner partition.
//   - ErrSkewSize:     inner sum exceeds outer sum.
//   - ErrSkewLength:   inner has more rows than outer.
//   - ErrSkewRow:      some inner row is wider than the outer row above it.
//
// The three containment failures are distinct sentinels for diagnostic
// clarity; all mean "μ is not contained in λ".
package skew
