// Package young is your in-memory toolbox for the combinatorics of the
// symmetric group — integer partitions, Young tableaux and skew diagrams.
//
// 🚀 What is young?
//
//	A compact, zero-dependency library that brings together:
//		• Partitions: validated non-increasing sequences, conjugation (transpose)
//		• Counting: p(n) via Euler's pentagonal recurrence, memoized,
//		  with a transparent switch to arbitrary precision for large n
//		• Generation: every partition of n, exactly once, lazily and restartably
//		• Tableaux: Young diagrams filled with labels, conjugation, hook lengths
//		• Dimensions: the hook-length formula for irreducible representations
//		• Skew shapes: λ/μ diagrams, cell membership, rim-hook detection
//
// ✨ Why choose young?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact arithmetic – math/big past the 64-bit range, no silent overflow
//   - Pure Go – no cgo, no hidden deps
//   - Typed failures – every invalid input maps to a distinguishable sentinel
//
// Under the hood, everything is organized under three subpackages:
//
//	partition/ — Partition type, pentagonal-recurrence Counter, RuleAsc Generator
//	tableau/   — YoungTableau grids, conjugation, hook-length geometry, Dimension
//	skew/      — SkewDiagram pairs, 0/1 matrix export, leg length, rim hooks
//
// Quick ASCII example:
//
//	    ■ ■ ■
//	    ■ ■
//	    ■
//
//	is the Young diagram of the partition (3,2,1) of 6.
//
// Dive into the per-package docs for the algorithms, complexity notes and
// the exact enumeration order of the generator.
//
//	go get github.com/katalvlaran/young
package young
