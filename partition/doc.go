// Package partition implements integer partitions and the two classical
// algorithms around them: counting via Euler's pentagonal-number recurrence
// and exhaustive generation via ascending compositions (Algorithm RuleAsc).
//
// What:
//
//   - Partition wraps a validated non-increasing sequence of positive ints;
//     supports conjugation (diagram transpose) and a guarded in-place update.
//   - Counter memoizes p(n), the number of partitions of n, switching from
//     int64 to math/big accumulation once intermediate sums would leave the
//     64-bit range.
//   - Generator enumerates every partition of n exactly once, lazily; each
//     Start() yields a fresh cursor reproducing the identical sequence.
//
// Why:
//
//   - Representation theory: partitions of n index the irreducible
//     representations of the symmetric group Sₙ.
//   - Enumeration: RuleAsc is among the fastest known partition generators,
//     using O(n) memory regardless of p(n).
//   - Validation: Counter provides an independent length bound for any
//     traversal of Generator.
//
// Complexity:
//
//   - Counter.Count:     amortized O(N^1.5) for the whole range 0..N, O(√n)
//     recurrence terms per uncached n. Memory: O(N) cache entries.
//   - Generator:         constant amortized time per emitted partition,
//     O(n) working memory.
//   - Partition.Conjugate: O(n) over the diagram cells.
//
// Enumeration order:
//
//	Partitions are emitted in the canonical RuleAsc order — ascending
//	lexicographic when each partition is read in reverse. For n=5:
//	[1,1,1,1,1], [2,1,1,1], [3,1,1], [2,2,1], [4,1], [3,2], [5].
//
// Errors:
//
//   - ErrInvalidPartition: sequence not non-increasing, a non-positive part,
//     or an in-place update breaking the neighbor bounds.
//   - ErrIndexOutOfRange: element access outside [0, Len()).
//
// Note: Count(0) is 1 (the empty partition counts) while a Generator for
// n < 1 yields an empty sequence. This mirrors the classical convention on
// the counting side and keeps the enumeration free of empty partitions; the
// discrepancy is deliberate and pinned by tests.
package partition
