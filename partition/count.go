package partition

import (
	"math/big"
	"sync"
)

// bigThreshold is the smallest n whose pentagonal-recurrence accumulation
// can leave the int64 range mid-sum; from there on the Counter computes and
// caches in arbitrary precision.
const bigThreshold = 395

// Counter memoizes p(n), the number of partitions of n, via Euler's
// pentagonal-number recurrence:
//
//	p(n) = Σ_{j≥1} (-1)^(j-1) · ( p(n − j(3j−1)/2) + p(n − j(3j+1)/2) )
//
// where terms with a negative argument contribute 0 and the sum stops at
// J = ⌊(1 + √(1+24n))/6⌋, the largest j with a non-negative first argument.
//
// Two independent memo tables back the recurrence: int64 values for
// n < bigThreshold and big.Int values for n ≥ bigThreshold. The key ranges
// are disjoint, entries are append-only and never invalidated. A single
// mutex guards both tables, so one Counter may be shared across goroutines.
type Counter struct {
	mu    sync.Mutex
	small map[int]int64
	large map[int]*big.Int
}

// NewCounter returns a Counter seeded with the base cases
// p(0)=1, p(1)=1, p(2)=2.
func NewCounter() *Counter {
	return &Counter{
		small: map[int]int64{0: 1, 1: 1, 2: 2},
		large: make(map[int]*big.Int),
	}
}

// Count returns p(n): 1 for n=0, 0 for negative n. The result is a fresh
// big.Int owned by the caller; the internal cache is never aliased out.
// Complexity: O(√n) recurrence terms per uncached value, amortized O(N^1.5)
// over the range 0..N.
func (c *Counter) Count(n int) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return new(big.Int).Set(c.count(n))
}

// count dispatches on the magnitude of n. Small arguments always resolve in
// the int64 régime, even when reached from a big-régime recursion, so the
// switchover is one-directional and the tables stay disjoint.
// The returned value may alias the cache; callers must not mutate it.
func (c *Counter) count(n int) *big.Int {
	switch {
	case n < 0:
		return new(big.Int)
	case n < bigThreshold:
		return new(big.Int).SetInt64(c.countSmall(n))
	default:
		return c.countLarge(n)
	}
}

// countSmall computes and memoizes p(n) in machine-width arithmetic.
// Safe for n < bigThreshold: every intermediate sum fits in int64.
func (c *Counter) countSmall(n int) int64 {
	if n < 0 {
		return 0
	}
	if v, ok := c.small[n]; ok {
		return v
	}
	var s int64
	sign := int64(1)
	for j := 1; ; j++ {
		g1 := n - j*(3*j-1)/2
		if g1 < 0 {
			break
		}
		g2 := n - j*(3*j+1)/2
		s += sign * (c.countSmall(g1) + c.countSmall(g2))
		sign = -sign
	}
	c.small[n] = s

	return s
}

// countLarge computes and memoizes p(n) in arbitrary precision for
// n ≥ bigThreshold. Recursive arguments below the threshold fall back to
// the int64 régime through count.
func (c *Counter) countLarge(n int) *big.Int {
	if v, ok := c.large[n]; ok {
		return v
	}
	s := new(big.Int)
	term := new(big.Int)
	for j := 1; ; j++ {
		g1 := n - j*(3*j-1)/2
		if g1 < 0 {
			break
		}
		term.Add(c.count(g1), c.count(n-j*(3*j+1)/2))
		if j%2 == 1 {
			s.Add(s, term)
		} else {
			s.Sub(s, term)
		}
	}
	c.large[n] = s

	return s
}
