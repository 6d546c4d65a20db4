package partition

// Generator enumerates every partition of n exactly once, without ever
// materializing the full list. It captures n only; all traversal state
// lives in the Cursor returned by Start, so a Generator is trivially
// restartable: every Start reproduces the identical sequence.
//
// The algorithm is RuleAsc (ascending-composition generation): a working
// buffer a[1..n] holds the current partition as an ascending composition
// a[1..k]; emitted partitions are the reversed prefixes, hence
// non-increasing. Emission order is ascending lexicographic-by-reverse:
// [1,1,...,1] first, [n] last, with part counts non-increasing along the
// sequence. The number of emissions equals Counter.Count(n) for n ≥ 1.
type Generator struct {
	n int
}

// NewGenerator returns a Generator for the partitions of n.
// For n < 1 the enumeration is empty; note the documented discrepancy with
// Counter.Count(0) == 1.
func NewGenerator(n int) Generator { return Generator{n: n} }

// N returns the integer whose partitions are enumerated.
func (g Generator) N() int { return g.n }

// Cursor is the mutable state of one traversal. It is not safe for
// concurrent use; obtain one per goroutine via Generator.Start.
type Cursor struct {
	n    int
	buf  []int // ascending parts; the live composition is buf[0:k]
	k    int   // count of filled slots, 1-based cursor of the algorithm
	done bool
}

// Start begins a fresh traversal.
// Complexity: O(n) memory for the working buffer.
func (g Generator) Start() *Cursor {
	c := &Cursor{n: g.n}
	switch {
	case g.n < 1:
		c.done = true
	case g.n == 1:
		// single partition [1], emitted directly by Next
	default:
		c.buf = make([]int, g.n)
		c.buf[1] = g.n
		c.k = 2
	}

	return c
}

// Next advances the cursor and returns the next partition, or (nil, false)
// once the sequence is exhausted. Emitted partitions are freshly allocated
// and pre-validated by construction.
// Complexity: amortized O(1) per step plus O(k) for the emitted copy.
func (c *Cursor) Next() (*Partition, bool) {
	if c.done {
		return nil, false
	}
	if c.n == 1 {
		c.done = true

		return trusted([]int{1}), true
	}

	// RuleAsc advance: break the last part into y, grow the previous part
	// to x, then greedily refill with x-sized parts and close with x+y.
	y := c.buf[c.k-1] - 1
	c.k--
	x := c.buf[c.k-1] + 1
	for x <= y {
		c.buf[c.k-1] = x
		y -= x
		c.k++
	}
	c.buf[c.k-1] = x + y

	// Emit the reversed prefix; the last state is the singleton [n].
	out := make([]int, c.k)
	for i := 0; i < c.k; i++ {
		out[i] = c.buf[c.k-1-i]
	}
	if c.k == 1 {
		c.done = true
	}

	return trusted(out), true
}

// Collect materializes the whole sequence. Intended for small n, tests and
// examples; prefer Start/Next for streaming.
// Complexity: O(p(n)·n) time and memory.
func (g Generator) Collect() []*Partition {
	var out []*Partition
	cur := g.Start()
	for p, ok := cur.Next(); ok; p, ok = cur.Next() {
		out = append(out, p)
	}

	return out
}
