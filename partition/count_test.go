package partition_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/young/partition"
)

// TestCount_KnownValues pins p(n) for classical reference points in the
// machine-width régime.
func TestCount_KnownValues(t *testing.T) {
	c := partition.NewCounter()
	cases := []struct {
		n    int
		want int64
	}{
		{-7, 0},
		{-1, 0},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 5},
		{5, 7},
		{10, 42},
		{20, 627},
		{50, 204226},
		{100, 190569292},
		{200, 3972999029388},
		{394, 4640713124699623515},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, c.Count(tc.n).Int64(), "p(%d)", tc.n)
	}
}

// TestCount_LargeRegime crosses the arbitrary-precision switchover and pins
// values straddling the threshold.
func TestCount_LargeRegime(t *testing.T) {
	c := partition.NewCounter()
	cases := []struct {
		n    int
		want string
	}{
		{395, "4937873096788191655"},
		{400, "6727090051741041926"},
		{500, "2300165032574323995027"},
		{1000, "24061467864032622473692149727991"},
	}
	for _, tc := range cases {
		want, ok := new(big.Int).SetString(tc.want, 10)
		require.True(t, ok)
		require.Equalf(t, 0, c.Count(tc.n).Cmp(want), "p(%d)", tc.n)
	}
}

// TestCount_CacheIsolation ensures mutating a returned value cannot corrupt
// the memo tables.
func TestCount_CacheIsolation(t *testing.T) {
	c := partition.NewCounter()
	c.Count(10).SetInt64(-1)
	require.Equal(t, int64(42), c.Count(10).Int64())

	c.Count(400).SetInt64(-1)
	require.Equal(t, "6727090051741041926", c.Count(400).String())
}

// TestCount_Deterministic checks that independent counters agree, i.e. the
// caches hold no traversal-order artifacts.
func TestCount_Deterministic(t *testing.T) {
	a := partition.NewCounter()
	b := partition.NewCounter()
	// a warms bottom-up, b jumps straight to the top value.
	for n := 0; n <= 120; n += 10 {
		a.Count(n)
	}
	require.Equal(t, 0, a.Count(120).Cmp(b.Count(120)))
}
