package edwards448

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// evalDigits reconstructs the integer sum(digit[i] * 2^i) a recoding
// claims to represent, for comparison against the original value.
func evalDigits(digits []int) *big.Int {
	sum := new(big.Int)
	pow := new(big.Int).SetInt64(1)
	two := new(big.Int).SetInt64(2)
	for _, d := range digits {
		if d != 0 {
			term := new(big.Int).Mul(big.NewInt(int64(d)), pow)
			sum.Add(sum, term)
		}
		pow.Mul(pow, two)
	}
	return sum
}

func TestRecodeWNAFRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 17, 255, 1 << 20, 0xdeadbeef} {
		s := scalarFromUint64(v)
		digits := recodeWNAF(s, 5)
		got := evalDigits(digits)
		require.Equal(t, new(big.Int).SetUint64(v), got, "value %d", v)
	}
}

func TestRecodeWNAFDigitsAreOddOrZero(t *testing.T) {
	s := scalarFromUint64(0xabcdef1234)
	digits := recodeWNAF(s, 5)
	for _, d := range digits {
		if d != 0 && d%2 == 0 {
			t.Fatalf("non-adjacent-form digit %d is even", d)
		}
	}
}

func TestRecodeWNAFDigitsWithinWindowBound(t *testing.T) {
	const w = 5
	bound := 1 << (w - 1)
	s := scalarFromUint64(0xfeedface)
	digits := recodeWNAF(s, w)
	for _, d := range digits {
		require.True(t, d > -bound && d < bound, "digit %d out of window bound", d)
	}
}

func TestWNAFTableOddMultiples(t *testing.T) {
	b := BasePoint()
	table := wnafTable(b, 3)
	require.Len(t, table, 4)

	// table[i] should equal (2i+1)*b.
	for i, p := range table {
		var want Point
		want = Identity()
		for j := 0; j < 2*i+1; j++ {
			var next Point
			next.Add(want, b)
			want = next
		}
		require.True(t, Eq(p, want), "table[%d]", i)
	}
}
