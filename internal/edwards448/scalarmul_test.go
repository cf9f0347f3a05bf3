package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/claucece/libgoldilocs-arch-32/internal/scalar"
)

func TestDualScalarMulMatchesScalarMul(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k1 := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k1")))
		k2 := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k2")))

		b := BasePoint()
		a1, a2 := DualScalarMul(b, k1, k2)

		require.True(rt, Eq(a1, ScalarMul(b, k1)))
		require.True(rt, Eq(a2, ScalarMul(b, k2)))
	})
}

func TestDoubleScalarMulMatchesSum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k")))
		c := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "c")))

		b := BasePoint()
		var other Point
		other.Double(b)

		got := DoubleScalarMul(b, k, other, c)

		var want Point
		want.Add(ScalarMul(b, k), ScalarMul(other, c))

		require.True(rt, Eq(got, want))
	})
}

func TestDualScalarMulByZero(t *testing.T) {
	b := BasePoint()
	a1, a2 := DualScalarMul(b, scalar.Zero(), scalar.Zero())
	require.True(t, Eq(a1, Identity()))
	require.True(t, Eq(a2, Identity()))
}
