package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/claucece/libgoldilocs-arch-32/internal/scalar"
)

func TestIdentityIsValid(t *testing.T) {
	id := Identity()
	require.True(t, id.Valid())
}

func TestBasePointIsValid(t *testing.T) {
	require.True(t, BasePoint().Valid())
}

func TestDoubleAddConsistency(t *testing.T) {
	b := BasePoint()
	var doubled, added Point
	doubled.Double(b)
	added.Add(b, b)
	require.True(t, Eq(doubled, added))
	require.True(t, doubled.Valid())
}

func TestAddIdentity(t *testing.T) {
	b := BasePoint()
	id := Identity()
	var sum Point
	sum.Add(b, id)
	require.True(t, Eq(sum, b))
}

func TestSubSelfIsIdentity(t *testing.T) {
	b := BasePoint()
	var diff Point
	diff.Sub(b, b)
	require.True(t, Eq(diff, Identity()))
}

func TestNegateRoundTrip(t *testing.T) {
	b := BasePoint()
	var neg, back Point
	neg.Negate(b)
	back.Negate(neg)
	require.True(t, Eq(back, b))
}

func TestScalarMulByOneReturnsBase(t *testing.T) {
	b := BasePoint()
	got := ScalarMul(b, scalar.One())
	require.True(t, Eq(got, b))
}

func TestScalarMulByTwoMatchesDouble(t *testing.T) {
	b := BasePoint()
	var two scalar.Scalar
	two.Add(scalar.One(), scalar.One())
	got := ScalarMul(b, two)

	var doubled Point
	doubled.Double(b)
	require.True(t, Eq(got, doubled))
}

func TestScalarMulHandlesZeroWindowDigit(t *testing.T) {
	// 32 = 0b100000 has a zero low 5-bit window under the windowBits=5
	// recoding, regressing a bug where a zero digit was mistaken for
	// table index 0 and an extra base-point term was added.
	b := BasePoint()
	k := scalarFromUint64(32)
	got := ScalarMul(b, k)

	want := Identity()
	for i := 0; i < 32; i++ {
		var next Point
		next.Add(want, b)
		want = next
	}
	require.True(t, Eq(got, want))
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ka := uint64(rapid.Uint32().Draw(rt, "ka"))
		kb := uint64(rapid.Uint32().Draw(rt, "kb"))

		sa := scalarFromUint64(ka)
		sb := scalarFromUint64(kb)
		var sum scalar.Scalar
		sum.Add(sa, sb)

		b := BasePoint()
		lhs := ScalarMul(b, sum)

		pa := ScalarMul(b, sa)
		pb := ScalarMul(b, sb)
		var rhs Point
		rhs.Add(pa, pb)

		require.True(rt, Eq(lhs, rhs))
	})
}

func scalarFromUint64(v uint64) scalar.Scalar {
	var buf [scalar.Size]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, ok := scalar.Decode(buf[:])
	if !ok {
		panic("scalarFromUint64: undecoded small scalar")
	}
	return s
}

func TestPrecomputedScalarMulMatchesVariableBase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k")))
		fromComb := PrecomputedScalarMul(k)
		fromLadder := ScalarMul(BasePoint(), k)
		require.True(rt, Eq(fromComb, fromLadder))
	})
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	b := BasePoint()
	data, err := b.MarshalBinary()
	require.NoError(t, err)

	var got Point
	require.NoError(t, got.UnmarshalBinary(data))
	require.True(t, Eq(got, b))
}

func TestUnmarshalBinaryRejectsIdentity(t *testing.T) {
	data, err := Identity().MarshalBinary()
	require.NoError(t, err)

	var zero Point
	require.Error(t, zero.UnmarshalBinary(data))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := BasePoint()
	enc := Encode(b)
	got, ok := Decode(enc[:], false)
	require.True(t, ok)
	require.True(t, Eq(got, b))
}

func TestBaseDoubleScalarMulNonSecretMatchesSum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k1 := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k1")))
		k2 := scalarFromUint64(uint64(rapid.Uint32().Draw(rt, "k2")))

		b := BasePoint()
		var other Point
		other.Double(b)

		got := BaseDoubleScalarMulNonSecret(b, k1, other, k2)

		p1 := ScalarMul(b, k1)
		p2 := ScalarMul(other, k2)
		var want Point
		want.Add(p1, p2)

		require.True(rt, Eq(got, want))
	})
}
