package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func smallScalar(t *rapid.T, label string) Scalar {
	var buf [Size]byte
	v := rapid.Uint64().Draw(t, label)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, ok := Decode(buf[:])
	if !ok {
		t.Fatalf("%s: undecodable small scalar", label)
	}
	return s
}

func TestAddCommutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := smallScalar(rt, "a")
		b := smallScalar(rt, "b")
		var ab, ba Scalar
		ab.Add(a, b)
		ba.Add(b, a)
		require.True(rt, Equal(ab, ba))
	})
}

func TestHalveDoubleRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := smallScalar(rt, "a")
		var half, doubled Scalar
		half.Halve(a)
		doubled.Add(half, half)
		require.True(rt, Equal(doubled, a))
	})
}

func TestDecodeRejectsUnreducedValue(t *testing.T) {
	be := Order().FillBytes(make([]byte, Size))
	le := make([]byte, Size)
	for i, b := range be {
		le[Size-1-i] = b
	}
	_, ok := Decode(le)
	require.False(t, ok)
}

func TestDecodeLongReducesOverlongInput(t *testing.T) {
	long := make([]byte, Size*2)
	long[0] = 1
	s := DecodeLong(long)
	require.True(t, Equal(s, One()))
}

func TestBitAccessor(t *testing.T) {
	s := One()
	require.Equal(t, 1, s.Bit(0))
	require.Equal(t, 0, s.Bit(1))
	require.Equal(t, 0, s.Bit(Size*8-1))
}
