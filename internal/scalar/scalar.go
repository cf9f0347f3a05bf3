// Package scalar implements the ring of integers modulo ℓ, the prime
// order of the Goldilocks curve's prime-order subgroup.
//
// Like package field, this is one of the specification's "assumed"
// primitives (§1): Scalar is treated as an opaque constant-size value
// above this package. See DESIGN.md for why this is implemented against
// math/big rather than hand-rolled limb arithmetic.
package scalar

import (
	"crypto/subtle"
	"math/big"
)

// Size is the number of bytes in the canonical little-endian encoding
// of a scalar.
const Size = 56

// Bits is the bit length of ℓ.
const Bits = 446

// Scalar is an integer modulo ℓ. The zero value is the additive identity.
type Scalar struct {
	b [Size]byte
}

var order *big.Int

// Adjustment is the comb/windowed scalar-recoding constant A_pre = A_var
// from spec §6, which converts a scalar into a centered signed-digit
// representation. No multiplier in this module reads it: the comb and
// windowed engines in edwards448 recode the unadjusted scalar.
var Adjustment Scalar

func init() {
	order = new(big.Int).Lsh(big.NewInt(1), 446)
	sub, ok := new(big.Int).SetString("13818066809895115352007386748515426880336692474882178609894547503885", 10)
	if !ok {
		panic("scalar: bad order literal")
	}
	order.Sub(order, sub)

	limbs := []uint64{0xc873d6d54a7bb0cf, 0xe933d8d723a70aad, 0xbb124b65129c96fd, 0x00000008335dc163}
	adj := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		adj.Lsh(adj, 64)
		adj.Or(adj, new(big.Int).SetUint64(limbs[i]))
	}
	Adjustment = fromBig(adj)
}

// Order returns a fresh big.Int copy of ℓ.
func Order() *big.Int { return new(big.Int).Set(order) }

// Zero returns the additive identity.
func Zero() Scalar { return Scalar{} }

// One returns the multiplicative identity.
func One() Scalar {
	var s Scalar
	s.b[0] = 1
	return s
}

func (s Scalar) toBig() *big.Int {
	be := make([]byte, Size)
	for i := 0; i < Size; i++ {
		be[i] = s.b[Size-1-i]
	}
	return new(big.Int).SetBytes(be)
}

func fromBig(x *big.Int) Scalar {
	v := new(big.Int).Mod(x, order)
	be := v.FillBytes(make([]byte, Size))
	var s Scalar
	for i := 0; i < Size; i++ {
		s.b[i] = be[Size-1-i]
	}
	return s
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b Scalar) *Scalar {
	*s = fromBig(new(big.Int).Add(a.toBig(), b.toBig()))
	return s
}

// Sub sets s = a - b and returns s.
func (s *Scalar) Sub(a, b Scalar) *Scalar {
	*s = fromBig(new(big.Int).Sub(a.toBig(), b.toBig()))
	return s
}

// Mul sets s = a * b and returns s. No other package of this module,
// and none of its tests, calls it.
func (s *Scalar) Mul(a, b Scalar) *Scalar {
	*s = fromBig(new(big.Int).Mul(a.toBig(), b.toBig()))
	return s
}

// Halve sets s = a/2 mod ℓ and returns s.
func (s *Scalar) Halve(a Scalar) *Scalar {
	v := a.toBig()
	if v.Bit(0) == 1 {
		v = new(big.Int).Add(v, order)
	}
	v.Rsh(v, 1)
	*s = fromBig(v)
	return s
}

// Equal reports whether a == b, in constant time.
func Equal(a, b Scalar) bool {
	return subtle.ConstantTimeCompare(a.b[:], b.b[:]) == 1
}

// Bytes returns the canonical little-endian encoding of s.
func (s Scalar) Bytes() [Size]byte { return s.b }

// Bit returns bit i (0 = least significant) of the canonical encoding.
func (s Scalar) Bit(i int) int {
	if i < 0 || i >= Size*8 {
		return 0
	}
	return int((s.b[i/8] >> (i % 8)) & 1)
}

// Encode writes the canonical little-endian encoding of s into out,
// which must be Size bytes.
func (s Scalar) Encode(out []byte) {
	copy(out, s.b[:])
}

// Decode decodes a canonical, reduced little-endian scalar. It reports
// false if ser does not encode a value strictly less than ℓ.
func Decode(ser []byte) (Scalar, bool) {
	if len(ser) != Size {
		return Scalar{}, false
	}
	be := make([]byte, Size)
	for i := 0; i < Size; i++ {
		be[i] = ser[Size-1-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(order) >= 0 {
		return Scalar{}, false
	}
	var out [Size]byte
	copy(out[:], ser)
	return Scalar{b: out}, true
}

// DecodeLong reduces an arbitrary-length little-endian byte string mod ℓ,
// matching scalar_decode_long's use in X448 key derivation, where the
// conditioned 56-byte scalar is reduced without requiring canonicality.
func DecodeLong(ser []byte) Scalar {
	be := make([]byte, len(ser))
	for i, b := range ser {
		be[len(ser)-1-i] = b
	}
	v := new(big.Int).SetBytes(be)
	return fromBig(v)
}
