// Package x448 implements the X448 Diffie-Hellman function (RFC 7748)
// on the Montgomery form birationally equivalent to the Goldilocks
// curve, via the standard constant-time differential ladder.
//
// Grounded on original_source/src/goldilocks.c's goldilocks_x448 and
// goldilocks_x448_derive_public_key, with the base-point scalar
// multiplication reusing the edwards448 package's fixed-base comb
// instead of re-deriving a second precomputed table.
package x448

import (
	"errors"

	"github.com/claucece/libgoldilocs-arch-32/internal/edwards448"
	"github.com/claucece/libgoldilocs-arch-32/internal/field"
	"github.com/claucece/libgoldilocs-arch-32/internal/scalar"
)

// PublicKeySize and PrivateKeySize are both 56 bytes for X448.
const (
	PublicKeySize  = field.Size
	PrivateKeySize = field.Size
	privateBits    = 448
	cofactor       = 4
	a24            = 39081 // -d(untwisted) = -(-39081)
)

// ErrLowOrderInput is returned when the ladder's output would be the
// all-zero point, indicating the peer's public key was a low-order
// point (spec §4.9's failure indication).
var ErrLowOrderInput = errors.New("x448: computation resulted in low-order point")

// BasePointBytes is the X448 base u-coordinate, u = 5.
var BasePointBytes = func() [PublicKeySize]byte {
	var b [PublicKeySize]byte
	b[0] = 5
	return b
}()

// clamp applies the X448 scalar conditioning: clear the low two bits
// (multiply by the cofactor) and force the top bit of the private key
// set.
func clamp(scalarBytes []byte) [PrivateKeySize]byte {
	var s [PrivateKeySize]byte
	copy(s[:], scalarBytes)
	s[0] &= ^byte(cofactor - 1)
	s[PrivateKeySize-1] |= 0x80
	return s
}

func bitAt(s [PrivateKeySize]byte, t int) int {
	return int((s[t/8] >> uint(t%8)) & 1)
}

// ladder computes the Montgomery differential add-and-double scalar
// multiplication of x1 by the clamped scalar s, entirely in constant
// time: no branch depends on a scalar bit or a field value (spec §4.9).
func ladder(x1 field.Element, s [PrivateKeySize]byte) field.Element {
	x2, z2 := field.One(), field.Zero()
	x3, z3 := x1, field.One()
	swap := 0

	for t := privateBits - 1; t >= 0; t-- {
		kt := bitAt(s, t)
		swap ^= kt
		field.CondSwap(&x2, &x3, swap)
		field.CondSwap(&z2, &z3, swap)
		swap = kt

		var a, aa, b, bb, e, c, d, da, cb field.Element
		a.Add(x2, z2)
		aa.Sqr(a)
		b.Sub(x2, z2)
		bb.Sqr(b)
		e.Sub(aa, bb)
		c.Add(x3, z3)
		d.Sub(x3, z3)
		da.Mul(d, a)
		cb.Mul(c, b)

		var sum, diff field.Element
		sum.Add(da, cb)
		x3.Sqr(sum)
		diff.Sub(da, cb)
		var diffSq field.Element
		diffSq.Sqr(diff)
		z3.Mul(x1, diffSq)

		x2.Mul(aa, bb)
		var aE field.Element
		aE.Mulw(e, a24)
		var aaPlus field.Element
		aaPlus.Add(aa, aE)
		z2.Mul(e, aaPlus)
	}
	field.CondSwap(&x2, &x3, swap)
	field.CondSwap(&z2, &z3, swap)

	var zInv, out field.Element
	zInv.Invert(z2)
	out.Mul(x2, zInv)
	return out
}

// X448 computes the X448 shared-secret function with the given
// private scalar and peer u-coordinate. It returns ErrLowOrderInput
// (rather than a zero secret) if the result is the all-zero point,
// matching RFC 7748's contract that callers must check for this.
func X448(scalarBytes, base []byte) ([]byte, error) {
	// RFC 7748's decodeUCoordinate never rejects an out-of-range
	// u-coordinate; it reduces mod p instead, so this deliberately
	// bypasses the canonicality-checking Deserialize used elsewhere.
	x1 := field.DeserializeReduced(base)

	s := clamp(scalarBytes)
	out := ladder(x1, s)

	outBytes := out.Bytes()
	result := make([]byte, PublicKeySize)
	copy(result, outBytes[:])
	if out.IsZero() {
		return result, ErrLowOrderInput
	}
	return result, nil
}

// DerivePublicKey computes the X448 public key for a private scalar
// by applying the fixed-base comb instead of the general Montgomery
// ladder: clamp and re-encode the scalar into the twisted-Edwards
// scalar ring (adjusting for the 4-isogeny's encoding ratio), run
// PrecomputedScalarMul, then serialize via the isogeny adapter (spec
// §4.9; grounded on goldilocks_x448_derive_public_key).
func DerivePublicKey(scalarBytes []byte) []byte {
	s := clamp(scalarBytes)

	sc := scalar.DecodeLong(s[:])
	// Compensate for the encoding ratio introduced by encoding through
	// the twisted curve's comb rather than the Montgomery ladder
	// directly: halve log2(encodeRatio) times.
	const encodeRatio = 2
	for r := 1; r < encodeRatio; r <<= 1 {
		sc.Halve(sc)
	}

	p := edwards448.PrecomputedScalarMul(sc)
	out := edwards448.EncodeLikeX448(p)
	result := make([]byte, PublicKeySize)
	copy(result, out[:])
	return result
}
