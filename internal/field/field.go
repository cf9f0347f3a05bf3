// Package field implements the prime field GF(p), p = 2^448 - 2^224 - 1,
// underlying the Goldilocks curve.
//
// The field is one of the two "assumed" primitives of the specification
// this module implements (the other is package scalar): callers above
// this package treat Element as an opaque constant-size value with a
// constant-time contract on Add/Sub/Mul/Sqr/Invert/ISqrt/CondNeg/CondSwap/
// Equal/LowBit. Internally this implementation reduces through math/big
// for arithmetic correctness and reserves crypto/subtle for the
// boundary operations that the layers above (edwards448, x448) depend on
// for their own constant-time discipline. See DESIGN.md.
package field

import (
	"crypto/subtle"
	"math/big"
)

// Size is the number of bytes in the canonical little-endian encoding
// of a field element.
const Size = 56

// Element is an element of GF(p). The zero value is the additive
// identity. Elements are always held in strongly-reduced canonical form;
// WeakReduce and StrongReduce are no-ops preserved for interface parity
// with the headroom-tracking field implementations that the
// specification assumes (§3).
type Element struct {
	b [Size]byte
}

var (
	modulus  *big.Int
	twistedD *big.Int
	factor   *big.Int
)

func init() {
	modulus = new(big.Int).Lsh(big.NewInt(1), 448)
	t := new(big.Int).Lsh(big.NewInt(1), 224)
	modulus.Sub(modulus, t)
	modulus.Sub(modulus, big.NewInt(1))

	// d (untwisted) = -39081; d (internal, twisted) = d - 1 = -39082.
	twistedD = new(big.Int).Mod(big.NewInt(-39082), modulus)

	limbs := []uint64{
		0x42ef0f45572736, 0x7bf6aa20ce5296, 0xf4fd6eded26033, 0x968c14ba839a66,
		0xb8d54b64a2d780, 0x6aa0a1f1a7b8a5, 0x683bf68d722fa2, 0x22d962fbeb24f7,
	}
	factor = new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		factor.Lsh(factor, 56)
		factor.Or(factor, new(big.Int).SetUint64(limbs[i]))
	}
	factor.Mod(factor, modulus)
}

// Modulus returns a fresh big.Int copy of p.
func Modulus() *big.Int { return new(big.Int).Set(modulus) }

// TwistedD returns the twisted curve constant d = -39082 mod p.
func TwistedD() Element { return fromBig(twistedD) }

// Factor returns the curve constant FACTOR = sqrt(d-1)/sqrt(-d) (§6).
func Factor() Element { return fromBig(factor) }

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.b[0] = 1
	return e
}

func (e Element) toBig() *big.Int {
	be := make([]byte, Size)
	for i := 0; i < Size; i++ {
		be[i] = e.b[Size-1-i]
	}
	return new(big.Int).SetBytes(be)
}

func fromBig(x *big.Int) Element {
	v := new(big.Int).Mod(x, modulus)
	be := v.FillBytes(make([]byte, Size))
	var e Element
	for i := 0; i < Size; i++ {
		e.b[i] = be[Size-1-i]
	}
	return e
}

// Add sets e = a + b and returns e.
func (e *Element) Add(a, b Element) *Element {
	*e = fromBig(new(big.Int).Add(a.toBig(), b.toBig()))
	return e
}

// Sub sets e = a - b and returns e.
func (e *Element) Sub(a, b Element) *Element {
	*e = fromBig(new(big.Int).Sub(a.toBig(), b.toBig()))
	return e
}

// Mul sets e = a * b and returns e.
func (e *Element) Mul(a, b Element) *Element {
	*e = fromBig(new(big.Int).Mul(a.toBig(), b.toBig()))
	return e
}

// Sqr sets e = a * a and returns e.
func (e *Element) Sqr(a Element) *Element {
	return e.Mul(a, a)
}

// Mulw sets e = a * w for a small signed word w (used for the curve's
// d-multiplications, which are always by small constants).
func (e *Element) Mulw(a Element, w int64) *Element {
	*e = fromBig(new(big.Int).Mul(a.toBig(), big.NewInt(w)))
	return e
}

// Neg sets e = -a and returns e.
func (e *Element) Neg(a Element) *Element {
	*e = fromBig(new(big.Int).Neg(a.toBig()))
	return e
}

// CondNeg negates e in place iff neg is 1 (neg must be 0 or 1).
func (e *Element) CondNeg(neg int) *Element {
	mask := -uint64(neg & 1)
	negated := new(Element).Neg(*e)
	for i := range e.b {
		e.b[i] = byte((uint64(e.b[i]) &^ mask) | (uint64(negated.b[i]) & mask))
	}
	return e
}

// CondSwap conditionally swaps a and b in place iff swap is 1.
func CondSwap(a, b *Element, swap int) {
	mask := byte(-(swap & 1))
	for i := range a.b {
		t := (a.b[i] ^ b.b[i]) & mask
		a.b[i] ^= t
		b.b[i] ^= t
	}
}

// CondSel sets e = a if pickB == 0, or e = b if pickB == 1.
func (e *Element) CondSel(a, b Element, pickB int) *Element {
	mask := byte(-(pickB & 1))
	for i := range e.b {
		e.b[i] = a.b[i] ^ ((a.b[i] ^ b.b[i]) & mask)
	}
	return e
}

// WeakReduce is a no-op: this implementation keeps elements always
// strongly reduced, unlike the headroom-tracking representation the
// specification assumes.
func (e *Element) WeakReduce() *Element { return e }

// StrongReduce is a no-op for the same reason as WeakReduce.
func (e *Element) StrongReduce() *Element { return e }

// LowBit returns the low bit of the canonical encoding of e, as 0 or 1.
func (e Element) LowBit() int { return int(e.b[0] & 1) }

// Equal reports whether a == b, in constant time.
func Equal(a, b Element) bool {
	return subtle.ConstantTimeCompare(a.b[:], b.b[:]) == 1
}

// IsZero reports whether e == 0, in constant time.
func (e Element) IsZero() bool {
	var zero [Size]byte
	return subtle.ConstantTimeCompare(e.b[:], zero[:]) == 1
}

// Copy returns a copy of e; present for parity with the C API's explicit
// gf_copy, used where a receiver must not alias its arguments.
func Copy(a Element) Element { return a }

// ISqrt sets e to ±1/sqrt(a) and reports whether a is a nonzero square
// (a == 0 is treated as success, with e set to 0, matching the
// isr contract relied on by point decode and decode-like-eddsa).
func (e *Element) ISqrt(a Element) bool {
	av := a.toBig()
	if av.Sign() == 0 {
		*e = Zero()
		return true
	}
	// p ≡ 3 (mod 4), so y = a^((p-3)/4) satisfies y^2 = a^((p-3)/2) =
	// a^(-1) * a^((p-1)/2), which is a^(-1) if a is a QR, since
	// a^((p-1)/2) = 1 for a QR. So y = a^((p-3)/4) is a candidate for
	// 1/sqrt(a); verify y^2*a == 1.
	exp := new(big.Int).Sub(modulus, big.NewInt(3))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(av, exp, modulus)
	check := new(big.Int).Mul(y, y)
	check.Mul(check, av)
	check.Mod(check, modulus)
	*e = fromBig(y)
	return check.Cmp(big.NewInt(1)) == 0
}

// Invert sets e = 1/a. If a == 0, e is set to 0 and ok is false.
func (e *Element) Invert(a Element) (ok bool) {
	av := a.toBig()
	if av.Sign() == 0 {
		*e = Zero()
		return false
	}
	inv := new(big.Int).ModInverse(av, modulus)
	*e = fromBig(inv)
	return true
}

// Serialize writes the canonical little-endian encoding of e into out,
// which must be Size bytes long. Unlike the C gf_serialize it takes no
// high-bit mask argument: the field is 448 bits, so every canonical
// encoding already fills exactly Size bytes.
func (e Element) Serialize(out []byte) {
	copy(out, e.b[:])
}

// Bytes returns the canonical little-endian encoding of e.
func (e Element) Bytes() [Size]byte { return e.b }

// Deserialize decodes ser (which must be Size bytes) into e. It
// reports false if ser does not encode a value strictly less than the
// modulus (non-canonical encoding), mirroring gf_deserialize's
// canonicality check.
func (e *Element) Deserialize(ser []byte) bool {
	if len(ser) != Size {
		return false
	}
	be := make([]byte, Size)
	for i := 0; i < Size; i++ {
		be[i] = ser[Size-1-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(modulus) >= 0 {
		return false
	}
	var out [Size]byte
	copy(out[:], ser)
	e.b = out
	return true
}

// FromInt64 builds a field element from a small signed integer, used by
// tests and by curve-constant initialization.
func FromInt64(v int64) Element {
	return fromBig(big.NewInt(v))
}

// DeserializeReduced decodes ser (Size bytes, little-endian) into an
// element by reducing modulo p rather than rejecting non-canonical
// input. This is the decoding rule RFC 7748's decodeUCoordinate uses
// for the X448 u-coordinate, which must accept every possible 56-byte
// string rather than reject values in [p, 2^448), unlike the strict
// Deserialize used for point and scalar encodings.
func DeserializeReduced(ser []byte) Element {
	be := make([]byte, Size)
	n := len(ser)
	if n > Size {
		n = Size
	}
	for i := 0; i < n; i++ {
		be[Size-1-i] = ser[i]
	}
	return fromBig(new(big.Int).SetBytes(be))
}
