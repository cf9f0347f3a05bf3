package edwards448

import "github.com/claucece/libgoldilocs-arch-32/internal/field"

// untwistedD is the untwisted Ed448 curve constant d = -39081 (spec §6).
const untwistedD = -39081

// isogenyRatioConstant is -1 - d_twist = -1 - (-39082) = 39081, the
// constant multiplier appearing throughout the 4-isogeny formulas
// (goldilocks.c's deisogenize and the dual isogeny in
// DecodeLikeEdDSAAndMulByRatio).
const isogenyRatioConstant = 39081

// deisogenizeS recovers the internal-curve encoding coordinate s from
// an extended-coordinate point, with the toggle_s/toggle_altx/
// toggle_rotation arguments fixed to 0 as Encode does (spec §4.4, §4.8;
// grounded on goldilocks.c's deisogenize, toggle_rotation omitted per
// the open-question resolution in DESIGN.md).
func deisogenizeS(p Point) field.Element {
	var t1, t2, t3, t4, isr field.Element
	t1.Add(p.X, p.T)
	t2.Sub(p.X, p.T)
	t3.Mul(t1, t2) // num
	t2.Sqr(p.X)
	t1.Mul(t2, t3)
	t2.Mulw(t1, isogenyRatioConstant) // -x^2 * (a-d) * num
	isr.ISqrt(t2)
	t2.Mul(isr, t3) // ratio
	t4.Mul(t2, field.Factor())
	negx := t4.LowBit()
	t2.CondNeg(negx)
	t3.Mul(t2, p.Z)
	t3.Sub(t3, p.T)
	t2.Mul(t3, p.X)
	t4.Mulw(t2, isogenyRatioConstant)
	var s field.Element
	s.Mul(t4, isr)
	s.CondNeg(s.LowBit())
	return s
}

// Encode serializes p as the 56-byte internal-curve encoding (spec
// §4.4). It is not the external Ed448 wire format: see EncodeLikeEdDSA
// for that.
func Encode(p Point) [field.Size]byte {
	s := deisogenizeS(p)
	return s.Bytes()
}

// Decode parses a 56-byte internal-curve encoding. allowIdentity
// controls whether the all-zero encoding is accepted (spec §4.4).
func Decode(ser []byte, allowIdentity bool) (Point, bool) {
	var s field.Element
	succ := s.Deserialize(ser)
	succ = succ && (allowIdentity || !s.IsZero())
	succ = succ && s.LowBit() == 0

	var s2, den, ynum, num, tmp, tmp2 field.Element
	s2.Sqr(s)
	den.Sub(field.One(), s2)
	ynum.Add(field.One(), s2)
	num.Mulw(s2, -4*untwistedD+4) // -4*d_twist = -4*(d-1)
	tmp.Sqr(den)
	num.Add(tmp, num)
	tmp2.Mul(num, tmp)

	var isr field.Element
	ok := isr.ISqrt(tmp2)
	succ = succ && ok

	tmp.Mul(isr, den)
	var y field.Element
	y.Mul(tmp, ynum)
	tmp2.Mul(tmp, s)
	tmp2.Add(tmp2, tmp2)
	tmp.Mul(tmp2, isr)
	var x field.Element
	x.Mul(tmp, num)

	var magic field.Element
	magic.Mul(tmp2, field.Factor())
	x.CondNeg(magic.LowBit())

	var p Point
	p.X, p.Y, p.Z = x, y, field.One()
	p.T.Mul(p.X, p.Y)

	succ = succ && p.Valid()
	return p, succ
}

// EncodeLikeEdDSA maps p through the 4-isogeny to the untwisted curve,
// affinizes, and produces the 57-byte Ed448 wire encoding: 56 bytes of
// y with the sign of x carried in bit 7 of the trailing byte (spec
// §4.8; grounded on goldilocks.c's point_mul_by_ratio_and_encode_like_eddsa).
func EncodeLikeEdDSA(p Point) [field.Size + 1]byte {
	var x, y, z, t, u field.Element
	x.Sqr(p.X)
	t.Sqr(p.Y)
	u.Add(x, t)
	z.Add(p.Y, p.X)
	y.Sqr(z)
	y.Sub(y, u)
	z.Sub(t, x)
	x.Sqr(p.Z)
	t.Add(x, x)
	t.Sub(t, z)
	x.Mul(t, y)
	y.Mul(z, u)
	z.Mul(u, t)

	var zInv field.Element
	zInv.Invert(z)
	var outT, outX field.Element
	outT.Mul(x, zInv)
	outX.Mul(y, zInv)

	var out [field.Size + 1]byte
	b := outX.Bytes()
	copy(out[:field.Size], b[:])
	if outT.LowBit() == 1 {
		out[field.Size] = 0x80
	}
	return out
}

// DecodeLikeEdDSAAndMulByRatio parses a 57-byte Ed448 wire encoding,
// recovers the untwisted-curve point, and applies the dual 4-isogeny
// back to the internal twisted curve (spec §4.8; grounded on
// goldilocks.c's point_decode_like_eddsa_and_mul_by_ratio). The result
// is implicitly multiplied by the cofactor ratio, as in the reference.
func DecodeLikeEdDSAAndMulByRatio(enc []byte) (Point, bool) {
	if len(enc) != field.Size+1 {
		return Point{}, false
	}
	buf := make([]byte, field.Size+1)
	copy(buf, enc)
	low := 0
	if buf[field.Size]&0x80 != 0 {
		low = 1
	}
	buf[field.Size] &^= 0x80

	var y field.Element
	succ := y.Deserialize(buf[:field.Size])
	succ = succ && buf[field.Size] == 0

	var ySq, num, dy2, denom, prod field.Element
	ySq.Sqr(y)
	num.Sub(field.One(), ySq)
	dy2.Mulw(ySq, untwistedD)
	denom.Sub(field.One(), dy2)
	prod.Mul(num, denom)

	var isr field.Element
	ok := isr.ISqrt(prod)
	succ = succ && ok

	var x field.Element
	x.Mul(isr, num)
	x.CondNeg(x.LowBit() ^ low)

	var p Point
	p.X, p.Y, p.Z = x, y, field.One()

	// Dual 4-isogeny: untwisted -> twisted.
	var a, b, c, d, t field.Element
	c.Sqr(p.X)
	a.Sqr(p.Y)
	d.Add(c, a)
	t.Add(p.Y, p.X)
	b.Sqr(t)
	b.Sub(b, d)
	t.Sub(a, c)
	p.X.Sqr(p.Z)
	p.Z.Add(p.X, p.X)
	a.Sub(p.Z, d)
	p.X.Mul(a, b)
	p.Z.Mul(t, a)
	p.Y.Mul(t, d)
	p.T.Mul(b, d)

	succ = succ && p.Valid()
	return p, succ
}

// EncodeLikeX448 serializes the Montgomery u-coordinate u = (y/x)^2
// derived from p, used by Ed448-to-X448 public key conversion (spec
// §4.8; grounded on point_mul_by_ratio_and_encode_like_x448).
func EncodeLikeX448(p Point) [field.Size]byte {
	var xInv, ratio, u field.Element
	xInv.Invert(p.X)
	ratio.Mul(xInv, p.Y)
	u.Sqr(ratio)
	return u.Bytes()
}

// ConvertPublicKeyToX448 derives the X448 Montgomery public key
// u-coordinate from a 57-byte Ed448 public key, without decoding a
// full point: u = y^2*(1-d*y^2)/(1-y^2) (spec §4.8; grounded on
// goldilocks_ed448_convert_public_key_to_x448).
func ConvertPublicKeyToX448(ed []byte) [field.Size]byte {
	var y, ySq, denom, denomInv, ratio, dy2, oneMinusDy2, u field.Element
	y.Deserialize(ed[:field.Size])
	ySq.Sqr(y)
	denom.Sub(field.One(), ySq)
	denomInv.Invert(denom)
	ratio.Mul(ySq, denomInv)
	dy2.Mulw(ySq, untwistedD)
	oneMinusDy2.Sub(field.One(), dy2)
	u.Mul(ratio, oneMinusDy2)
	return u.Bytes()
}
