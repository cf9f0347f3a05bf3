package edwards448

import "github.com/claucece/libgoldilocs-arch-32/internal/field"

// Niels is a point held in "Niels coordinates": the projective-Niels
// triple {y-x, y+x, 2*d*t} of a point whose projective-Niels z (= 2*Z)
// is normalized to 1, i.e. {a=(y-x)/2, b=(y+x)/2, c=d*t} for an affine
// point. It is the affine-like representation used for fixed-base comb
// tables and drops to a 7M addition against an extended-coordinate
// accumulator (spec §4.5).
type Niels struct {
	A, B, C field.Element
}

// PNiels is a Niels-coordinate point paired with its own z, used for
// variable-base windowed tables where affine normalization per table
// entry is too expensive (spec §4.6).
type PNiels struct {
	N Niels
	Z field.Element
}

// ToNiels converts p (assumed already affine, z=1) to Niels form.
func (p Point) ToNiels() Niels {
	var n Niels
	var half field.Element
	half.Invert(field.FromInt64(2))
	n.A.Sub(p.Y, p.X)
	n.A.Mul(n.A, half)
	n.B.Add(p.Y, p.X)
	n.B.Mul(n.B, half)
	n.C.Mul(p.T, twistedD)
	return n
}

// ToPNiels converts p to projective-Niels form {y-x, y+x, 2*d*t} with
// z = 2*Z, without normalizing z.
func (p Point) ToPNiels() PNiels {
	var pn PNiels
	var q Point
	q.X.Sub(p.Y, p.X)
	q.Y.Add(p.Y, p.X)
	q.T.Mul(p.T, twoTimesTwistedD)
	pn.N.A = q.X
	pn.N.B = q.Y
	pn.N.C = q.T
	pn.Z.Add(p.Z, p.Z)
	return pn
}

// PNielsToPoint expands a projective-Niels point back to extended
// coordinates, recovering T from A*B and the doubled Z (T = (b-a)/2 *
// z is avoided; instead compute T directly from the product identity
// used throughout goldilocks.c's pniels_to_pt).
func (pn PNiels) PNielsToPoint() Point {
	var p Point
	var a, b field.Element
	a.Sub(pn.N.B, pn.N.A)
	b.Add(pn.N.B, pn.N.A)
	p.Y.Mul(b, pn.Z)
	p.X.Mul(a, pn.Z)
	p.Z.Sqr(pn.Z)
	p.T.Mul(a, b)
	return p
}

// NielsToPoint expands an affine Niels point to extended coordinates
// with z=1.
func (n Niels) NielsToPoint() Point {
	var p Point
	p.Y.Add(n.B, n.A)
	p.X.Sub(n.B, n.A)
	p.Z = field.One()
	p.T.Mul(p.X, p.Y)
	return p
}

// AddNiels sets p = q + n, where n is an affine Niels point (z=1),
// using the cheaper 7M mixed-addition formula (spec §4.5; transcribed
// term-by-term from goldilocks.c's add_niels_to_pt).
func (p *Point) AddNiels(q Point, n Niels) *Point {
	var a, b, c field.Element
	b.Sub(q.Y, q.X)
	a.Mul(n.A, b)
	b.Add(q.X, q.Y)
	p.Y.Mul(n.B, b)
	p.X.Mul(n.C, q.T)
	c.Add(a, p.Y)
	b.Sub(p.Y, a)
	p.Y.Sub(q.Z, p.X)
	a.Add(p.X, q.Z)
	p.Z.Mul(a, p.Y)
	p.X.Mul(p.Y, b)
	p.Y.Mul(a, c)
	p.T.Mul(b, c)
	return p
}

// SubNiels sets p = q - n (goldilocks.c's sub_niels_from_pt).
func (p *Point) SubNiels(q Point, n Niels) *Point {
	var a, b, c field.Element
	b.Sub(q.Y, q.X)
	a.Mul(n.B, b)
	b.Add(q.X, q.Y)
	p.Y.Mul(n.A, b)
	p.X.Mul(n.C, q.T)
	c.Add(a, p.Y)
	b.Sub(p.Y, a)
	p.Y.Add(q.Z, p.X)
	a.Sub(q.Z, p.X)
	p.Z.Mul(a, p.Y)
	p.X.Mul(p.Y, b)
	p.Y.Mul(a, c)
	p.T.Mul(b, c)
	return p
}

// AddPNiels sets p = q + pn, the 8M projective-Niels mixed addition
// used inside windowed variable-base scalar multiplication: q's z is
// first folded together with pn's z, then the cheaper affine-Niels
// addition formula runs against the rescaled point (goldilocks.c's
// add_pniels_to_pt).
func (p *Point) AddPNiels(q Point, pn PNiels) *Point {
	scaled := q
	scaled.Z.Mul(q.Z, pn.Z)
	return p.AddNiels(scaled, pn.N)
}

// SubPNiels sets p = q - pn.
func (p *Point) SubPNiels(q Point, pn PNiels) *Point {
	scaled := q
	scaled.Z.Mul(q.Z, pn.Z)
	return p.SubNiels(scaled, pn.N)
}

// CondNegNiels negates n in place (swapping a and b, negating c) iff
// neg == 1, matching the curve's cheap Niels-coordinate negation.
func (n *Niels) CondNegNiels(neg int) {
	field.CondSwap(&n.A, &n.B, neg)
	var negC field.Element
	negC.Neg(n.C)
	n.C.CondSel(n.C, negC, neg)
}

// CondSel sets n = a if pickB == 0, or n = b if pickB == 1.
func (n *Niels) CondSel(a, b Niels, pickB int) *Niels {
	n.A.CondSel(a.A, b.A, pickB)
	n.B.CondSel(a.B, b.B, pickB)
	n.C.CondSel(a.C, b.C, pickB)
	return n
}
