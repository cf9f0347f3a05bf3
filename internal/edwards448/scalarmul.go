package edwards448

import "github.com/claucece/libgoldilocs-arch-32/internal/scalar"

// windowBits is the window width for constant-time variable-base
// scalar multiplication (spec §4.7).
const windowBits = 5

const tableSize = 1 << (windowBits - 1)

// buildOddMultiples constructs the constant-time lookup table of odd
// multiples {1*P, 3*P, 5*P, ..., (2^windowBits-1)*P} in projective-
// Niels form, used by both the constant-time and signed-digit
// variable-base multipliers.
func buildOddMultiples(base Point) [tableSize]PNiels {
	var table [tableSize]PNiels
	table[0] = base.ToPNiels()

	var dbl Point
	dbl.Double(base)
	dblNiels := dbl.ToPNiels()

	acc := base
	for i := 1; i < tableSize; i++ {
		var next Point
		next.AddPNiels(acc, dblNiels)
		table[i] = next.ToPNiels()
		acc = next
	}
	return table
}

// constantTimeLookup selects table[idx] in constant time by scanning
// every entry and masking, per spec §4.7's online constant-time table
// discipline (no data-dependent array indexing).
func constantTimeLookup(table [tableSize]PNiels, idx int) PNiels {
	var out PNiels
	for i := 0; i < tableSize; i++ {
		pick := 0
		if i == idx {
			pick = 1
		}
		out.N.CondSel(out.N, table[i].N, pick)
		out.Z.CondSel(out.Z, table[i].Z, pick)
	}
	return out
}

// recodeSignedWindows decomposes a scalar into Bits/windowBits + 1
// signed windows each in [-2^(windowBits-1), 2^(windowBits-1)], via
// the standard carry-propagating recoding (spec §4.7; mirrors
// goldilocks.c's recode_exponent used inside point_scalarmul).
func recodeSignedWindows(s scalar.Scalar) []int {
	n := (scalar.Bits + windowBits) / windowBits
	digits := make([]int, n)
	carry := 0
	for i := 0; i < n; i++ {
		bits := 0
		for b := 0; b < windowBits; b++ {
			idx := i*windowBits + b
			v := 0
			if idx < scalar.Bits {
				v = s.Bit(idx)
			}
			bits |= v << b
		}
		bits += carry
		if bits >= tableSize {
			digits[i] = bits - 2*tableSize
			carry = 1
		} else {
			digits[i] = bits
			carry = 0
		}
	}
	return digits
}

// variableBaseScalarMul computes s*base using a constant-time signed
// fixed-window ladder: double windowBits times, then add the signed
// digit's table entry (negated in constant time when the digit is
// negative), per spec §4.7.
func variableBaseScalarMul(base Point, s scalar.Scalar) Point {
	table := buildOddMultiples(base)
	digits := recodeSignedWindows(s)

	acc := Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		for b := 0; b < windowBits; b++ {
			acc.Double(acc)
		}
		d := digits[i]
		isZero := 0
		if d == 0 {
			isZero = 1
		}
		neg := 0
		if d < 0 {
			neg = 1
			d = -d
		}
		idx := 0
		if d != 0 {
			idx = (d - 1) / 2
		}
		entry := constantTimeLookup(table, idx)
		entry.N.CondNegNiels(neg)
		var sum Point
		sum.AddPNiels(acc, entry)
		acc.CondSel(acc, sum, 1-isZero)
	}
	return acc
}

// DoubleScalarMul computes a = k*base + c*other, using two
// independent signed-window ladders interleaved so both accumulate
// into a single running point (spec §4.7's double-scalarmul variant,
// used for key-exchange-style combined computations).
func DoubleScalarMul(base Point, k scalar.Scalar, other Point, c scalar.Scalar) Point {
	tableK := buildOddMultiples(base)
	tableC := buildOddMultiples(other)
	digitsK := recodeSignedWindows(k)
	digitsC := recodeSignedWindows(c)

	acc := Identity()
	for i := len(digitsK) - 1; i >= 0; i-- {
		for b := 0; b < windowBits; b++ {
			acc.Double(acc)
		}
		addSignedDigit(&acc, tableK, digitsK[i])
		addSignedDigit(&acc, tableC, digitsC[i])
	}
	return acc
}

func addSignedDigit(acc *Point, table [tableSize]PNiels, d int) {
	if d == 0 {
		return
	}
	neg := 0
	if d < 0 {
		neg = 1
		d = -d
	}
	idx := (d - 1) / 2
	entry := constantTimeLookup(table, idx)
	entry.N.CondNegNiels(neg)
	acc.AddPNiels(*acc, entry)
}

// DualScalarMul computes (a1, a2) = (k1*base, k2*base): two
// independent scalar multiples of the same base point, sharing one
// odd-multiple table (spec §4.7's dual-scalarmul variant).
func DualScalarMul(base Point, k1, k2 scalar.Scalar) (Point, Point) {
	table := buildOddMultiples(base)
	d1 := recodeSignedWindows(k1)
	d2 := recodeSignedWindows(k2)

	acc1, acc2 := Identity(), Identity()
	for i := len(d1) - 1; i >= 0; i-- {
		for b := 0; b < windowBits; b++ {
			acc1.Double(acc1)
			acc2.Double(acc2)
		}
		addSignedDigit(&acc1, table, d1[i])
		addSignedDigit(&acc2, table, d2[i])
	}
	return acc1, acc2
}
