package edwards448

import "github.com/claucece/libgoldilocs-arch-32/internal/scalar"

// recodeWNAF converts s into a width-w non-adjacent form: a slice of
// signed odd digits in [-2^(w-1), 2^(w-1)-1] (and zeros), one per bit
// position, such that sum(digit[i] * 2^i) == s. Variable-time: this is
// only ever used on public data (signature verification), never on
// secret scalars (spec §4.8).
func recodeWNAF(s scalar.Scalar, w uint) []int {
	bits := scalar.Size*8 + 1
	digits := make([]int, bits)

	// Work on a little-endian bit array so carries can ripple freely
	// past the scalar's nominal bit width.
	bitAt := func(i int) int {
		if i < 0 || i >= scalar.Size*8 {
			return 0
		}
		return s.Bit(i)
	}
	val := make([]int, bits+int(w))
	for i := 0; i < bits; i++ {
		val[i] = bitAt(i)
	}

	window := 1 << w
	for i := 0; i < bits; i++ {
		if val[i] == 0 {
			continue
		}
		// Collect the next w bits starting at i into an odd window value.
		v := 0
		for j := 0; j < int(w); j++ {
			if i+j < len(val) {
				v |= val[i+j] << j
			}
		}
		if v >= window/2 {
			v -= window
		}
		digits[i] = v
		// Subtract v*2^i from the remaining bit array and let the
		// borrow/carry propagate.
		borrow := v
		for j := 0; borrow != 0 && i+j < len(val); j++ {
			cur := val[i+j] - (borrow & 1)
			borrow >>= 1
			if cur < 0 {
				cur += 2
				borrow++
			}
			val[i+j] = cur
		}
	}
	return digits
}

// wnafTable holds the 2^(w-1) odd multiples {1*P, 3*P, ..., (2^w-1)*P}
// needed to evaluate a w-NAF recoding, computed in ordinary (variable-
// time) extended-coordinate arithmetic since this path never handles
// secret data.
func wnafTable(p Point, w uint) []Point {
	n := 1 << (w - 1)
	table := make([]Point, n)
	table[0] = p
	var dbl Point
	dbl.Double(p)
	for i := 1; i < n; i++ {
		var next Point
		next.Add(table[i-1], dbl)
		table[i] = next
	}
	return table
}

// BaseDoubleScalarMulNonSecret computes a = k1*base1 + k2*base2 using
// variable-time width-5/width-3 windowed NAF double-base
// multiplication, for batch-friendly public-key operations such as
// signature verification where neither scalar nor point is secret
// (spec §4.8).
func BaseDoubleScalarMulNonSecret(base1 Point, k1 scalar.Scalar, base2 Point, k2 scalar.Scalar) Point {
	const w1 = 5
	const w2 = 3

	d1 := recodeWNAF(k1, w1)
	d2 := recodeWNAF(k2, w2)
	t1 := wnafTable(base1, w1)
	t2 := wnafTable(base2, w2)

	n := len(d1)
	if len(d2) > n {
		n = len(d2)
	}
	acc := Identity()
	for i := n - 1; i >= 0; i-- {
		acc.Double(acc)
		if i < len(d1) && d1[i] != 0 {
			addWNAFDigit(&acc, t1, d1[i])
		}
		if i < len(d2) && d2[i] != 0 {
			addWNAFDigit(&acc, t2, d2[i])
		}
	}
	return acc
}

func addWNAFDigit(acc *Point, table []Point, d int) {
	neg := d < 0
	if neg {
		d = -d
	}
	entry := table[(d-1)/2]
	var sum Point
	if neg {
		sum.Sub(*acc, entry)
	} else {
		sum.Add(*acc, entry)
	}
	*acc = sum
}
