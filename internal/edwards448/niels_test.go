package edwards448

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNielsMatchesAdd(t *testing.T) {
	// AddNiels's n operand must be affine (z=1); b itself qualifies,
	// the general-coordinate operand can be anything, here 2*b.
	b := BasePoint()
	var doubled Point
	doubled.Double(b)

	var viaAdd Point
	viaAdd.Add(doubled, b)

	var viaNiels Point
	viaNiels.AddNiels(doubled, b.ToNiels())

	require.True(t, Eq(viaAdd, viaNiels))
}

func TestAddPNielsMatchesAdd(t *testing.T) {
	b := BasePoint()
	var doubled Point
	doubled.Double(b)

	var viaAdd Point
	viaAdd.Add(doubled, b)

	var viaPNiels Point
	viaPNiels.AddPNiels(doubled, b.ToPNiels())

	require.True(t, Eq(viaAdd, viaPNiels))
}

func TestNielsRoundTrip(t *testing.T) {
	b := BasePoint()
	n := b.ToNiels()
	back := n.NielsToPoint()
	require.True(t, Eq(b, back))
}
