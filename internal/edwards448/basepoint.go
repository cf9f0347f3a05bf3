package edwards448

import "github.com/claucece/libgoldilocs-arch-32/internal/field"

// Cofactor is the curve's cofactor (spec §2).
const Cofactor = 4

// baseX, baseY are the little-endian byte encodings of the generator
// of the twisted curve's prime-order subgroup, grounded on the
// "twistedEdwards448" reference package's genX/genY constants (same
// curve, d = -39082).
var (
	baseX = field.Element{}
	baseY = field.Element{}
)

func init() {
	xBytes := [field.Size]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80, 0xfe, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	yBytes := [field.Size]byte{
		0x64, 0x4a, 0xdd, 0xdf, 0xb4, 0x79, 0x60, 0xc8,
		0xa1, 0x70, 0xb4, 0x3a, 0x1e, 0x0c, 0x9b, 0x19,
		0xe5, 0x48, 0x3f, 0xd7, 0x44, 0x18, 0x18, 0x14,
		0x14, 0x27, 0x45, 0x50, 0x2c, 0x24, 0xd5, 0x93,
		0xc3, 0x74, 0x4c, 0x50, 0x70, 0x43, 0x26, 0x05,
		0x08, 0x24, 0xca, 0x78, 0x30, 0xc1, 0x06, 0x8d,
		0xd4, 0x86, 0x42, 0xf0, 0x14, 0xde, 0x08, 0x85,
	}
	baseX.Deserialize(xBytes[:])
	baseY.Deserialize(yBytes[:])
}

// BasePoint returns the generator of the curve's prime-order subgroup.
func BasePoint() Point {
	var p Point
	p.X = baseX
	p.Y = baseY
	p.Z = field.One()
	p.T.Mul(baseX, baseY)
	return p
}
