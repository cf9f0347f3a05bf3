package sha3

import (
	"hash"

	"github.com/claucece/libgoldilocs-arch-32/internal/sponge"
)

// Instance parameter blocks, per spec §4.2.
const (
	padSHA3  = 0x06
	padSHAKE = 0x1f
	ratePad  = 0x80
)

type digest struct {
	sp         *sponge.Sponge
	params     sponge.Params
	outputSize int
}

func newDigest(rate int, pad byte, maxOut int) *digest {
	params := sponge.Params{Rate: rate, Pad: pad, RatePad: ratePad, MaxOut: maxOut}
	d := &digest{params: params}
	if maxOut == sponge.Unlimited {
		d.outputSize = 200 - rate
	} else {
		d.outputSize = maxOut
	}
	d.sp = sponge.New(params)
	return d
}

// Write absorbs p into the hash state. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	d.sp.Update(p)
	return len(p), nil
}

// Reset reinitializes the hash to its zero state.
func (d *digest) Reset() { d.sp.Reset() }

// Size returns the default output size in bytes.
func (d *digest) Size() int { return d.outputSize }

// BlockSize returns the sponge's rate.
func (d *digest) BlockSize() int { return d.params.Rate }

// Sum appends the digest of all data absorbed so far to in and returns
// the result, without modifying the receiver's state (the sponge is
// cloned before squeezing, matching Go's hash.Hash contract that Sum
// does not affect future Write calls).
func (d *digest) Sum(in []byte) []byte {
	clone := d.sp.Clone()
	out := make([]byte, d.outputSize)
	_ = clone.Output(out)
	clone.Destroy()
	return append(in, out...)
}

// New224 returns a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newDigest(144, padSHA3, 28) }

// New256 returns a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newDigest(136, padSHA3, 32) }

// New384 returns a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newDigest(104, padSHA3, 48) }

// New512 returns a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newDigest(72, padSHA3, 64) }

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (out [28]byte) {
	h := New224()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (out [32]byte) {
	h := New256()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (out [48]byte) {
	h := New384()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (out [64]byte) {
	h := New512()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return
}
