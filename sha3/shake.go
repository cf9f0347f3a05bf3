package sha3

import (
	"io"

	"github.com/claucece/libgoldilocs-arch-32/internal/sponge"
)

// XOF defines the interface to hash functions that support arbitrary-
// length output, matching golang.org/x/crypto/sha3's XOF shape so SHAKE
// instances compose with the same callers as a fixed hash.Hash.
type XOF interface {
	io.Writer
	io.Reader

	// Clone returns a copy of the XOF in its current state.
	Clone() XOF

	// Reset resets the XOF to its initial state.
	Reset()
}

type shakeState struct {
	sp     *sponge.Sponge
	params sponge.Params
}

func (s *shakeState) Write(p []byte) (int, error) {
	s.sp.Update(p)
	return len(p), nil
}

func (s *shakeState) Read(p []byte) (int, error) {
	// ErrTruncatedOutput cannot occur: SHAKE instances are Unlimited.
	_ = s.sp.Output(p)
	return len(p), nil
}

func (s *shakeState) Reset() { s.sp.Reset() }

func (s *shakeState) Clone() XOF {
	return &shakeState{sp: s.sp.Clone(), params: s.params}
}

func newShake(rate int) *shakeState {
	params := sponge.Params{Rate: rate, Pad: padSHAKE, RatePad: ratePad, MaxOut: sponge.Unlimited}
	return &shakeState{sp: sponge.New(params), params: params}
}

// NewShake128 returns a new SHAKE128 XOF.
func NewShake128() XOF { return newShake(168) }

// NewShake256 returns a new SHAKE256 XOF.
func NewShake256() XOF { return newShake(136) }

// ShakeSum128 writes len(out) bytes of SHAKE128(data) into out.
func ShakeSum128(out, data []byte) {
	s := NewShake128()
	s.Write(data)
	io.ReadFull(s, out)
}

// ShakeSum256 writes len(out) bytes of SHAKE256(data) into out.
func ShakeSum256(out, data []byte) {
	s := NewShake256()
	s.Write(data)
	io.ReadFull(s, out)
}
