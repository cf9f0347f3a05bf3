// Package drbg implements a sponge-based deterministic/non-deterministic
// random byte generator, per spec §4.3: a Keccak sponge in a
// distinguished mode (pad = 0xFF) that is seeded once by absorbing a
// buffer, and thereafter produces output by squeezing.
//
// Grounded on the SpongeRng wrapper in
// original_source/include/shake.hxx (buffer- and file-seeded
// constructors, a deterministic flag, and a read method), adapted to
// Go's io.Reader idiom instead of the C++ wrapper's exception-based
// constructor.
package drbg

import (
	"errors"
	"io"
	"os"

	"github.com/claucece/libgoldilocs-arch-32/internal/sponge"
)

// drbgPad is the DRBG's distinguished domain-separation byte (spec §3).
const drbgPad = 0xFF

// rate chosen for 256-bit generic security strength, matching the
// strength of SHAKE256 (spec does not pin a specific rate for the DRBG
// instance, only its pad byte; 256-bit strength is the conservative
// choice for key generation).
const rate = 136

// ErrEntropyFailure is returned by NewFromFile when fewer than the
// requested number of entropy bytes could be read from the source.
var ErrEntropyFailure = errors.New("drbg: could not read requested entropy from source")

// SpongeRNG is a sponge-based DRBG. It implements io.Reader.
type SpongeRNG struct {
	sp            *sponge.Sponge
	deterministic bool
}

// NewFromSeed seeds a DRBG by absorbing seed. If deterministic is
// false, every Read reseeds itself from its own continued output
// stream after satisfying the caller, for backtracking resistance
// (spec §4.3); if true, the DRBG never reseeds and is fully
// reproducible from the seed, for test vectors.
func NewFromSeed(seed []byte, deterministic bool) *SpongeRNG {
	sp := sponge.New(sponge.Params{Rate: rate, Pad: drbgPad, RatePad: 0x80, MaxOut: sponge.Unlimited})
	sp.Update(seed)
	return &SpongeRNG{sp: sp, deterministic: deterministic}
}

// NewFromFile seeds a DRBG by reading n bytes from the named entropy
// source (e.g. "/dev/urandom"). It returns ErrEntropyFailure if fewer
// than n bytes could be read.
func NewFromFile(path string, n int, deterministic bool) (*SpongeRNG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrEntropyFailure
	}
	defer f.Close()

	seed := make([]byte, n)
	if _, err := io.ReadFull(f, seed); err != nil {
		return nil, ErrEntropyFailure
	}
	rng := NewFromSeed(seed, deterministic)
	defer zero(seed)
	return rng, nil
}

// Read fills p with pseudo-random bytes. It never returns an error;
// len(p) is always fully populated, satisfying io.Reader.
func (r *SpongeRNG) Read(p []byte) (int, error) {
	if err := r.sp.Output(p); err != nil {
		// The DRBG sponge is Unlimited; ErrTruncatedOutput cannot occur.
		panic("drbg: unexpected truncation from an unlimited sponge")
	}

	if !r.deterministic {
		reseed := make([]byte, len(p))
		if err := r.sp.Output(reseed); err != nil {
			panic("drbg: unexpected truncation from an unlimited sponge")
		}
		r.sp.Reset()
		r.sp.Update(p)
		r.sp.Update(reseed)
		zero(reseed)
	}

	return len(p), nil
}

// Destroy zeros the DRBG's internal sponge state.
func (r *SpongeRNG) Destroy() {
	r.sp.Destroy()
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	clobber(b)
}

//go:noinline
func clobber(b []byte) {
	for _, v := range b {
		if v != 0 {
			panic("drbg: buffer not zeroed")
		}
	}
}
