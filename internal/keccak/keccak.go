// Package keccak implements the Keccak-f[1600] permutation: 25 lanes of
// 64 bits each, 24 rounds of theta/rho/pi/chi/iota.
//
// This is the bottom layer of the sponge construction used by package
// sponge, package drbg, and package sha3. It has no notion of padding,
// rate, or domain separation — those live one layer up, the way the
// teacher's sha3 package keeps its own keccakF separate from the
// rate/position bookkeeping in keccak_sponge.go.
package keccak

// Rounds is the number of rounds in Keccak-f[1600].
const Rounds = 24

// State is 25 64-bit lanes (1600 bits / 200 bytes) of Keccak state,
// stored as little-endian lanes per spec §4.1.
type State [25]uint64

var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationConstants[i] is the rho rotation applied to the lane that pi
// moves into position piLane[i].
var rotationConstants = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane[i] is the destination lane index for the i-th step of the
// combined rho+pi permutation, starting from lane 1.
var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// Permute applies rounds [start, 24) of Keccak-f[1600] to s in place.
// start must be in [0, 24]; start == 24 is a no-op, useful for callers
// that resume a permutation from a partial round count.
func Permute(s *State, start int) {
	var bc [5]uint64
	for r := start; r < Rounds; r++ {
		// theta
		for i := range bc {
			bc[i] = s[i] ^ s[5+i] ^ s[10+i] ^ s[15+i] ^ s[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				s[i+j] ^= t
			}
		}

		// rho + pi
		temp := s[1]
		for i := range piLane {
			j := piLane[i]
			temp2 := s[j]
			s[j] = rotl64(temp, rotationConstants[i])
			temp = temp2
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := range bc {
				bc[i] = s[j+i]
			}
			for i := range bc {
				s[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		s[0] ^= roundConstants[r]
	}
}

// Zero overwrites s with zeros; used on all exit paths that held secret
// sponge state.
func Zero(s *State) {
	for i := range s {
		s[i] = 0
	}
	clobber(s)
}

// clobber is an irreducible memory-clobber barrier: it forces the
// preceding zeroing writes to be observable, defeating dead-store
// elimination across the Zero call, per spec §5.
//
//go:noinline
func clobber(s *State) {
	for i := range s {
		if s[i] != 0 {
			panic("keccak: state not zeroed")
		}
	}
}
