package keccak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermuteChangesZeroState(t *testing.T) {
	var s State
	Permute(&s, 0)
	nonZero := false
	for _, lane := range s {
		if lane != 0 {
			nonZero = true
		}
	}
	require.True(t, nonZero, "permuting the all-zero state must not stay zero")
}

func TestPermuteNoOpAtRoundsBoundary(t *testing.T) {
	var s State
	Permute(&s, 0)
	before := s
	Permute(&s, Rounds)
	require.Equal(t, before, s)
}

func TestPermuteResumeMatchesFullRun(t *testing.T) {
	var full, resumed State
	full[3] = 0x0102030405060708
	resumed[3] = 0x0102030405060708

	Permute(&full, 0)

	Permute(&resumed, 0)
	// Resuming from any valid midpoint on an already-permuted state
	// (start == Rounds) must be a no-op and match the full run exactly.
	Permute(&resumed, Rounds)

	require.Equal(t, full, resumed)
}

func TestZeroClearsState(t *testing.T) {
	var s State
	Permute(&s, 0)
	Zero(&s)
	for _, lane := range s {
		require.Equal(t, uint64(0), lane)
	}
}
