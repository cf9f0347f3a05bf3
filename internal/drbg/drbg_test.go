package drbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicRNGIsReproducible(t *testing.T) {
	seed := []byte("test seed material")
	r1 := NewFromSeed(seed, true)
	r2 := NewFromSeed(seed, true)

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	n1, err1 := r1.Read(out1)
	n2, err2 := r2.Read(out2)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, 64, n1)
	require.Equal(t, 64, n2)
	require.Equal(t, out1, out2)
}

func TestNonDeterministicRNGDoesNotRepeat(t *testing.T) {
	r := NewFromSeed([]byte("seed"), false)
	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	_, err := r.Read(out1)
	require.NoError(t, err)
	_, err = r.Read(out2)
	require.NoError(t, err)
	require.NotEqual(t, out1, out2)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	r1 := NewFromSeed([]byte("seed-a"), true)
	r2 := NewFromSeed([]byte("seed-b"), true)

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	_, _ = r1.Read(out1)
	_, _ = r2.Read(out2)
	require.NotEqual(t, out1, out2)
}

func TestNewFromFileMissingSourceFails(t *testing.T) {
	_, err := NewFromFile("/nonexistent/path/to/entropy", 32, true)
	require.ErrorIs(t, err, ErrEntropyFailure)
}
