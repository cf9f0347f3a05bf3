package x448

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestX448Vector(t *testing.T) {
	// RFC 7748 §5.2 X448 test vector (spec §8).
	k1 := mustHex(t, "3d262fddf9ec8e88495266fea19a34d28882acef045104d0d1aae121700a779c984c24f8cdd78fbff44943eba368f54b29259a4f1c600ad3")
	u := mustHex(t, "06fce640fa3487bfda5f6cf2d5263f8aad88334cbd07437f020f08f9814dc031ddbdc38c19c6da2583fa5429db94ada18aa7a7fb4ef8a086")
	want := mustHex(t, "ce3e4ff95a60dc6697da1db1d85e6afbdf79b50a2412d7546d5f239fe14fbaadeb445fc66a01b0779d98223961111e21766282f73dd96b6f")

	got, err := X448(k1, u)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Len(t, got, PublicKeySize)
}

func TestX448BasePointShape(t *testing.T) {
	require.Equal(t, byte(5), BasePointBytes[0])
	for _, b := range BasePointBytes[1:] {
		require.Equal(t, byte(0), b)
	}
}

func TestX448LowOrderInputFails(t *testing.T) {
	zero := make([]byte, PublicKeySize)
	scalarBytes := make([]byte, PrivateKeySize)
	scalarBytes[0] = 1
	_, err := X448(scalarBytes, zero)
	require.ErrorIs(t, err, ErrLowOrderInput)
}

func TestX448AcceptsOutOfRangeUCoordinate(t *testing.T) {
	// RFC 7748 requires decodeUCoordinate to reduce a u-coordinate >= p
	// modulo p rather than reject it; an all-0xff input is the
	// canonical "too large" edge case.
	allFF := make([]byte, PublicKeySize)
	for i := range allFF {
		allFF[i] = 0xff
	}
	scalarBytes := make([]byte, PrivateKeySize)
	scalarBytes[0] = 1

	_, err := X448(scalarBytes, allFF)
	require.NoError(t, err)
}

func TestDerivePublicKeyDeterministic(t *testing.T) {
	priv := make([]byte, PrivateKeySize)
	priv[0] = 0x42
	priv[PrivateKeySize-1] = 0x17

	pub1 := DerivePublicKey(priv)
	pub2 := DerivePublicKey(priv)
	require.Equal(t, pub1, pub2)
	require.Len(t, pub1, PublicKeySize)
}
