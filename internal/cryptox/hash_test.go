package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash_Deterministic(t *testing.T) {
	h := NewHasher("pepper")

	a := h.Hash("pw1", "salt")
	b := h.Hash("pw1", "salt")
	require.Equal(t, a, b, "identical inputs must hash identically")
}

func TestHash_SaltChangesOutput(t *testing.T) {
	h := NewHasher("pepper")

	a := h.Hash("pw1", "saltA")
	b := h.Hash("pw1", "saltB")
	require.NotEqual(t, a, b, "different salts must change the hash")
}

func TestHash_PepperChangesOutput(t *testing.T) {
	a := NewHasher("pepper1").Hash("pw1", "salt")
	b := NewHasher("pepper2").Hash("pw1", "salt")
	require.NotEqual(t, a, b)
}

func TestHash_LowercaseHexDigest(t *testing.T) {
	h := NewHasher("pepper")

	out := h.Hash("pw1", "salt")
	require.Len(t, out, 40, "SHA-1 digest is 20 bytes, 40 hex chars")
	require.Equal(t, strings.ToLower(out), out)
	_, err := hex.DecodeString(out)
	require.NoError(t, err)
}

func TestVerify(t *testing.T) {
	h := NewHasher("pepper")
	salt := GenerateSalt()
	stored := h.Hash("secret", salt)

	require.True(t, h.Verify("secret", salt, stored))
	require.False(t, h.Verify("wrong", salt, stored))
	require.False(t, h.Verify("secret", "othersalt", stored))
}

func TestGenerateSalt_LengthAndAlphabet(t *testing.T) {
	salt := GenerateSalt()
	require.Len(t, []rune(salt), SaltLength)
	for _, r := range salt {
		require.Contains(t, saltAlphabet, string(r))
	}
}

func TestGenerateSalt_NotReused(t *testing.T) {
	if GenerateSalt() == GenerateSalt() {
		t.Logf("warning: two generated salts are identical; extremely unlikely")
	}
}
