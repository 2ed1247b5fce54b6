package ed25519_test

import (
	stdlib "crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FirasAleem/curve25519/ed25519"
)

// Ed25519 is fully deterministic given seed and message, so this module's
// from-scratch implementation must agree byte for byte with crypto/ed25519
// on both key derivation and signing.
func TestGeneratePublicKey_MatchesStdlib(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()

	got, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	want := stdlib.NewKeyFromSeed(seed).Public().(stdlib.PublicKey)
	require.Equal(t, []byte(want), got)
}

func TestSign_MatchesStdlib(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("cross-checked against the standard library")

	got, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	want := stdlib.Sign(stdlib.NewKeyFromSeed(seed), message)
	require.Equal(t, want, got)
}

func TestVerify_AcceptsStdlibSignature(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("signed elsewhere, verified here")

	sk := stdlib.NewKeyFromSeed(seed)
	sig := stdlib.Sign(sk, message)

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	require.True(t, ed25519.Verify(pub, message, sig))
}
