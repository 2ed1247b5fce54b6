package ed25519_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FirasAleem/curve25519/ed25519"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func seedN(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}

func TestSign_MatchesKnownVector_ZeroSeed(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t, "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"), pub)

	sig, err := ed25519.Sign(seed, nil)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t,
		"8f895b3cafe2c9506039d0e2a66382568004674fe8d237785092e40d6aaf483e4fc60168705f31f101596138ce21aa357c0d32a064f423dc3ee4aa3abf53f803"),
		sig,
	)

	require.True(t, ed25519.Verify(pub, nil, sig))
}

func TestSign_MatchesKnownVector_SequentialSeed(t *testing.T) {
	seed := seedN(32)
	message := []byte("test message")

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t, "03a107bff3ce10be1d70dd18e74bc09967e4d6309ba50d5f1ddc8664125531b8"), pub)

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t,
		"e7a1783d7f86e07c31f651f2cf57a378925525277d50331f2b3da54773e9b7c2bcb709e3ee3dae93ffd7b4375ca7ea5f1cd8919aa7dbfc96b2651905bed69708"),
		sig,
	)

	require.True(t, ed25519.Verify(pub, message, sig))
	require.False(t, ed25519.Verify(pub, []byte("test Message"), sig))
}

// RFC 8032 section 7.1 test vectors 1-3.
func TestSign_MatchesRFC8032Vectors(t *testing.T) {
	cases := []struct {
		name    string
		seed    string
		pub     string
		message []byte
		sig     string
	}{
		{
			name:    "vector 1, empty message",
			seed:    "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
			pub:     "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
			message: nil,
			sig:     "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		},
		{
			name:    "vector 2, one-byte message",
			seed:    "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
			pub:     "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
			message: []byte{0x72},
			sig:     "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
		},
		{
			name:    "vector 3, two-byte message",
			seed:    "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
			pub:     "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
			message: []byte{0xaf, 0x82},
			sig:     "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seed := decodeHex(t, c.seed)

			pub, err := ed25519.GeneratePublicKey(seed)
			require.NoError(t, err)
			require.Equal(t, decodeHex(t, c.pub), pub)

			sig, err := ed25519.Sign(seed, c.message)
			require.NoError(t, err)
			require.Equal(t, decodeHex(t, c.sig), sig)

			require.True(t, ed25519.Verify(pub, c.message, sig))
		})
	}
}

// TestSign_LongMessage exercises RFC 8032 section 7.1's fourth scenario, a
// message long enough to span several SHA-512 blocks, without relying on the
// official vector's literal bytes.
func TestSign_LongMessage(t *testing.T) {
	seed := seedN(32)
	message := make([]byte, 1023)
	for i := range message {
		message[i] = byte(i % 256)
	}

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t,
		"d51bb1ffae6020237e0bd98563589d872a546ea6289639aede2d8cc6bbbc79db81cf108bc51968e94561877ffbdce51cd27807003a6640ae7bb1d439acda9303"),
		sig,
	)

	require.True(t, ed25519.Verify(pub, message, sig))
	require.False(t, ed25519.Verify(pub, message[:1022], sig))
}

func TestSignVerify_RoundTrip(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("arbitrary payload")

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	require.True(t, ed25519.Verify(pub, message, sig))
}

func TestSign_IsDeterministic(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("same message every time")

	sig1, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	sig2, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	require.True(t, bytes.Equal(sig1, sig2))
}

func TestVerify_RejectsTamperedMessage(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, []byte("original"))
	require.NoError(t, err)

	require.False(t, ed25519.Verify(pub, []byte("tampered"), sig))
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("message")

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	sig[0] ^= 0xff
	require.False(t, ed25519.Verify(pub, message, sig))
}

func TestVerify_RejectsWrongLengths(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, []byte("x"))
	require.NoError(t, err)

	require.False(t, ed25519.Verify(pub[:31], []byte("x"), sig))
	require.False(t, ed25519.Verify(pub, []byte("x"), sig[:63]))
}

func TestVerify_RejectsNonCanonicalS(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("x")

	pub, err := ed25519.GeneratePublicKey(seed)
	require.NoError(t, err)

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	// L = 2^252 + 27742317777372353535851937790883648493. Setting S to
	// 2^256-1, an obviously non-canonical value, must be rejected outright.
	for i := range sig[32:64] {
		sig[32+i] = 0xff
	}

	require.False(t, ed25519.Verify(pub, message, sig))
}

func TestVerify_RejectsUndecodablePublicKey(t *testing.T) {
	seed := ed25519.GeneratePrivateKey()
	message := []byte("x")

	sig, err := ed25519.Sign(seed, message)
	require.NoError(t, err)

	bogus := bytes.Repeat([]byte{0xff}, ed25519.PublicKeySize)
	require.False(t, ed25519.Verify(bogus, message, sig))
}

func TestGeneratePublicKey_RejectsWrongSeedLength(t *testing.T) {
	_, err := ed25519.GeneratePublicKey(make([]byte, 31))
	require.Error(t, err)
}

func TestSign_RejectsWrongSeedLength(t *testing.T) {
	_, err := ed25519.Sign(make([]byte, 31), []byte("x"))
	require.Error(t, err)
}
