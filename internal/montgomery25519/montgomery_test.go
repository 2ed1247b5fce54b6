package montgomery25519_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FirasAleem/curve25519/internal/montgomery25519"
)

func decodeHex(t *testing.T, s string) [32]byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	var out [32]byte
	copy(out[:], b)

	return out
}

func basePoint() [32]byte {
	var b [32]byte
	b[0] = 9

	return b
}

// RFC 7748 section 5.2 test vector 1.
func TestLadder_RFC7748Vector1(t *testing.T) {
	scalar := decodeHex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := decodeHex(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")

	got := montgomery25519.Ladder(scalar, u)

	want := decodeHex(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")
	require.Equal(t, want, got)
}

// RFC 7748 section 5.2 test vector 2.
func TestLadder_RFC7748Vector2(t *testing.T) {
	scalar := decodeHex(t, "4b66e9d4d1b4673c5ad22691957d6af5c11b6421e0ea01d42ca4169e7918ba0d")
	u := decodeHex(t, "e5210f12786811d3f4b7959d0538ae2c31dbe7106fc03c3efc4cd549c715a493")

	got := montgomery25519.Ladder(scalar, u)

	want := decodeHex(t, "95cbde9476e8907d7aade45cb4b873f88b595a68799fa152e6f8f7647aac7957")
	require.Equal(t, want, got)
}

func TestLadder_IteratedOnce(t *testing.T) {
	got := montgomery25519.Ladder(basePoint(), basePoint())

	want := decodeHex(t, "422c8e7a6227d7bca1350b3e2bb7279f7897b87bb6854b783c60e80311ae3079")
	require.Equal(t, want, got)
}

func TestLadder_IteratedAThousandTimes(t *testing.T) {
	k := basePoint()
	u := basePoint()

	for i := 0; i < 1000; i++ {
		next := montgomery25519.Ladder(k, u)
		u = k
		k = next
	}

	want := decodeHex(t, "684cf59ba83309552800ef566f2f4d3c1c3887c49360e3875f2eb94d99532c51")
	require.Equal(t, want, k)
}

// TestLadder_IteratedAMillionTimes is RFC 7748 section 5.2's third
// iterated-composition checkpoint. It runs a million successive scalar
// multiplications and is skipped in short mode.
func TestLadder_IteratedAMillionTimes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping a million iterations of the ladder in short mode")
	}

	k := basePoint()
	u := basePoint()

	for i := 0; i < 1000000; i++ {
		next := montgomery25519.Ladder(k, u)
		u = k
		k = next
	}

	want := decodeHex(t, "7c3911e0ab2586fd864497297e575e6f3bc601c0883c30df5f4dd2d24f665424")
	require.Equal(t, want, k)
}

func TestLadderMatchesDoubleAndAdd(t *testing.T) {
	scalar := decodeHex(t, "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	u := basePoint()

	ladder := montgomery25519.Ladder(scalar, u)
	branchy := montgomery25519.DoubleAndAdd(scalar, u)

	require.Equal(t, ladder, branchy)
}

func TestClamp(t *testing.T) {
	var k [32]byte
	for i := range k {
		k[i] = 0xff
	}

	montgomery25519.Clamp(&k)

	require.Equal(t, byte(0xf8), k[0])
	require.Equal(t, byte(0x7f), k[31]&0x7f)
	require.Equal(t, byte(1), (k[31]>>6)&1)
	require.Equal(t, byte(0), k[31]>>7)
}
