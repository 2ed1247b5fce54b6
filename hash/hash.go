// Package hash provides an interface to hashing functions.
//
// Ed25519 is defined in terms of a single hash function, SHA-512, used both
// for key derivation and in signing and verification; this package offers
// just enough of an API around it to keep call sites uniform with the rest
// of the module's Identifier-based registries.
package hash

import "crypto/sha512"

// Identifier defines registered hashing engines for use in the implementation.
type Identifier byte

const (
	// SHA512 identifies the SHA-2 hashing function with 512 bit output.
	SHA512 Identifier = 1 + iota

	// Default hash to use.
	Default = SHA512
)

// String returns the hash function's common name.
func (i Identifier) String() string {
	switch i {
	case SHA512:
		return "SHA512"
	default:
		return "unknown"
	}
}

// OutputSize returns the hash function's output size in bytes.
func (i Identifier) OutputSize() int {
	return sha512.Size
}

// Sum returns the hash of the concatenation of the input slices.
func (i Identifier) Sum(input ...[]byte) []byte {
	h := sha512.New()

	for _, in := range input {
		_, _ = h.Write(in)
	}

	return h.Sum(nil)
}
