// Package signature provides an additional abstraction and modularity to digital signature schemes of built-in implementations
package signature

import (
	"github.com/FirasAleem/curve25519/ed25519"
	"github.com/FirasAleem/curve25519/signature/internal"
)

// Identifier indicates the signature scheme to be used.
type Identifier byte

const (
	// Ed25519 indicates usage of the Ed25519 signature scheme.
	Ed25519 Identifier = iota + 1
)

// Signature abstracts digital signature operations, wrapping this module's
// own implementations.
type Signature interface {
	// GenerateKey generates a fresh signing key and keeps it internally.
	GenerateKey()

	// GetPrivateKey returns the private key.
	GetPrivateKey() []byte

	// GetPublicKey returns the public key.
	GetPublicKey() []byte

	// SetPrivateKey loads the given private key and sets the public key accordingly.
	SetPrivateKey(privateKey []byte)

	// SignMessage uses the internal private key to sign the message. The message argument doesn't need to be hashed beforehand.
	SignMessage(message ...[]byte) []byte

	// Verify checks whether signature of the message is valid given the public key.
	Verify(publicKey, message, signature []byte) bool
}

// New returns a Signature implementation to the specified scheme.
func (i Identifier) New() Signature {
	switch i {
	case Ed25519:
		return internal.NewEd25519()
	default:
		panic("invalid identifier")
	}
}

// Sign returns the signature of message (concatenated, if using a variadic argument) using secretKey.
func (i Identifier) Sign(secretKey []byte, message ...[]byte) []byte {
	s := i.New()
	s.SetPrivateKey(secretKey)

	return s.SignMessage(message...)
}

// Verify checks whether signature of the message is valid given the public key.
func (i Identifier) Verify(publicKey, message, signature []byte) bool {
	return i.New().Verify(publicKey, message, signature)
}

// VerifyBatch checks a set of signatures of the identified scheme at once,
// which is more efficient than verifying each individually.
func (i Identifier) VerifyBatch(entries []ed25519.BatchEntry) bool {
	switch i {
	case Ed25519:
		return ed25519.VerifyBatch(entries)
	default:
		panic("invalid identifier")
	}
}
