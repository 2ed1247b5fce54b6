// Package encoding provides persistence for generated key material.
package encoding

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/FirasAleem/curve25519/signature"
)

// KeyBundle is the on-disk representation of a generated key pair, as
// written by the command-line key-generation driver and read back by the
// signing and verification drivers.
type KeyBundle struct {
	// Algorithm identifies which signature.Identifier the key pair belongs to.
	Algorithm signature.Identifier `msgpack:"algorithm"`

	// PrivateKey is the scheme-specific private key or seed.
	PrivateKey []byte `msgpack:"private_key"`

	// PublicKey is the scheme-specific public key.
	PublicKey []byte `msgpack:"public_key"`
}

// Marshal encodes the bundle using MessagePack.
func (k *KeyBundle) Marshal() ([]byte, error) {
	return msgpack.Marshal(k)
}

// UnmarshalKeyBundle decodes a MessagePack-encoded KeyBundle.
func UnmarshalKeyBundle(encoded []byte) (*KeyBundle, error) {
	bundle := new(KeyBundle)
	if err := msgpack.Unmarshal(encoded, bundle); err != nil {
		return nil, err
	}

	return bundle, nil
}
