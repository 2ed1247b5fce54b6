// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package x25519 implements the X25519 Diffie-Hellman function over the
// Montgomery form of Curve25519, as specified in RFC 7748.
package x25519

import (
	"crypto/rand"
	"fmt"

	"github.com/FirasAleem/curve25519/internal/montgomery25519"
)

// Size is the length in bytes of a private key, a public key, and a shared secret.
const Size = 32

// basePoint is the u-coordinate 9 of the Curve25519 base point.
var basePoint = [Size]byte{9}

// Mode selects the scalar multiplication strategy used to evaluate X25519.
// Both modes compute the same function and agree byte for byte; they differ
// only in their timing behavior.
type Mode byte

const (
	// Ladder evaluates the scalar multiplication with the constant-shape
	// Montgomery ladder of RFC 7748 section 5. This is the default and the
	// only mode that should be used when either input may be secret.
	Ladder Mode = 1 + iota

	// DoubleAndAdd evaluates the same recurrence with an ordinary branch
	// instead of a constant-time conditional swap, offered for educational
	// comparison against Ladder. Its running time depends on the scalar, so
	// it must not be used with a secret scalar outside of testing.
	DoubleAndAdd
)

// ScalarMultiply computes scalar*u and returns the resulting 32-byte
// u-coordinate, using the strategy selected by m.
func (m Mode) ScalarMultiply(scalar, u []byte) ([]byte, error) {
	k, err := to32(scalar)
	if err != nil {
		return nil, err
	}

	p, err := to32(u)
	if err != nil {
		return nil, err
	}

	var out [Size]byte

	switch m {
	case DoubleAndAdd:
		out = montgomery25519.DoubleAndAdd(k, p)
	default:
		out = montgomery25519.Ladder(k, p)
	}

	return out[:], nil
}

func to32(b []byte) ([Size]byte, error) {
	var out [Size]byte

	if len(b) != Size {
		return out, errInvalidLength
	}

	copy(out[:], b)

	return out, nil
}

// ScalarMultiply computes scalar*u with the default (Ladder) mode.
func ScalarMultiply(scalar, u []byte) ([]byte, error) {
	return Ladder.ScalarMultiply(scalar, u)
}

// GeneratePrivateKey returns a fresh, uniformly random 32-byte private key.
// Clamping is applied by the scalar multiplication routines, not here, so
// that the returned bytes match what RFC 7748 calls the "random" private
// key input.
func GeneratePrivateKey() []byte {
	private := make([]byte, Size)
	if _, err := rand.Read(private); err != nil {
		panic(fmt.Errorf("x25519: generating private key: %w", err))
	}

	return private
}

// GeneratePublicKey computes the public key corresponding to private,
// i.e. private*9, using the default Ladder mode.
func GeneratePublicKey(private []byte) ([]byte, error) {
	return Ladder.ScalarMultiply(private, basePoint[:])
}
