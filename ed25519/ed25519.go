// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ed25519 implements the Ed25519 signature scheme over the twisted
// Edwards form of Curve25519, as specified in RFC 8032.
package ed25519

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/FirasAleem/curve25519/hash"
	"github.com/FirasAleem/curve25519/internal/edwards25519"
	"github.com/FirasAleem/curve25519/internal/scalar25519"
)

// SeedSize is the length in bytes of a private key seed.
const SeedSize = 32

// PublicKeySize is the length in bytes of an encoded public key.
const PublicKeySize = 32

// SignatureSize is the length in bytes of an encoded signature.
const SignatureSize = 64

// GeneratePrivateKey returns a fresh, uniformly random 32-byte seed. The seed
// is the value stored and transmitted as a private key; SHA-512 of it is
// expanded into the clamped scalar and nonce prefix at the point of use.
func GeneratePrivateKey() []byte {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		panic(fmt.Errorf("ed25519: generating seed: %w", err))
	}

	return seed
}

// expand splits SHA-512(seed) into the clamped secret scalar a and the nonce
// prefix used to derive per-message randomness.
func expand(seed []byte) (a *big.Int, prefix []byte) {
	h := hash.SHA512.Sum(seed)

	var clamped [32]byte
	copy(clamped[:], h[:32])
	scalar25519.Clamp(&clamped)

	return scalar25519.ClampedScalarFromSeed(clamped), h[32:64]
}

// GeneratePublicKey computes the 32-byte public key corresponding to seed.
func GeneratePublicKey(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errInvalidSeedSize
	}

	a, _ := expand(seed)
	A := edwards25519.ScalarBaseMult(a)
	encoded := A.Encode()

	return encoded[:], nil
}

// Sign computes the Ed25519 signature of message under the private key
// derived from seed.
func Sign(seed, message []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errInvalidSeedSize
	}

	a, prefix := expand(seed)

	A := edwards25519.ScalarBaseMult(a)
	publicKey := A.Encode()

	r := scalar25519.ReduceWideBytes(hash.SHA512.Sum(prefix, message))
	R := edwards25519.ScalarMultConstTime(r.BigInt(), edwards25519.B)
	encodedR := R.Encode()

	k := scalar25519.ReduceWideBytes(hash.SHA512.Sum(encodedR[:], publicKey[:], message))

	s := r.Add(k.Mul(scalar25519.FromBigInt(a)))
	encodedS := s.Bytes()

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, encodedR[:]...)
	sig = append(sig, encodedS[:]...)

	return sig, nil
}

// Verify reports whether signature is a valid Ed25519 signature of message
// under publicKey. It implements the cofactored verification equation
// 8*S*B == 8*R + 8*k*A, which accepts a strictly larger set of signatures
// than the cofactorless check of RFC 8032 section 5.1.7 but matches the
// behavior of most deployed Ed25519 verifiers, including libsodium's default.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}

	var encodedA [32]byte
	copy(encodedA[:], publicKey)

	A, err := edwards25519.Decode(encodedA)
	if err != nil {
		return false
	}

	var encodedR [32]byte
	copy(encodedR[:], signature[:32])

	R, err := edwards25519.Decode(encodedR)
	if err != nil {
		return false
	}

	var encodedS [32]byte
	copy(encodedS[:], signature[32:64])

	S, ok := scalar25519.FromCanonicalBytes(encodedS[:])
	if !ok {
		return false
	}

	k := scalar25519.ReduceWideBytes(hash.SHA512.Sum(encodedR[:], publicKey, message))

	lhs := edwards25519.ScalarMult(s8(S.BigInt()), edwards25519.B)

	rhs := R.Add(edwards25519.ScalarMult(k.BigInt(), A))
	rhs = rhs.Double().Double().Double()

	return lhs.Equal(rhs)
}

// s8 returns 8*v, used to apply the cofactor to the S*B side of the
// verification equation before comparing against the cofactor-multiplied
// right-hand side.
func s8(v *big.Int) *big.Int {
	return new(big.Int).Lsh(v, 3)
}
