// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/FirasAleem/curve25519/hash"
	"github.com/FirasAleem/curve25519/internal/edwards25519"
	"github.com/FirasAleem/curve25519/internal/scalar25519"
)

// BatchEntry is one (public key, message, signature) triple submitted to
// VerifyBatch.
type BatchEntry struct {
	PublicKey []byte
	Message   []byte
	Signature []byte
}

// zeta is the length, in bytes, of the random per-entry weight used by
// VerifyBatch. 16 bytes gives a forgery advantage of at most 2^-128 for an
// attacker who can only win by having two distinct weighted sums collide.
const zeta = 16

// VerifyBatch checks a set of Ed25519 signatures at once using the random
// linear combination technique: each entry is scaled by an independently
// sampled weight before being accumulated, so that a single forged signature
// cannot cancel against the others except with negligible probability. It
// reports false if any entry is malformed or if the combined check fails;
// it does not report which individual entry was invalid.
func VerifyBatch(entries []BatchEntry) bool {
	if len(entries) == 0 {
		return true
	}

	sumS := big.NewInt(0)
	rhs := edwards25519.Identity()

	for _, e := range entries {
		if len(e.PublicKey) != PublicKeySize || len(e.Signature) != SignatureSize {
			return false
		}

		var encodedA [32]byte
		copy(encodedA[:], e.PublicKey)

		A, err := edwards25519.Decode(encodedA)
		if err != nil {
			return false
		}

		var encodedR [32]byte
		copy(encodedR[:], e.Signature[:32])

		R, err := edwards25519.Decode(encodedR)
		if err != nil {
			return false
		}

		S, ok := scalar25519.FromCanonicalBytes(e.Signature[32:64])
		if !ok {
			return false
		}

		k := scalar25519.ReduceWideBytes(hash.SHA512.Sum(encodedR[:], e.PublicKey, e.Message))

		z := randomWeight()

		zs := new(big.Int).Mul(z, S.BigInt())
		sumS.Add(sumS, zs)

		zk := new(big.Int).Mul(z, k.BigInt())
		term := edwards25519.ScalarMult(z, R).Add(edwards25519.ScalarMult(zk, A))
		rhs = rhs.Add(term)
	}

	sumS.Mod(sumS, scalar25519.L)

	lhs := edwards25519.ScalarMult(s8(sumS), edwards25519.B)
	rhs = rhs.Double().Double().Double()

	return lhs.Equal(rhs)
}

// randomWeight samples a non-zero random weight for one batch entry. A
// result of zero would let that entry's terms vanish from the combination
// entirely, silently skipping its verification, so a zero draw is remapped
// to one instead of being retried.
func randomWeight() *big.Int {
	b := make([]byte, zeta)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Errorf("ed25519: sampling batch weight: %w", err))
	}

	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}

	z := new(big.Int).SetBytes(be)
	if z.Sign() == 0 {
		return big.NewInt(1)
	}

	return z
}
