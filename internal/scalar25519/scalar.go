// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package scalar25519 implements arithmetic modulo L, the prime order of the
// Ed25519 base-point subgroup, plus the little-endian scalar encoding and
// clamping rules shared by X25519 and Ed25519.
package scalar25519

import "math/big"

// Size is the length in bytes of the canonical little-endian scalar encoding.
const Size = 32

// L is the prime order of the Ed25519 base-point subgroup:
// 2^252 + 27742317777372353535851937790883648493.
var L = mustInt("7237005577332262213973186563042994240857116359379907606001950938285454250989")

func mustInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("scalar25519: invalid constant " + s)
	}

	return i
}

// Scalar is an integer modulo L. The zero value is the scalar 0.
type Scalar struct {
	v *big.Int
}

func (s Scalar) val() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}

	return s.v
}

func fromBig(v *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(v, L)}
}

// Zero returns the scalar 0.
func Zero() Scalar {
	return Scalar{v: new(big.Int)}
}

// FromUint64 returns the scalar representing the small non-negative integer n.
func FromUint64(n uint64) Scalar {
	return Scalar{v: new(big.Int).SetUint64(n)}
}

// FromBigInt reduces v modulo L and returns the resulting Scalar. It is used
// to bring an unreduced clamped scalar, as produced by ClampedScalarFromSeed,
// back into the mod-L ring for the final addition step of signing.
func FromBigInt(v *big.Int) Scalar {
	return fromBig(v)
}

// ReduceWideBytes interprets b as a little-endian integer (typically the
// 64-byte output of SHA-512) and reduces it modulo L. This implements the
// "mod L" step used to derive the nonce r and the challenge k in Ed25519.
func ReduceWideBytes(b []byte) Scalar {
	return fromBig(leToInt(b))
}

// FromCanonicalBytes decodes a 32-byte little-endian scalar, rejecting any
// encoding whose integer value is not strictly less than L. This is the
// canonicality check RFC 8032 requires of the S component of a signature.
func FromCanonicalBytes(b []byte) (Scalar, bool) {
	if len(b) != Size {
		return Scalar{}, false
	}

	v := leToInt(b)
	if v.Cmp(L) >= 0 {
		return Scalar{}, false
	}

	return Scalar{v: v}, true
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [Size]byte {
	var out [Size]byte

	v := s.val()
	b := v.Bytes()

	for i := 0; i < len(b); i++ {
		out[i] = b[len(b)-1-i]
	}

	return out
}

// BigInt returns the non-negative, canonical integer value of s as a *big.Int.
// The caller must not mutate the returned value.
func (s Scalar) BigInt() *big.Int {
	return s.val()
}

// Add returns s + o mod L.
func (s Scalar) Add(o Scalar) Scalar {
	return fromBig(new(big.Int).Add(s.val(), o.val()))
}

// Sub returns s - o mod L.
func (s Scalar) Sub(o Scalar) Scalar {
	return fromBig(new(big.Int).Sub(s.val(), o.val()))
}

// Mul returns s * o mod L.
func (s Scalar) Mul(o Scalar) Scalar {
	return fromBig(new(big.Int).Mul(s.val(), o.val()))
}

// Neg returns -s mod L.
func (s Scalar) Neg() Scalar {
	return fromBig(new(big.Int).Neg(s.val()))
}

// Invert returns the multiplicative inverse of s modulo L, computed by
// Fermat's little theorem since L is prime.
func (s Scalar) Invert() Scalar {
	lMinus2 := new(big.Int).Sub(L, big.NewInt(2))
	return fromBig(new(big.Int).Exp(s.val(), lMinus2, L))
}

// Equal reports whether s and o represent the same residue modulo L.
func (s Scalar) Equal(o Scalar) bool {
	return s.val().Cmp(o.val()) == 0
}

// IsZero reports whether s is the zero residue.
func (s Scalar) IsZero() bool {
	return s.val().Sign() == 0
}

func leToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}

	return new(big.Int).SetBytes(be)
}

// Clamp applies the RFC 7748 / RFC 8032 clamping transformation to a 32-byte
// scalar in place: clearing the low 3 bits, clearing the top bit, and setting
// bit 254. For X25519 this is applied directly to the private key bytes; for
// Ed25519 it is applied to the lower half of SHA-512(seed).
func Clamp(b *[32]byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// ClampedScalarFromSeed converts the already-clamped 32 bytes b to a *big.Int
// without taking them modulo L: clamped scalars are integers below 2^255,
// which are only ever used unreduced as exponents, matching the source
// material's "a = int.from_bytes(key, little)" step.
func ClampedScalarFromSeed(b [32]byte) *big.Int {
	return leToInt(b[:])
}
