// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field25519 implements modular arithmetic over the prime field
// GF(2^255-19) underlying Curve25519 and Edwards25519.
package field25519

import (
	"fmt"
	"math/big"
)

// Size is the length in bytes of the canonical little-endian encoding of an Element.
const Size = 32

var (
	// p is the field modulus 2^255 - 19.
	p = mustInt("57896044618658097711785492504343953926634992332820282019728792003956564819949")

	// pMinus2 is used for Fermat-based inversion: a^(p-2) = a^-1 mod p.
	pMinus2 = new(big.Int).Sub(p, big.NewInt(2))

	// sqrtExponent is (p+3)/8, the exponent used to produce a candidate square root.
	sqrtExponent = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(3)), 3)

	// sqrtMinus1 is 2^((p-1)/4) mod p, used to fix up the candidate root when it is off by a factor of sqrt(-1).
	sqrtMinus1 = new(big.Int).Exp(big.NewInt(2), new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2), p)
)

func mustInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field25519: invalid constant " + s)
	}

	return i
}

// Element is a value in GF(2^255-19). The zero value is the field element 0.
// Elements are immutable from the caller's point of view: every operation returns
// a new, reduced Element and never mutates its receiver or arguments.
type Element struct {
	v *big.Int
}

// Zero returns the additive identity of the field.
func Zero() Element {
	return Element{v: new(big.Int)}
}

// One returns the multiplicative identity of the field.
func One() Element {
	return Element{v: big.NewInt(1)}
}

// fromBig reduces v modulo p and wraps it into an Element.
func fromBig(v *big.Int) Element {
	r := new(big.Int).Mod(v, p)
	return Element{v: r}
}

// FromBytes decodes a 32-byte little-endian encoding into a canonical Element.
// It returns an error if the encoded integer is not strictly less than p.
func FromBytes(b []byte) (Element, error) {
	if len(b) != Size {
		return Element{}, fmt.Errorf("field25519: invalid encoding length %d", len(b))
	}

	v := littleEndianToInt(b)
	if v.Cmp(p) >= 0 {
		return Element{}, fmt.Errorf("field25519: encoded value is not canonical")
	}

	return Element{v: v}, nil
}

// FromBytesReduced decodes a 32-byte little-endian integer and reduces it
// modulo p, accepting any 32-byte value rather than requiring canonicality.
// This matches RFC 7748 section 5's treatment of the u-coordinate input.
func FromBytesReduced(b []byte) (Element, error) {
	if len(b) != Size {
		return Element{}, fmt.Errorf("field25519: invalid encoding length %d", len(b))
	}

	return fromBig(littleEndianToInt(b)), nil
}

// FromUint64 builds the Element representing the small non-negative integer n.
func FromUint64(n uint64) Element {
	return Element{v: new(big.Int).SetUint64(n)}
}

// FromDecimal builds the Element represented by the base-10 string s,
// reduced modulo p. It panics if s is not a valid base-10 integer; it is
// intended for initializing package-level constants.
func FromDecimal(s string) Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field25519: invalid decimal constant " + s)
	}

	return fromBig(v)
}

// Bytes returns the canonical 32-byte little-endian encoding of e.
func (e Element) Bytes() [Size]byte {
	var out [Size]byte

	v := e.val()
	b := v.Bytes() // big-endian, no leading zeros

	for i := 0; i < len(b); i++ {
		out[i] = b[len(b)-1-i]
	}

	return out
}

// val returns the canonical, reduced big.Int backing e, defaulting to zero.
func (e Element) val() *big.Int {
	if e.v == nil {
		return new(big.Int)
	}

	return e.v
}

func littleEndianToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}

	return new(big.Int).SetBytes(be)
}

// Add returns e + o mod p.
func (e Element) Add(o Element) Element {
	return fromBig(new(big.Int).Add(e.val(), o.val()))
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) Element {
	return fromBig(new(big.Int).Sub(e.val(), o.val()))
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) Element {
	return fromBig(new(big.Int).Mul(e.val(), o.val()))
}

// Square returns e * e mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return fromBig(new(big.Int).Neg(e.val()))
}

// Invert returns the multiplicative inverse of e, computed as e^(p-2) mod p
// by Fermat's little theorem. Invert of zero returns zero.
func (e Element) Invert() Element {
	return fromBig(new(big.Int).Exp(e.val(), pMinus2, p))
}

// MulSmall returns e * n mod p for a small non-negative integer n, e.g. the
// curve constant a24 or the cofactor 8.
func (e Element) MulSmall(n uint64) Element {
	return e.Mul(FromUint64(n))
}

// Sqrt attempts to find a square root of e in the field, following the
// candidate-and-correct approach of RFC 8032: a candidate r = e^((p+3)/8) is
// computed, then corrected by the field's fourth root of unity if necessary.
// The second return value reports whether a, and therefore a square root, exists.
func (e Element) Sqrt() (Element, bool) {
	candidate := fromBig(new(big.Int).Exp(e.val(), sqrtExponent, p))

	if candidate.Square().Equal(e) {
		return candidate, true
	}

	adjusted := candidate.Mul(Element{v: sqrtMinus1})
	if adjusted.Square().Equal(e) {
		return adjusted, true
	}

	return Element{}, false
}

// Equal reports whether e and o represent the same field element.
func (e Element) Equal(o Element) bool {
	return e.val().Cmp(o.val()) == 0
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.val().Sign() == 0
}

// IsNegative reports the parity (least significant bit) of the canonical
// representative of e, used as the "sign" bit in Edwards point encoding.
func (e Element) IsNegative() bool {
	return e.val().Bit(0) == 1
}
