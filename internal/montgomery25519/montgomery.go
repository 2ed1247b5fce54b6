// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package montgomery25519 implements x-coordinate-only arithmetic on the
// Montgomery form of Curve25519, as used by X25519 (RFC 7748).
package montgomery25519

import "github.com/FirasAleem/curve25519/internal/field25519"

// a24 is (A+2)/4 for the Curve25519 Montgomery coefficient A = 486662.
const a24 = 121665

// Point is a Montgomery curve point in projective XZ coordinates, where
// u = X/Z. The point at infinity is represented as (1 : 0), following the
// convention used by the ladder's initial state.
type Point struct {
	X, Z field25519.Element
}

// infinity returns the point at infinity in XZ coordinates.
func infinity() Point {
	return Point{X: field25519.One(), Z: field25519.Zero()}
}

// xDBL doubles a Montgomery point using only its x-coordinate.
func xDBL(p Point) Point {
	a := p.X.Add(p.Z)
	aa := a.Square()
	b := p.X.Sub(p.Z)
	bb := b.Square()
	e := aa.Sub(bb)

	x2 := aa.Mul(bb)
	z2 := e.Mul(aa.Add(e.MulSmall(a24)))

	return Point{X: x2, Z: z2}
}

// xADD computes p+q given the known difference diff = p-q, using only x-coordinates.
func xADD(p, q, diff Point) Point {
	a := p.X.Add(p.Z)
	b := p.X.Sub(p.Z)
	c := q.X.Add(q.Z)
	d := q.X.Sub(q.Z)

	da := d.Mul(a)
	cb := c.Mul(b)

	x3 := da.Add(cb).Square()
	z3 := diff.X.Mul(da.Sub(cb).Square())

	return Point{X: x3, Z: z3}
}

// bit returns bit t (0 = least significant) of the little-endian 32-byte scalar k.
func bit(k [32]byte, t int) byte {
	return (k[t/8] >> uint(t%8)) & 1
}

// condSwap conditionally swaps the canonical encodings of a and b in constant
// time: when swap is 1 every byte is exchanged via a branch-free mask, when
// swap is 0 neither changes. This is the "mask = -bit" recipe applied to the
// 32-byte encoding of each field element in place of raw machine limbs.
func condSwap(swap byte, a, b *field25519.Element) {
	mask := -(swap & 1)

	ab := a.Bytes()
	bb := b.Bytes()

	for i := range ab {
		t := mask & (ab[i] ^ bb[i])
		ab[i] ^= t
		bb[i] ^= t
	}

	// FromBytes never fails here: both ab and bb are already-canonical
	// encodings of field elements, merely with bytes exchanged.
	*a, _ = field25519.FromBytes(ab[:])
	*b, _ = field25519.FromBytes(bb[:])
}

// decodeU decodes the 32-byte little-endian u-coordinate per RFC 7748 section
// 5: the most significant bit of the last byte is masked off, and the
// resulting (possibly non-canonical) 255-bit value is reduced modulo p.
func decodeU(u [32]byte) field25519.Element {
	u[31] &= 0x7f

	e, _ := field25519.FromBytesReduced(u[:])

	return e
}

// Clamp applies the RFC 7748 section 5 clamping transformation to a 32-byte
// scalar in place: clearing the low 3 bits, clearing the top bit, and setting
// bit 254.
func Clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// Ladder implements the constant-shape Montgomery ladder of RFC 7748 section
// 5: the conditional swap is performed with a branch-free mask derived from
// the accumulated XOR of consecutive scalar bits, so the sequence of field
// operations executed is identical for every scalar of the same bit length.
func Ladder(scalar, u [32]byte) [32]byte {
	Clamp(&scalar)
	x1 := decodeU(u)

	r0 := infinity()
	r1 := Point{X: x1, Z: field25519.One()}

	var swap byte

	for t := 254; t >= 0; t-- {
		kt := bit(scalar, t)
		swap ^= kt

		condSwap(swap, &r0.X, &r1.X)
		condSwap(swap, &r0.Z, &r1.Z)

		swap = kt

		diff := Point{X: x1, Z: field25519.One()}
		nr0 := xDBL(r0)
		nr1 := xADD(r0, r1, diff)
		r0, r1 = nr0, nr1
	}

	condSwap(swap, &r0.X, &r1.X)
	condSwap(swap, &r0.Z, &r1.Z)

	return encode(r0)
}

// DoubleAndAdd implements the same recurrence as Ladder but selects the
// working pair with an ordinary conditional branch instead of a constant-time
// mask. It is mathematically identical to Ladder bit for bit and byte for
// byte, but its running time depends on the scalar, which is why it is
// offered only for educational comparison and never as the default.
func DoubleAndAdd(scalar, u [32]byte) [32]byte {
	Clamp(&scalar)
	x1 := decodeU(u)

	r0 := infinity()
	r1 := Point{X: x1, Z: field25519.One()}

	for t := 254; t >= 0; t-- {
		kt := bit(scalar, t)

		if kt == 1 {
			r0, r1 = r1, r0
		}

		diff := Point{X: x1, Z: field25519.One()}
		nr0 := xDBL(r0)
		nr1 := xADD(r0, r1, diff)
		r0, r1 = nr0, nr1

		if kt == 1 {
			r0, r1 = r1, r0
		}
	}

	return encode(r0)
}

// encode normalizes p to its affine u-coordinate and returns its canonical
// 32-byte little-endian encoding.
func encode(p Point) [32]byte {
	u := p.X.Mul(p.Z.Invert())
	return u.Bytes()
}
