// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards25519 implements the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 underlying Ed25519, in extended projective
// coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z and X*Y = Z*T.
package edwards25519

import "github.com/FirasAleem/curve25519/internal/field25519"

// Point is a curve point in extended projective coordinates. The zero value
// is not a valid point; use Identity or Decode to obtain one.
type Point struct {
	X, Y, Z, T field25519.Element
}

// Identity returns the neutral element (0, 1) in extended coordinates.
func Identity() Point {
	return Point{
		X: field25519.Zero(),
		Y: field25519.One(),
		Z: field25519.One(),
		T: field25519.Zero(),
	}
}

// Negate returns -p.
func (p Point) Negate() Point {
	return Point{
		X: p.X.Neg(),
		Y: p.Y,
		Z: p.Z,
		T: p.T.Neg(),
	}
}

// Equal reports whether p and q represent the same affine point, comparing
// by cross-multiplication so that neither side needs to be normalized first.
func (p Point) Equal(q Point) bool {
	xp := p.X.Mul(q.Z)
	xq := q.X.Mul(p.Z)
	yp := p.Y.Mul(q.Z)
	yq := q.Y.Mul(p.Z)

	return xp.Equal(xq) && yp.Equal(yq)
}

// IsIdentity reports whether p represents the neutral element.
func (p Point) IsIdentity() bool {
	return p.Equal(Identity())
}

// normalize returns the affine (x, y) coordinates of p.
func (p Point) normalize() (x, y field25519.Element) {
	zInv := p.Z.Invert()
	return p.X.Mul(zInv), p.Y.Mul(zInv)
}

// Encode returns the canonical 32-byte little-endian encoding of p: the
// y-coordinate with the sign of x folded into the unused top bit.
func (p Point) Encode() [32]byte {
	x, y := p.normalize()

	out := y.Bytes()
	if x.IsNegative() {
		out[31] |= 0x80
	}

	return out
}

// selectElement returns x if cond is 1 and y if cond is 0, in constant time.
func selectElement(cond byte, x, y field25519.Element) field25519.Element {
	mask := -(cond & 1)

	xb := x.Bytes()
	yb := y.Bytes()

	var out [32]byte
	for i := range xb {
		out[i] = yb[i] ^ (mask & (xb[i] ^ yb[i]))
	}

	e, _ := field25519.FromBytes(out[:])

	return e
}

// Select returns a if cond is 1 and b if cond is 0, in constant time: every
// coordinate is chosen with a branch-free byte mask rather than a Go if.
func Select(cond byte, a, b Point) Point {
	return Point{
		X: selectElement(cond, a.X, b.X),
		Y: selectElement(cond, a.Y, b.Y),
		Z: selectElement(cond, a.Z, b.Z),
		T: selectElement(cond, a.T, b.T),
	}
}
