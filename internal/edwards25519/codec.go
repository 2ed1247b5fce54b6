// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import (
	"fmt"

	"github.com/FirasAleem/curve25519/internal/field25519"
)

// Decode reconstructs a Point from its canonical 32-byte little-endian
// encoding, following RFC 8032 section 5.1.3: the top bit of the last byte
// carries the sign of x, and the remaining 255 bits must be the canonical
// encoding of y. It returns an error if y is not canonical, if
// x^2 = (y^2-1)/(d*y^2+1) has no square root modulo p, or if the recovered
// x is zero but the sign bit
// demands a negative x.
func Decode(b [32]byte) (Point, error) {
	sign := b[31] >> 7
	b[31] &= 0x7f

	y, err := field25519.FromBytes(b[:])
	if err != nil {
		return Point{}, fmt.Errorf("edwards25519: invalid point encoding: %w", err)
	}

	ySquared := y.Square()
	numerator := ySquared.Sub(field25519.One())
	denominator := d.Mul(ySquared).Add(field25519.One())

	xSquared := numerator.Mul(denominator.Invert())

	x, ok := xSquared.Sqrt()
	if !ok {
		return Point{}, fmt.Errorf("edwards25519: invalid point encoding: not on curve")
	}

	if x.IsZero() && sign == 1 {
		return Point{}, fmt.Errorf("edwards25519: invalid point encoding: negative zero")
	}

	if x.IsNegative() != (sign == 1) {
		x = x.Neg()
	}

	return Point{
		X: x,
		Y: y,
		Z: field25519.One(),
		T: x.Mul(y),
	}, nil
}
