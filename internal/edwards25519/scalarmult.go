// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import "math/big"

// ScalarMult returns scalar*p using a variable-time double-and-add from the
// most significant bit down. Its running time leaks the bit length and the
// Hamming weight of scalar, so it must only be used where scalar is not a
// secret: batch and single-signature verification.
func ScalarMult(scalar *big.Int, p Point) Point {
	result := Identity()

	for i := scalar.BitLen() - 1; i >= 0; i-- {
		result = result.Double()

		if scalar.Bit(i) == 1 {
			result = result.Add(p)
		}
	}

	return result
}

// scalarBits is the number of ladder steps ScalarMultConstTime always runs,
// regardless of the true bit length of the input. It covers every scalar
// that can occur in this package: clamped private scalars are below 2^255,
// and values reduced modulo L are below 2^253.
const scalarBits = 256

// ScalarMultConstTime returns scalar*p, always performing exactly scalarBits
// doublings and a branch-free Select at every step, so the sequence of field
// operations executed does not depend on scalar. It is used wherever scalar
// is a secret: deriving a public key and computing the nonce-times-base-point
// and the a*B term of a signature.
func ScalarMultConstTime(scalar *big.Int, p Point) Point {
	result := Identity()

	for i := scalarBits - 1; i >= 0; i-- {
		doubled := result.Double()
		added := doubled.Add(p)
		result = Select(byte(scalar.Bit(i)), added, doubled)
	}

	return result
}

// ScalarBaseMult returns scalar*B in constant time.
func ScalarBaseMult(scalar *big.Int) Point {
	return ScalarMultConstTime(scalar, B)
}

// DoubleScalarMult returns s*B + k*p, computed variable-time, so none of s,
// k, or p may carry secret information.
func DoubleScalarMult(s *big.Int, k *big.Int, p Point) Point {
	return ScalarMult(s, B).Add(ScalarMult(k, p))
}
