// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import "github.com/FirasAleem/curve25519/internal/field25519"

// d is the twisted Edwards curve parameter -121665/121666 mod p.
var d = field25519.FromDecimal(
	"37095705934669439343138083508754565189542113879843219016388785533085940283555",
)

// twoD is 2*d, used by the unified addition formula.
var twoD = d.Add(d)

// B is the standard Ed25519 base point, given in the RFC 8032 affine
// coordinates and lifted into extended projective form.
var B = Point{
	X: field25519.FromDecimal(
		"15112221349535400772501151409588531511454012693041857206046113283949847762202",
	),
	Y: field25519.FromDecimal(
		"46316835694926478169428394003475163141307993866256225615783033603165251855960",
	),
	Z: field25519.One(),
	T: field25519.FromDecimal(
		"15112221349535400772501151409588531511454012693041857206046113283949847762202",
	).Mul(field25519.FromDecimal(
		"46316835694926478169428394003475163141307993866256225615783033603165251855960",
	)),
}
