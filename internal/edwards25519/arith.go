// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

// Add computes p+q using the Hisil-Wong-Carter-Dawson unified addition
// formula for twisted Edwards curves with a = -1. It is "unified" in that
// the same formula handles doubling and the identity correctly, at the cost
// of being slower than the dedicated doubling formula in Double.
func (p Point) Add(q Point) Point {
	a := p.Y.Sub(p.X).Mul(q.Y.Sub(q.X))
	b := p.Y.Add(p.X).Mul(q.Y.Add(q.X))
	c := p.T.Mul(twoD).Mul(q.T)
	dd := p.Z.Mul(q.Z).Add(p.Z.Mul(q.Z))

	e := b.Sub(a)
	f := dd.Sub(c)
	g := dd.Add(c)
	h := b.Add(a)

	return Point{
		X: e.Mul(f),
		Y: g.Mul(h),
		Z: f.Mul(g),
		T: e.Mul(h),
	}
}

// Double computes p+p using the dedicated doubling formula for a = -1
// twisted Edwards curves, cheaper than calling Add(p).
func (p Point) Double() Point {
	a := p.X.Square()
	b := p.Y.Square()
	c := p.Z.Square().Add(p.Z.Square())
	ab := a.Add(b)

	e := p.X.Add(p.Y).Square().Sub(ab)
	g := b.Sub(a)
	f := g.Sub(c)
	h := ab.Neg()

	return Point{
		X: e.Mul(f),
		Y: g.Mul(h),
		Z: f.Mul(g),
		T: e.Mul(h),
	}
}
