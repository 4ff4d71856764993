// seehuhn.de/go/fctx - fixed-point vector rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fctx

import "math/bits"

// edge walks a line segment one scan row at a time.
//
// Rows are spaced rowUnit fixed-point sub-units apart.  Row k samples the
// segment at y = k*rowUnit, and x is the smallest column c with
// c*rowUnit >= the exact intersection.  The fractional part of x is kept
// as errorTerm/denominator so that stepping needs no division.
type edge struct {
	x, y   int64
	height int64 // rows left to visit

	xStep       int64
	numerator   int64
	denominator int64
	errorTerm   int64
}

// newEdge prepares the walk from top to bottom, where top.Y <= bottom.Y.
// Segments which do not cross a sample row get height 0.
func newEdge(top, bottom Point, rowUnit int64) edge {
	var e edge
	e.y = fixedCeil(int64(top.Y), rowUnit)
	e.height = fixedCeil(int64(bottom.Y), rowUnit) - e.y
	if e.height <= 0 {
		e.height = 0
		return e
	}

	dN := int64(bottom.Y) - int64(top.Y)
	dM := int64(bottom.X) - int64(top.X)
	den := dN * rowUnit

	// x = ceil((dM*(e.y*rowUnit - top.Y) + dN*top.X) / den).  The whole
	// columns of top.X are split off first, so that no product exceeds
	// 2^40 in magnitude.
	qx, rx := floorDivMod(int64(top.X), rowUnit)
	frac := e.y*rowUnit - int64(top.Y) // in [0, rowUnit)
	x, rem := floorDivMod(dM*frac+dN*rx-1+den, den)
	e.x, e.errorTerm = qx+x, rem
	e.xStep, e.numerator = floorDivMod(dM*rowUnit, den)
	e.denominator = den
	return e
}

func (e *edge) step() {
	e.x += e.xStep
	e.y++
	e.height--
	e.errorTerm += e.numerator
	if e.errorTerm >= e.denominator {
		e.x++
		e.errorTerm -= e.denominator
	}
}

// skipTo advances the edge to row y, or to its end if that comes first.
// The result is the same as calling step once per row.
func (e *edge) skipTo(y int64) {
	k := min(y-e.y, e.height)
	if k <= 0 {
		return
	}
	// k*numerator can exceed 64 bits for very tall edges
	hi, lo := bits.Mul64(uint64(k), uint64(e.numerator))
	carry, rem := bits.Div64(hi, lo, uint64(e.denominator))
	e.x += k*e.xStep + int64(carry)
	e.errorTerm += int64(rem)
	if e.errorTerm >= e.denominator {
		e.x++
		e.errorTerm -= e.denominator
	}
	e.y += k
	e.height -= k
}

// orderEdge returns the end points of a segment sorted by y.
func orderEdge(a, b Point) (top, bottom Point) {
	if a.Y > b.Y {
		return b, a
	}
	return a, b
}
