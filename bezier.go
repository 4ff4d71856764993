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

// flatnessTolerance is the largest total change of direction, summed
// over the three legs of the control polygon, for which a cubic segment
// is drawn as a single line.
const flatnessTolerance = (TrigMaxAngle / 360) * 5

// flattenCubic splits the cubic Bézier curve p0, p1, p2, p3 at t=1/2
// until the control polygon is nearly straight, and calls emit for each
// resulting line segment.
//
// Leg directions are measured in whole pixels, so very short legs count
// as having direction 0.  Repeated halving eventually collapses every
// leg, so the recursion always terminates.
func flattenCubic(p0, p1, p2, p3 Point, trig Trig, emit func(from, to Point)) {
	mid := func(a, b Point) Point {
		return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	dir := func(a, b Point) Angle {
		return trig.Atan2(int32(b.Y-a.Y)/FixedScale, int32(b.X-a.X)/FixedScale)
	}

	a12 := dir(p1, p2)
	dev := angleDiff(a12, dir(p0, p1)) + angleDiff(dir(p2, p3), a12)
	if dev < flatnessTolerance {
		emit(p0, p3)
		return
	}

	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)

	flattenCubic(p0, p01, p012, m, trig, emit)
	flattenCubic(m, p123, p23, p3, trig, emit)
}
