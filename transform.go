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

// Transform maps path coordinates to device coordinates.
//
// A point p is mapped by subtracting Pivot, scaling each axis by
// ScaleTo/ScaleFrom, rotating by Rotation and finally adding Offset.
// All steps use integer arithmetic with truncating division.
//
// ScaleFrom must not have a zero component.
type Transform struct {
	Offset    Point
	ScaleFrom Point
	ScaleTo   Point
	Rotation  Angle
	Pivot     Point
}

// IdentityTransform returns the transform which leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{
		ScaleFrom: Point{X: 1, Y: 1},
		ScaleTo:   Point{X: 1, Y: 1},
	}
}

// Apply maps a single point through t.
func (t *Transform) Apply(trig Trig, p Point) Point {
	m := t.prepare(trig, Point{}, 0)
	return m.apply(p)
}

// preparedTransform caches the sine and cosine of a transform for a
// batch of points.
type preparedTransform struct {
	t        *Transform
	cos, sin int64
	shift    Point // added to each point before the pivot is subtracted
	adjust   Fixed // added to both device coordinates
}

func (t *Transform) prepare(trig Trig, advance Point, adjust Fixed) preparedTransform {
	m := preparedTransform{
		t:      t,
		cos:    TrigMaxRatio,
		shift:  advance,
		adjust: adjust,
	}
	if t.Rotation != 0 {
		m.cos = int64(trig.Cos(t.Rotation))
		m.sin = int64(trig.Sin(t.Rotation))
	}
	return m
}

func (m *preparedTransform) apply(p Point) Point {
	t := m.t
	x := int64(p.X) + int64(m.shift.X) - int64(t.Pivot.X)
	y := int64(p.Y) + int64(m.shift.Y) - int64(t.Pivot.Y)

	x = x * int64(t.ScaleTo.X) / int64(t.ScaleFrom.X)
	y = y * int64(t.ScaleTo.Y) / int64(t.ScaleFrom.Y)

	if m.sin != 0 || m.cos != TrigMaxRatio {
		x, y = x*m.cos/TrigMaxRatio-y*m.sin/TrigMaxRatio,
			x*m.sin/TrigMaxRatio+y*m.cos/TrigMaxRatio
	}

	return Point{
		X: Fixed(x) + t.Offset.X + m.adjust,
		Y: Fixed(y) + t.Offset.Y + m.adjust,
	}
}
