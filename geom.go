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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PointFromVec converts a floating point vector to the nearest
// fixed-point position.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: Float(v.X), Y: Float(v.Y)}
}

// Vec returns p as a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X.Float64(), Y: p.Y.Float64()}
}

// AppendPath adds the subpaths of p to the current shape.  Coordinates
// are first mapped by m and rounded to fixed point, then the context's
// transform is applied as for the other drawing calls.  The zero matrix
// is treated as the identity.
//
// Subpaths which are not explicitly closed are closed implicitly, as
// required for filling.  Quadratic segments are converted to cubic ones.
func (c *Context) AppendPath(p *path.Data, m matrix.Matrix) {
	if !c.ok("AppendPath") || p == nil {
		return
	}
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	user := func(v vec.Vec2) Point {
		return Point{
			X: Float(m[0]*v.X + m[2]*v.Y + m[4]),
			Y: Float(m[1]*v.X + m[3]*v.Y + m[5]),
		}
	}

	pm := c.mapper(Point{})
	var current, start Point // in path space, for the quadratic conversion
	open := false

	closeOpen := func() {
		if open && c.pathCur != c.pathInit {
			c.closeDevice()
		}
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeOpen()
			current = user(p.Coords[coordIdx])
			start = current
			c.moveToDevice(c.device(&pm, current))
			coordIdx++

		case path.CmdLineTo:
			current = user(p.Coords[coordIdx])
			c.lineToDevice(c.device(&pm, current))
			open = true
			coordIdx++

		case path.CmdQuadTo:
			q := user(p.Coords[coordIdx])
			end := user(p.Coords[coordIdx+1])
			s := quadSegment(current, q, end)
			c.curveToDevice(c.device(&pm, s.Pts[0]), c.device(&pm, s.Pts[1]), c.device(&pm, s.Pts[2]))
			current = end
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			d1 := c.device(&pm, user(p.Coords[coordIdx]))
			d2 := c.device(&pm, user(p.Coords[coordIdx+1]))
			current = user(p.Coords[coordIdx+2])
			c.curveToDevice(d1, d2, c.device(&pm, current))
			open = true
			coordIdx += 3

		case path.CmdClose:
			c.closeDevice()
			current = start
			open = false
		}
	}
	closeOpen()
}
