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
// Package testcases defines reference shapes for the rasterizer tests.
//
// All shapes are filled.  Overlapping subpaths always have opposite
// orientation, so that the even-odd and the nonzero winding rule give
// the same result and any reference rasterizer can be used.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Path    *path.Data    // the outline to fill, may be nil
	Circles []Circle      // circles plotted in device space
	Width   int           // canvas width in pixels
	Height  int           // canvas height in pixels
	CTM     matrix.Matrix // maps Path to device space (zero-value means identity)
}

// Circle is a disc drawn with the circle rasterizer.  The rasterizer
// snaps the center to the pixel grid and the radius to whole pixels, so
// test circles use integer values.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed polygon through the given points.
func polygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// rectangle builds a clockwise (on screen) rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(nil, pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// ellipseTo appends a closed ellipse made of four cubic arcs.  If
// reverse is set, the ellipse is traced in the opposite direction.
func ellipseTo(p *path.Data, cx, cy, rx, ry float64, reverse bool) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	kx, ky := rx*kappa, ry*kappa
	if reverse {
		ky, ry = -ky, -ry
	}
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// circle builds a circle from four cubic arcs.
func circle(cx, cy, r float64) *path.Data {
	return ellipseTo(nil, cx, cy, r, r, false)
}

// regularPolygon builds a convex polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(nil, pts...)
}
