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
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// curveCases exercise the Bézier flattener.  The outlines bend sharply
// enough that several levels of subdivision are needed at 64x64.
var curveCases = []TestCase{
	{
		Name:   "quad_arch",
		Path:   closedQuad(pt(8, 56), pt(32, 2), pt(56, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quad_flat",
		Path:   closedQuad(pt(6, 36), pt(32, 30), pt(58, 36)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_d",
		Path:   closedCubic(pt(18, 56), pt(66, 56), pt(66, 8), pt(18, 8)),
		Width:  64,
		Height: 64,
	},
	{
		// the chord crosses the curve, giving two lobes of opposite
		// orientation
		Name:   "cubic_wave",
		Path:   closedCubic(pt(6, 32), pt(24, -6), pt(40, 70), pt(58, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "teardrop",
		Path:   closedCubic(pt(32, 6), pt(62, 58), pt(2, 58), pt(32, 6)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "lens",
		Path: (&path.Data{}).
			MoveTo(pt(6, 32)).
			CubeTo(pt(20, 10), pt(44, 10), pt(58, 32)).
			CubeTo(pt(44, 54), pt(20, 54), pt(6, 32)).
			Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name: "heart",
		Path: (&path.Data{}).
			MoveTo(pt(32, 58)).
			CubeTo(pt(2, 38), pt(6, 6), pt(32, 20)).
			CubeTo(pt(58, 6), pt(62, 38), pt(32, 58)).
			Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rect",
		Path:   roundedRect(6, 14, 58, 50, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disc_path",
		Path:   circle(32, 32, 27),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dot_path",
		Path:   circle(32.5, 32.5, 2.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_narrow",
		Path:   ellipseTo(nil, 32, 32, 30, 7, false),
		Width:  64,
		Height: 64,
	},
	{
		// line, quadratic and cubic segments in one outline
		Name: "gauge",
		Path: (&path.Data{}).
			MoveTo(pt(4, 44)).
			QuadTo(pt(32, -4), pt(60, 44)).
			LineTo(pt(48, 44)).
			CubeTo(pt(44, 22), pt(20, 22), pt(16, 44)).
			Close(),
		Width:  64,
		Height: 64,
	},
}

func closedQuad(p0, c, p1 vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(p0).QuadTo(c, p1).Close()
}

func closedCubic(p0, c0, c1, p1 vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(p0).CubeTo(c0, c1, p1).Close()
}

// roundedRect builds a rectangle whose corners are quarter circles of
// radius r.
func roundedRect(x0, y0, x1, y1, r float64) *path.Data {
	k := r * (1 - kappa)
	return (&path.Data{}).
		MoveTo(pt(x0+r, y0)).
		LineTo(pt(x1-r, y0)).
		CubeTo(pt(x1-k, y0), pt(x1, y0+k), pt(x1, y0+r)).
		LineTo(pt(x1, y1-r)).
		CubeTo(pt(x1, y1-k), pt(x1-k, y1), pt(x1-r, y1)).
		LineTo(pt(x0+r, y1)).
		CubeTo(pt(x0+k, y1), pt(x0, y1-k), pt(x0, y1-r)).
		LineTo(pt(x0, y0+r)).
		CubeTo(pt(x0, y0+k), pt(x0+k, y0), pt(x0+r, y0)).
		Close()
}
