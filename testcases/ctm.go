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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// ctmCases place shapes with a transformation matrix, the way glyph
// outlines are scaled, flipped and rotated into device space.
var ctmCases = []TestCase{
	{
		// font outlines have y pointing up
		Name:   "glyph_flip",
		Path:   letterH(-8, 0, 8, 20, 4),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(1.5, -1.5).Translate(32, 54),
	},
	{
		Name:   "glyph_oblique",
		Path:   letterH(-8, 0, 8, 20, 4),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1.5, 0, 0.375, -1.5, 0, 0}.Translate(28, 54),
	},
	{
		Name:   "scale_up",
		Path:   rectangle(0, 0, 5, 3),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(8, 8).Translate(12, 20),
	},
	{
		Name:   "scale_down",
		Path:   regularPolygon(0, 0, 100, 5),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.25, 0.25).Translate(32, 34),
	},
	{
		Name:   "quarter_turn",
		Path:   rectangle(-20, -8, 20, 8),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "rotate_eighth",
		Path:   letterH(-10, -12, 10, 12, 5),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		// nearly horizontal edges span many columns per row
		Name:   "rotate_small",
		Path:   rectangle(-28, -6, 28, 6),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(3).Translate(32, 32),
	},
	{
		Name:   "ellipse_from_circle",
		Path:   circle(0, 0, 14),
		Width:  96,
		Height: 48,
		CTM:    matrix.Scale(2.5, 1.25).Translate(48, 24),
	},
	{
		Name:   "shear_rotate",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.4, 1, 0, 0}.RotateDeg(-20).Translate(32, 32),
	},
}

// letterH builds the outline of a capital H inside the box (x0, y0),
// (x1, y1), with stems and bar of width s.
func letterH(x0, y0, x1, y1, s float64) *path.Data {
	ym := (y0 + y1) / 2
	return polygon(nil,
		pt(x0, y0), pt(x0+s, y0), pt(x0+s, ym-s/2), pt(x1-s, ym-s/2),
		pt(x1-s, y0), pt(x1, y0), pt(x1, y1), pt(x1-s, y1),
		pt(x1-s, ym+s/2), pt(x0+s, ym+s/2), pt(x0+s, y1), pt(x0, y1))
}
