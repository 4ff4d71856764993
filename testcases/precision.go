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

// precisionCases probe the 1/16 pixel grid of the fixed-point
// coordinates.  Offsets are multiples of 1/16, so that the path is
// represented exactly.
var precisionCases = []TestCase{
	{
		Name:   "grid_aligned",
		Path:   shiftedSquare(20, 24, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shift_1_16",
		Path:   shiftedSquare(20, 24, 1),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shift_7_16",
		Path:   shiftedSquare(20, 24, 7),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shift_8_16",
		Path:   shiftedSquare(20, 24, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shift_15_16",
		Path:   shiftedSquare(20, 24, 15),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_pixels",
		Path:   shiftedSquare(31, 2, 0),
		Width:  64,
		Height: 64,
	},
	{
		// a thin wedge whose slope changes by one sub-unit per row
		Name:   "shallow_wedge",
		Path:   polygon(nil, pt(2, 30), pt(62, 30+1.0/16), pt(62, 34), pt(2, 33)),
		Width:  64,
		Height: 64,
	},
	{
		// device coordinates far from the user space origin
		Name:   "far_origin",
		Path:   rectangle(1990, 1990, 2010, 2010),
		Width:  64,
		Height: 64,
		CTM:    matrix.Identity.Translate(-1968, -1968),
	},
}

// shiftedSquare builds a square at (x, x) with side length size, moved
// by sixteenths/16 pixels right and down.
func shiftedSquare(x, size float64, sixteenths int) *path.Data {
	d := float64(sixteenths) / 16
	return rectangle(x+d, x+d, x+size+d, x+size+d)
}
