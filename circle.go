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

// plotCircle traces a circle of radius r around the grid corner (cx, cy)
// and calls toggle for the flag positions which switch the parity of each
// row.
//
// Each toggle marks the first column after the outline on the right, and
// the column where the outline starts on the left.  Toggles in the
// second octant are only emitted on steps where x decreases, and never on
// the diagonal, so that no position is toggled twice.
func plotCircle(cx, cy, r int, toggle func(x, y int)) {
	x := r - 1
	y := 0
	e := 1 - 2*r
	for x >= y {
		toggle(cx-x-1, cy+y)
		toggle(cx+x+1, cy+y)
		toggle(cx-x-1, cy-y-1)
		toggle(cx+x+1, cy-y-1)

		e += 4*y + 4
		if e > 0 {
			if x != y {
				toggle(cx-y-1, cy+x)
				toggle(cx+y+1, cy+x)
				toggle(cx-y-1, cy-x-1)
				toggle(cx+y+1, cy-x-1)
			}
			e -= 4 * x
			x--
		}
		y++
	}
}
