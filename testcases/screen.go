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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// screenCases cover a whole watch display, rectangular (144x168) or
// round (180x180), so that edges run across many rows.
var screenCases = []TestCase{
	{
		Name:   "full_frame",
		Path:   rectangle(0, 0, 144, 168),
		Width:  144,
		Height: 168,
	},
	{
		// extends past the left and right edge of the display
		Name:   "band_clipped",
		Path:   rectangle(-40, 60, 184, 108),
		Width:  144,
		Height: 168,
	},
	{
		Name:   "diamond",
		Path:   polygon(nil, pt(72, 6), pt(138, 84), pt(72, 162), pt(6, 84)),
		Width:  144,
		Height: 168,
	},
	{
		Name:   "bezel",
		Path:   ellipseTo(circle(90, 90, 88), 90, 90, 78, 78, true),
		Width:  180,
		Height: 180,
	},
	{
		Name:   "hour_ticks",
		Path:   hourTicks(90, 90, 66, 84, 5),
		Width:  180,
		Height: 180,
	},
	{
		Name:    "round_disc",
		Circles: []Circle{{Center: pt(90, 90), Radius: 86}},
		Width:   180,
		Height:  180,
	},
}

// hourTicks builds twelve radial bars between radius r0 and r1, each of
// the given width, like the hour marks of a clock face.
func hourTicks(cx, cy, r0, r1, width float64) *path.Data {
	var p *path.Data
	for i := range 12 {
		phi := float64(i) * math.Pi / 6
		dir := vec.Vec2{X: math.Sin(phi), Y: -math.Cos(phi)}
		side := vec.Vec2{X: -dir.Y * width / 2, Y: dir.X * width / 2}
		inner := pt(cx+r0*dir.X, cy+r0*dir.Y)
		outer := pt(cx+r1*dir.X, cy+r1*dir.Y)
		p = polygon(p, inner.Sub(side), outer.Sub(side), outer.Add(side), inner.Add(side))
	}
	return p
}
