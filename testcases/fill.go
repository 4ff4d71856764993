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

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(nil, pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.5, 10.5, 40.25, 40.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "concave_l",
		Path:   polygon(nil, pt(8, 8), pt(30, 8), pt(30, 20), pt(20, 20), pt(20, 50), pt(8, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "arrow",
		Path: polygon(nil,
			pt(5, 30), pt(30, 5), pt(55, 30), pt(40, 30),
			pt(40, 58), pt(20, 58), pt(20, 30)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Path:   regularPolygon(32, 32, 25, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_sliver",
		Path:   polygon(nil, pt(5, 10), pt(60, 14), pt(60, 16), pt(5, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "off_left",
		Path:   polygon(nil, pt(-10, 5), pt(30, 12), pt(-5, 60)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "off_right",
		Path:   polygon(nil, pt(40, 5), pt(80, 30), pt(40, 60)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "off_top",
		Path:   polygon(nil, pt(10, -10), pt(50, -5), pt(30, 40)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "off_bottom",
		Path:   polygon(nil, pt(10, 30), pt(54, 40), pt(30, 90)),
		Width:  64,
		Height: 64,
	},
}
