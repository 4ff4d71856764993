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

// circleCases use the midpoint circle rasterizer instead of a path.
var circleCases = []TestCase{
	{
		Name:    "disc_small",
		Circles: []Circle{{Center: pt(32, 32), Radius: 5}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "disc_medium",
		Circles: []Circle{{Center: pt(32, 32), Radius: 12}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "disc_large",
		Circles: []Circle{{Center: pt(32, 32), Radius: 25}},
		Width:   64,
		Height:  64,
	},
	{
		Name: "disc_pair",
		Circles: []Circle{
			{Center: pt(20, 32), Radius: 10},
			{Center: pt(46, 32), Radius: 10},
		},
		Width:  64,
		Height: 64,
	},
	{
		// a disc next to a filled path
		Name:    "disc_and_square",
		Path:    rectangle(40, 8, 58, 26),
		Circles: []Circle{{Center: pt(20, 40), Radius: 14}},
		Width:   64,
		Height:  64,
	},
}
