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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square_ring",
		Path:   squareRing(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "round_ring",
		Path:   ellipseTo(circle(32, 32, 25), 32, 32, 14, 14, true),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "nested_rings",
		Path:   nestedRings(64, 64, 6),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "unclosed",
		Path:   (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(54, 20)).LineTo(pt(30, 54)),
		Width:  64,
		Height: 64,
	},
}

// twoTriangles builds two disjoint triangles of the given size.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := polygon(nil, pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size))
	return polygon(p, pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size))
}

// squareRing builds a square with a square hole.  The hole is traced in
// the opposite direction.
func squareRing(cx, cy, outer, inner float64) *path.Data {
	p := polygon(nil,
		pt(cx-outer, cy-outer), pt(cx+outer, cy-outer),
		pt(cx+outer, cy+outer), pt(cx-outer, cy+outer))
	return polygon(p,
		pt(cx-inner, cy-inner), pt(cx-inner, cy+inner),
		pt(cx+inner, cy+inner), pt(cx+inner, cy-inner))
}

// nestedRings builds n concentric circles with alternating direction.
func nestedRings(cx, cy float64, n int) *path.Data {
	var p *path.Data
	for i := range n {
		r := 60 - 9*float64(i)
		p = ellipseTo(p, cx, cy, r, r, i%2 == 1)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size, spacing = 5.0, 14.0
	var p *path.Data
	for row := range rows {
		for col := range cols {
			cx := 10 + float64(col)*spacing
			cy := 10 + float64(row)*spacing
			p = polygon(p, pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size))
		}
	}
	return p
}
