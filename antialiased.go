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
	"image"
	"math/bits"
	"slices"
)

const (
	subRows      = 8                       // samples per pixel row
	subRowUnit   = FixedScale / subRows    // fixed-point units per sub-row
	subRowShift  = 3                       // log2(subRows)
	subRowMask   = subRows - 1             // sub-row index within a pixel
	subColsPerPx = FixedScale / subRowUnit // sample columns per pixel
)

// sampleOffsets shifts the sample column of each sub-row, so that the
// eight samples of a pixel are spread over eight different columns.
var sampleOffsets = [subRows]int{2, 7, 4, 1, 6, 3, 0, 5}

// AntialiasedRasterizer keeps one flag byte per pixel, one bit for each
// of eight sub-rows.  The coverage of a pixel is the number of sub-rows
// whose sample lies inside the shape, between 0 and 8.
type AntialiasedRasterizer struct {
	width, height int
	flags         []byte

	coverage []uint8
}

var _ Rasterizer = (*AntialiasedRasterizer)(nil)

// NewAntialiasedRasterizer allocates a flag buffer for a width×height
// surface.
func NewAntialiasedRasterizer(width, height int) *AntialiasedRasterizer {
	return &AntialiasedRasterizer{
		width:  width,
		height: height,
		flags:  make([]byte, width*height),
	}
}

// Size implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) Size() (int, int) {
	return r.width, r.height
}

// SubpixelAdjust implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) SubpixelAdjust() Fixed {
	return -subRowUnit / 2
}

// MaxCoverage implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) MaxCoverage() int {
	return subRows
}

// PlotEdge implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) PlotEdge(a, b Point) {
	top, bottom := orderEdge(a, b)
	e := newEdge(top, bottom, subRowUnit)
	e.skipTo(0)
	last := int64(r.height*subRows - 1)
	for e.height > 0 && e.y <= last {
		r.toggle(int(e.x), int(e.y))
		e.step()
	}
}

// toggle flips the sample of sub-row y in sample column x.
func (r *AntialiasedRasterizer) toggle(x, y int) {
	sub := y & subRowMask
	py := y >> subRowShift
	if py < 0 || py >= r.height {
		return
	}
	px := floorDiv(x+sampleOffsets[sub], subColsPerPx)
	if px >= r.width {
		return
	}
	px = max(px, 0)
	r.flags[py*r.width+px] ^= 1 << sub
}

// PlotCircle implements the [Rasterizer] interface.
//
// The circle is traced directly on the grid of sample columns and
// sub-rows.
func (r *AntialiasedRasterizer) PlotCircle(center Point, radius Fixed) {
	cx := floorDiv(int(center.X), subRowUnit)
	cy := floorDiv(int(center.Y), subRowUnit)
	plotCircle(cx, cy, int(radius)/subRowUnit, r.toggle)
}

// Resolve implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) Resolve(region image.Rectangle, emit func(y, xMin int, coverage []uint8)) {
	region = clampRegion(region, r.width, r.height)
	if region.Empty() {
		return
	}

	width := region.Dx()
	r.coverage = slices.Grow(r.coverage[:0], width)[:width]

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := r.flags[y*r.width : (y+1)*r.width]
		var mask uint8
		for x := region.Min.X; x < region.Max.X; x++ {
			mask ^= row[x]
			row[x] = 0
			r.coverage[x-region.Min.X] = uint8(bits.OnesCount8(mask))
		}
		if trimmed, offset := trimZeros(r.coverage); trimmed != nil {
			emit(y, region.Min.X+offset, trimmed)
		}
	}
}

// Release implements the [Rasterizer] interface.
func (r *AntialiasedRasterizer) Release() {
	r.flags = nil
	r.coverage = nil
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
