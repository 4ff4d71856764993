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
	"slices"
)

// BinaryRasterizer keeps one flag bit per pixel.  Pixels are sampled at
// their centres, so every pixel is either fully painted or untouched.
type BinaryRasterizer struct {
	width, height int
	stride        int // bytes per flag row
	flags         []byte

	// coverage is the row buffer passed to Resolve's emit callback.
	// It grows as needed but never shrinks.
	coverage []uint8
}

var _ Rasterizer = (*BinaryRasterizer)(nil)

// NewBinaryRasterizer allocates a flag buffer for a width×height surface.
func NewBinaryRasterizer(width, height int) *BinaryRasterizer {
	stride := (width + 7) / 8
	return &BinaryRasterizer{
		width:  width,
		height: height,
		stride: stride,
		flags:  make([]byte, stride*height),
	}
}

// Size implements the [Rasterizer] interface.
func (r *BinaryRasterizer) Size() (int, int) {
	return r.width, r.height
}

// SubpixelAdjust implements the [Rasterizer] interface.
func (r *BinaryRasterizer) SubpixelAdjust() Fixed {
	return -FixedScale / 2
}

// MaxCoverage implements the [Rasterizer] interface.
func (r *BinaryRasterizer) MaxCoverage() int {
	return 1
}

// PlotEdge implements the [Rasterizer] interface.
func (r *BinaryRasterizer) PlotEdge(a, b Point) {
	top, bottom := orderEdge(a, b)
	e := newEdge(top, bottom, FixedScale)
	e.skipTo(0)
	for e.height > 0 && e.y < int64(r.height) {
		r.toggle(int(e.x), int(e.y))
		e.step()
	}
}

// toggle flips the flag of pixel (x, y).  Points left of the buffer are
// moved to column 0, where they still affect the parity of the whole row.
func (r *BinaryRasterizer) toggle(x, y int) {
	if y < 0 || y >= r.height || x >= r.width {
		return
	}
	x = max(x, 0)
	r.flags[y*r.stride+x/8] ^= 1 << (x % 8)
}

// PlotCircle implements the [Rasterizer] interface.
func (r *BinaryRasterizer) PlotCircle(center Point, radius Fixed) {
	cx := center.X.Floor()
	cy := center.Y.Floor()
	plotCircle(cx, cy, radius.Trunc(), r.toggle)
}

// Resolve implements the [Rasterizer] interface.
func (r *BinaryRasterizer) Resolve(region image.Rectangle, emit func(y, xMin int, coverage []uint8)) {
	region = clampRegion(region, r.width, r.height)
	if region.Empty() {
		return
	}

	width := region.Dx()
	r.coverage = slices.Grow(r.coverage[:0], width)[:width]

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := r.flags[y*r.stride : (y+1)*r.stride]
		var parity uint8
		for x := region.Min.X; x < region.Max.X; x++ {
			bit := byte(1) << (x % 8)
			if row[x/8]&bit != 0 {
				parity ^= 1
				row[x/8] &^= bit
			}
			r.coverage[x-region.Min.X] = parity
		}
		if trimmed, offset := trimZeros(r.coverage); trimmed != nil {
			emit(y, region.Min.X+offset, trimmed)
		}
	}
}

// Release implements the [Rasterizer] interface.
func (r *BinaryRasterizer) Release() {
	r.flags = nil
	r.coverage = nil
}
