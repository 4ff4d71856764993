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
	"fmt"
	"image"
)

// Rasterizer accumulates edge flags for one fill and converts them into
// per-pixel coverage.
//
// Edges toggle flags in a scratch buffer the size of the target surface.
// A pixel is inside the shape if it has been toggled an odd number of
// times to its left on the same row.  Resolve reads the flags in a
// region and clears them again, so the buffer is clean for the next
// fill as long as every drawing call was covered by the resolved region.
type Rasterizer interface {
	// Size returns the dimensions of the flag buffer in pixels.
	Size() (width, height int)

	// SubpixelAdjust is added to both coordinates of every device point
	// before it is rasterized.  It moves the sample positions to the
	// centres of pixels or sub-rows.
	SubpixelAdjust() Fixed

	// PlotEdge toggles the flags crossed by the segment from a to b.
	PlotEdge(a, b Point)

	// PlotCircle toggles the flags on the outline of a circle.
	PlotCircle(center Point, radius Fixed)

	// MaxCoverage is the coverage value of a fully covered pixel.
	MaxCoverage() int

	// Resolve converts the flags inside region into coverage values.
	// For each row with non-zero coverage, emit is called with the
	// coverage of the pixels xMin, xMin+1, ...  The coverage slice is
	// only valid during the call.
	Resolve(region image.Rectangle, emit func(y, xMin int, coverage []uint8))

	// Release frees the flag buffer.  The rasterizer must not be used
	// afterwards.
	Release()
}

// Mode selects the rasterizer used by a [Context].
type Mode int

const (
	// ModeBinary paints a pixel if its centre is inside the shape.
	ModeBinary Mode = iota

	// ModeAntialiased samples 8 sub-rows per pixel.
	ModeAntialiased
)

func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeAntialiased:
		return "antialiased"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// NewRasterizer allocates a rasterizer of the given mode.
func NewRasterizer(mode Mode, width, height int) (Rasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySurface, width, height)
	}
	switch mode {
	case ModeBinary:
		return NewBinaryRasterizer(width, height), nil
	case ModeAntialiased:
		return NewAntialiasedRasterizer(width, height), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []uint8) (trimmed []uint8, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// clampRegion restricts region to the flag buffer.
func clampRegion(region image.Rectangle, width, height int) image.Rectangle {
	return region.Intersect(image.Rect(0, 0, width, height))
}
