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

// Package fctx fills vector shapes on small pixel displays using only
// integer arithmetic.
//
// Shapes are built from lines, cubic Bézier curves, circles, stored
// command streams and text, in 28.4 fixed-point coordinates.  They are
// rasterized with the edge-flag algorithm, either in binary mode (one
// sample per pixel) or antialiased with eight samples per pixel, and
// filled using the even-odd rule.
package fctx

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"

	"seehuhn.de/go/fctx/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int, mode Mode) error {
	ctx, err := NewContext(coverageSurface{width: width, height: height}, WithMode(mode))
	if err != nil {
		return err
	}
	defer ctx.Close()

	maxCoverage := ctx.raster.MaxCoverage()
	ctx.BeginFill()
	ctx.AppendPath(tc.Path, tc.CTM)
	for _, circ := range tc.Circles {
		ctx.PlotCircle(PointFromVec(circ.Center), Float(circ.Radius))
	}
	ctx.EndFillFunc(func(y, xMin int, coverage []uint8) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(min(255, int(c)*256/maxCoverage))
		}
	})
	return nil
}

// coverageSurface only provides the size of a coverage buffer.  It is
// used with EndFillFunc, which never accesses the pixel rows.
type coverageSurface struct {
	width, height int
}

func (s coverageSurface) Format() PixelFormat     { return Color8 }
func (s coverageSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }
func (s coverageSurface) Row(int) Row             { return Row{MaxX: -1} }
