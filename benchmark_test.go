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
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fctx/testcases"
)

var benchSizes = []int{32, 180, 1440}

// BenchmarkRing fills a ring, made of two circles of opposite
// orientation, on a color surface.
func BenchmarkRing(b *testing.B) {
	for _, mode := range modes {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%d", mode, size), func(b *testing.B) {
				ctx, err := NewContext(NewBitmap(size, size, Color8), WithMode(mode))
				if err != nil {
					b.Fatal(err)
				}
				defer ctx.Close()
				ring := benchRing(size)

				b.ReportAllocs()
				for b.Loop() {
					ctx.BeginFill()
					ctx.AppendPath(ring, matrix.Identity)
					ctx.EndFill()
				}
			})
		}
	}
}

// BenchmarkRingVector fills the same ring with x/image/vector, for
// comparison.
func BenchmarkRingVector(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			ring := benchRing(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				fillVector(r, ring, matrix.Identity)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkPlotCircle(b *testing.B) {
	for _, mode := range modes {
		b.Run(mode.String(), func(b *testing.B) {
			ctx, err := NewContext(NewBitmap(180, 180, Color8), WithMode(mode))
			if err != nil {
				b.Fatal(err)
			}
			defer ctx.Close()

			for b.Loop() {
				ctx.BeginFill()
				ctx.PlotCircle(PtI(90, 90), Int(80))
				ctx.PlotCircle(PtI(90, 90), Int(70))
				ctx.EndFill()
			}
		})
	}
}

// BenchmarkDrawString lays out a line of text on a watch sized display.
func BenchmarkDrawString(b *testing.B) {
	f := testFont(b)
	for _, mode := range modes {
		b.Run(mode.String(), func(b *testing.B) {
			ctx, err := NewContext(NewBitmap(144, 168, Color8), WithMode(mode))
			if err != nil {
				b.Fatal(err)
			}
			defer ctx.Close()
			ctx.SetTextSize(f, 24)
			ctx.SetOffset(PtI(72, 84))

			b.ReportAllocs()
			for b.Loop() {
				ctx.BeginFill()
				if err := ctx.DrawString("TWELVE OCLOCK", f, AlignCenter, AnchorMiddle); err != nil {
					b.Fatal(err)
				}
				ctx.EndFill()
			}
		})
	}
}

// BenchmarkRenderAll renders every test case with one context per case.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	bufs := make([][]byte, len(cases))
	for i, tc := range cases {
		bufs[i] = make([]byte, tc.Width*tc.Height)
	}

	for b.Loop() {
		for i, tc := range cases {
			if err := RenderExample(tc, bufs[i], tc.Width, tc.Height, tc.Width, ModeAntialiased); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func benchRing(size int) *path.Data {
	c := float64(size) / 2
	p := circlePath(nil, c, c, float64(size)*0.45, false)
	return circlePath(p, c, c, float64(size)*0.3, true)
}

// circlePath appends a circle made of four cubic arcs.  The circle is
// clockwise on screen unless reverse is set.
func circlePath(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	kx := r * 0.5522847498
	ky, dy := kx, r
	if reverse {
		ky, dy = -ky, -dy
	}
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return p.MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+ky), pt(cx+kx, cy+dy), pt(cx, cy+dy)).
		CubeTo(pt(cx-kx, cy+dy), pt(cx-r, cy+ky), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-ky), pt(cx-kx, cy-dy), pt(cx, cy-dy)).
		CubeTo(pt(cx+kx, cy-dy), pt(cx+r, cy-ky), pt(cx+r, cy)).
		Close()
}

// fillVector adds the subpaths of p, mapped by m, to r.
func fillVector(r *vector.Rasterizer, p *path.Data, m matrix.Matrix) {
	tr := func(v vec.Vec2) (float32, float32) {
		return float32(m[0]*v.X + m[2]*v.Y + m[4]),
			float32(m[1]*v.X + m[3]*v.Y + m[5])
	}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.ClosePath()
			r.MoveTo(tr(pts[0]))
		case path.CmdLineTo:
			r.LineTo(tr(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			r.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
		}
	}
	r.ClosePath()
}
