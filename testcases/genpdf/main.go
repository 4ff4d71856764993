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

// Command genpdf writes every test case as a one-page PDF and converts
// it to a grayscale PNG with Ghostscript.  The PNGs serve as independent
// reference coverage for the rasterizer tests.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fctx/testcases"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outDir   string
		gsBinary string
		only     string
	)
	pflag.StringVarP(&outDir, "output", "o", "testdata/reference", "Output directory")
	pflag.StringVar(&gsBinary, "gs", "gs", "Path to the Ghostscript binary")
	pflag.StringVarP(&only, "category", "c", "", "Only generate the cases of this category")
	pflag.Parse()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if only != "" && category != only {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := writePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
				return 1
			}
			if err := ghostscript(gsBinary, pdfPath, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
				return 1
			}
		}
	}
	return 0
}

// writePDF draws tc in white on a black page of tc.Width x tc.Height
// points, so that gray levels equal coverage.
func writePDF(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// test cases use a y-down device space
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.SetFillColor(color.DeviceGray(1))

	// Circles are given in device space, before the CTM of the case.
	if len(tc.Circles) > 0 {
		for _, c := range tc.Circles {
			drawCircle(page, c)
		}
		page.FillEvenOdd()
	}

	if tc.Path == nil {
		return page.Close()
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.FillEvenOdd()

	return page.Close()
}

// pathBuilder is the part of the page API used for drawing circles.
type pathBuilder interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawCircle appends a circle made of four cubic arcs.
func drawCircle(page pathBuilder, c testcases.Circle) {
	const kappa = 0.5522847498307936
	x, y, r := c.Center.X, c.Center.Y, c.Radius
	k := r * kappa
	page.MoveTo(x+r, y)
	page.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
	page.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
	page.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
	page.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
	page.ClosePath()
}

// ghostscript renders the PDF at 72 dpi, so that one point is one pixel,
// with 4x4 antialiasing into an 8-bit gray PNG.
func ghostscript(gs, pdfPath, pngPath string) error {
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
