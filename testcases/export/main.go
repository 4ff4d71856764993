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
// Command export writes all test cases to testdata/testcases.json, so that

// Export writes every test case as a command stream in device space, so
// that other rasterizers for the same stream format can be checked
// against the reference images.
//
// The output directory receives testcases.json, an index with the size
// and circles of each case and its stream in base64, and one path
// record <category>_<name>.fpath per case.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fctx"
	"seehuhn.de/go/fctx/testcases"
)

type jsonTestCase struct {
	Name     string       `json:"name"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Commands []byte       `json:"commands,omitempty"`
	Circles  []jsonCircle `json:"circles,omitempty"`
}

// jsonCircle gives the center and radius in 1/16 pixel units.
type jsonCircle struct {
	X, Y, R int32
}

func main() {
	outDir := pflag.StringP("output", "o", "testdata", "Output directory")
	pflag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	var index struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			index.TestCases = append(index.TestCases, jtc)
			if jtc.Commands == nil {
				continue
			}
			rec, err := fctx.NewPath(jtc.Commands).MarshalBinary()
			if err != nil {
				return fmt.Errorf("%s: %w", jtc.Name, err)
			}
			err = os.WriteFile(filepath.Join(outDir, jtc.Name+".fpath"), rec, 0o644)
			if err != nil {
				return err
			}
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "testcases.json"), data, 0o644)
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	if tc.Path != nil {
		jtc.Commands = encodePath(tc.Path, tc.CTM)
	}
	for _, c := range tc.Circles {
		p := fctx.PointFromVec(c.Center)
		jtc.Circles = append(jtc.Circles, jsonCircle{
			X: int32(p.X), Y: int32(p.Y), R: int32(fctx.Float(c.Radius)),
		})
	}
	return jtc
}

// encodePath maps p to device space and encodes it as a command stream.
func encodePath(p *path.Data, m matrix.Matrix) []byte {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	dev := func(v vec.Vec2) fctx.Point {
		return fctx.PointFromVec(vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		})
	}

	var w fctx.CommandWriter
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(dev(pts[0]))
		case path.CmdLineTo:
			w.LineTo(dev(pts[0]))
		case path.CmdQuadTo:
			w.QuadTo(dev(pts[0]), dev(pts[1]))
		case path.CmdCubeTo:
			w.CubicTo(dev(pts[0]), dev(pts[1]), dev(pts[2]))
		case path.CmdClose:
			w.Close()
		}
	}
	return w.Bytes()
}
