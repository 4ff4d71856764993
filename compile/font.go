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


package compile

import (
	"maps"
	"slices"

	"seehuhn.de/go/fctx"
)

// GlyphData is the compiled form of a single glyph.
type GlyphData struct {
	Advance fctx.Fixed
	Outline []byte // command stream in font units, y up
}

// BuildFont assembles a font from a sparse set of glyphs.  Consecutive
// code points are grouped into ranges, and the outlines are stored in
// code point order.
func BuildFont(m fctx.Metrics, glyphs map[rune]GlyphData) (*fctx.Font, error) {
	codes := slices.Sorted(maps.Keys(glyphs))

	var ranges []fctx.Range
	var table []fctx.Glyph
	var outlines []byte
	for _, r := range codes {
		if n := len(ranges); n > 0 && ranges[n-1].End == r {
			ranges[n-1].End++
		} else {
			ranges = append(ranges, fctx.Range{Begin: r, End: r + 1})
		}
		g := glyphs[r]
		table = append(table, fctx.Glyph{
			Offset:  len(outlines),
			Length:  len(g.Outline),
			Advance: g.Advance,
		})
		outlines = append(outlines, g.Outline...)
	}

	for _, rg := range ranges {
		fctx.Logger().Debug("compile: glyph range",
			"begin", rg.Begin, "end", rg.End-1)
	}
	return fctx.NewFont(m, ranges, table, outlines)
}
