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
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/fctx"
)

// SFNTOptions controls the conversion of TrueType and OpenType fonts.
type SFNTOptions struct {
	// Em is the size of the em square of the compiled font, in font
	// units.  If zero, the units per em of the source font are used,
	// reduced to 72 for larger values.
	Em int

	// Ranges lists the code points to compile.  The default is the
	// printable ASCII characters.
	Ranges []fctx.Range
}

var defaultRanges = []fctx.Range{{Begin: 0x20, End: 0x7F}}

// FromSFNT compiles a TrueType or OpenType font.  Outlines are taken
// without hinting.  Code points which the font does not map to a glyph
// are skipped.
func FromSFNT(data []byte, opts *SFNTOptions) (*fctx.Font, error) {
	if opts == nil {
		opts = &SFNTOptions{}
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	em := opts.Em
	if em <= 0 {
		em = min(int(f.UnitsPerEm()), 72)
	}
	ranges := opts.Ranges
	if ranges == nil {
		ranges = defaultRanges
	}

	// At this size one pixel of the sfnt package is one font unit.
	ppem := fixed.I(em)
	var buf sfnt.Buffer
	c := &sfntConverter{}

	fm, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	metrics := fctx.Metrics{
		UnitsPerEm: c.fix(fixed.I(em)),
		Ascent:     c.fix(fm.Ascent),
		Descent:    c.fix(-fm.Descent),
	}

	glyphs := make(map[rune]GlyphData)
	for _, rg := range ranges {
		for r := rg.Begin; r < rg.End; r++ {
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil {
				return nil, fmt.Errorf("compile: U+%04X: %w", r, err)
			}
			if idx == 0 {
				continue
			}

			advance, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
			if err != nil {
				return nil, fmt.Errorf("compile: U+%04X: %w", r, err)
			}
			segments, err := f.LoadGlyph(&buf, idx, ppem, nil)
			if err != nil {
				return nil, fmt.Errorf("compile: U+%04X: %w", r, err)
			}
			glyphs[r] = GlyphData{
				Advance: c.fix(advance),
				Outline: c.outline(segments),
			}
		}
	}
	if c.err != nil {
		return nil, c.err
	}

	fctx.Logger().Info("compile: sfnt font", "em", em, "glyphs", len(glyphs))
	return BuildFont(metrics, glyphs)
}

type sfntConverter struct {
	err error
}

// fix converts a 26.6 value to the 28.4 format of fctx, rounding to
// nearest.
func (c *sfntConverter) fix(v fixed.Int26_6) fctx.Fixed {
	f := (v + 2) >> 2
	if f < math.MinInt16 || f > math.MaxInt16 {
		if c.err == nil {
			c.err = fmt.Errorf("%w: %s", ErrRange, v)
		}
		return 0
	}
	return fctx.Fixed(f)
}

// pt converts a point from the y-down sfnt coordinates to y-up font
// coordinates.
func (c *sfntConverter) pt(p fixed.Point26_6) fctx.Point {
	return fctx.Point{X: c.fix(p.X), Y: c.fix(-p.Y)}
}

func (c *sfntConverter) outline(segments sfnt.Segments) []byte {
	var w fctx.CommandWriter
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				w.Close()
			}
			w.MoveTo(c.pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			w.LineTo(c.pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			w.QuadTo(c.pt(seg.Args[0]), c.pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			w.CubicTo(c.pt(seg.Args[0]), c.pt(seg.Args[1]), c.pt(seg.Args[2]))
		}
	}
	if open {
		w.Close()
	}
	return w.Bytes()
}
