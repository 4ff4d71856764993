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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"slices"
)

// Font record layout, all values little-endian:
//
//	header:  unitsPerEm i16, ascent i16, descent i16, rangeCount u16, glyphCount u16
//	ranges:  rangeCount × {begin u16, end u16}
//	glyphs:  glyphCount × {offset u16, length u16, advance i16}
//	outlines: command stream bytes, addressed by the glyph records
const (
	fontHeaderSize  = 10
	fontRangeSize   = 4
	fontGlyphSize   = 6
	maxRecordLength = math.MaxUint16
)

// Metrics holds the global measurements of a font, in font units.
// Descent is usually negative.
type Metrics struct {
	UnitsPerEm Fixed
	Ascent     Fixed
	Descent    Fixed
}

// Range is a block of consecutive code points [Begin, End) which all have
// glyphs.
type Range struct {
	Begin, End rune
}

// Len returns the number of code points in r.
func (r Range) Len() int {
	return int(r.End - r.Begin)
}

// Glyph describes the outline and advance width of one character.
type Glyph struct {
	Offset  int // start of the outline in the outline data
	Length  int // length of the outline in bytes
	Advance Fixed
}

// Font is a vector font in the compact record format.  Outlines are
// command streams in font units, with y pointing up.
//
// A Font is immutable and can be shared between goroutines.
type Font struct {
	metrics  Metrics
	ranges   []Range
	base     []int // index of the first glyph of each range
	glyphs   []Glyph
	outlines []byte
}

// NewFont assembles a font from its tables.  The ranges must be sorted
// and must not overlap; together they must cover exactly len(glyphs)
// code points.
func NewFont(m Metrics, ranges []Range, glyphs []Glyph, outlines []byte) (*Font, error) {
	f := &Font{
		metrics:  m,
		ranges:   slices.Clone(ranges),
		glyphs:   slices.Clone(glyphs),
		outlines: slices.Clone(outlines),
	}
	if err := f.index(true); err != nil {
		return nil, err
	}
	total := 0
	for _, r := range f.ranges {
		total += r.Len()
	}
	if total != len(f.glyphs) {
		return nil, fmt.Errorf("%w: ranges cover %d glyphs, have %d", ErrCorrupt, total, len(f.glyphs))
	}
	return f, nil
}

// LoadFont parses a font record.  All table offsets are checked, so that
// later lookups cannot fail.  The returned font does not retain data.
func LoadFont(data []byte) (*Font, error) {
	if len(data) < fontHeaderSize {
		return nil, fmt.Errorf("font header: %w", ErrTruncated)
	}
	le := binary.LittleEndian
	f := &Font{
		metrics: Metrics{
			UnitsPerEm: Fixed(int16(le.Uint16(data[0:]))),
			Ascent:     Fixed(int16(le.Uint16(data[2:]))),
			Descent:    Fixed(int16(le.Uint16(data[4:]))),
		},
	}
	numRanges := int(le.Uint16(data[6:]))
	numGlyphs := int(le.Uint16(data[8:]))

	tablesEnd := fontHeaderSize + numRanges*fontRangeSize + numGlyphs*fontGlyphSize
	if len(data) < tablesEnd {
		return nil, fmt.Errorf("font tables: %w", ErrTruncated)
	}

	pos := fontHeaderSize
	f.ranges = make([]Range, numRanges)
	for i := range f.ranges {
		f.ranges[i] = Range{
			Begin: rune(le.Uint16(data[pos:])),
			End:   rune(le.Uint16(data[pos+2:])),
		}
		pos += fontRangeSize
	}
	f.glyphs = make([]Glyph, numGlyphs)
	for i := range f.glyphs {
		f.glyphs[i] = Glyph{
			Offset:  int(le.Uint16(data[pos:])),
			Length:  int(le.Uint16(data[pos+2:])),
			Advance: Fixed(int16(le.Uint16(data[pos+4:]))),
		}
		pos += fontGlyphSize
	}
	f.outlines = slices.Clone(data[tablesEnd:])

	if err := f.index(false); err != nil {
		return nil, err
	}

	Logger().Debug("fctx: font loaded",
		"ranges", numRanges, "glyphs", numGlyphs, "outlineBytes", len(f.outlines))
	return f, nil
}

// ReadFont reads a font record from r.
func ReadFont(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadFont(data)
}

// index computes the glyph index of each range and checks that all
// table references are valid.  If strict is set, the ranges must also be
// sorted and disjoint.
func (f *Font) index(strict bool) error {
	if f.metrics.UnitsPerEm <= 0 {
		return fmt.Errorf("%w: units per em %s", ErrCorrupt, f.metrics.UnitsPerEm)
	}
	f.base = make([]int, len(f.ranges))
	total := 0
	for i, r := range f.ranges {
		if r.Begin > r.End || r.End > 0xffff || r.Begin < 0 {
			return fmt.Errorf("%w: invalid range [%d, %d)", ErrCorrupt, r.Begin, r.End)
		}
		if strict && i > 0 && r.Begin < f.ranges[i-1].End {
			return fmt.Errorf("%w: range [%d, %d) is out of order", ErrCorrupt, r.Begin, r.End)
		}
		f.base[i] = total
		total += r.Len()
	}
	if total > len(f.glyphs) {
		return fmt.Errorf("%w: ranges cover %d glyphs, have %d", ErrCorrupt, total, len(f.glyphs))
	}
	for i, g := range f.glyphs {
		if g.Offset < 0 || g.Length < 0 || g.Offset+g.Length > len(f.outlines) {
			return fmt.Errorf("%w: outline of glyph %d outside data", ErrCorrupt, i)
		}
	}
	return nil
}

// Metrics returns the global font measurements.
func (f *Font) Metrics() Metrics {
	return f.metrics
}

// Ranges returns the code point ranges covered by the font.
func (f *Font) Ranges() []Range {
	return slices.Clone(f.ranges)
}

// NumGlyphs returns the number of entries in the glyph table.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyph looks up the glyph for a code point.
//
// The ranges are scanned in order and the search stops at the first
// range which starts after r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	for i, rg := range f.ranges {
		if r < rg.Begin {
			break
		}
		if r < rg.End {
			return f.glyphs[f.base[i]+int(r-rg.Begin)], true
		}
	}
	return Glyph{}, false
}

// Outline returns the command stream of g.  The returned slice must not
// be modified.
func (f *Font) Outline(g Glyph) []byte {
	if g.Offset < 0 || g.Length < 0 || g.Offset+g.Length > len(f.outlines) {
		return nil
	}
	return f.outlines[g.Offset : g.Offset+g.Length : g.Offset+g.Length]
}

// StringWidth returns the sum of the advance widths of the characters of
// s, in font units.  Characters without a glyph do not contribute.
func (f *Font) StringWidth(s string) Fixed {
	var w Fixed
	for _, r := range s {
		if g, ok := f.Glyph(r); ok {
			w += g.Advance
		}
	}
	return w
}

// MarshalBinary encodes f in the font record format.
func (f *Font) MarshalBinary() ([]byte, error) {
	if len(f.ranges) > maxRecordLength || len(f.glyphs) > maxRecordLength {
		return nil, fmt.Errorf("%w: %d ranges, %d glyphs", ErrTooLarge, len(f.ranges), len(f.glyphs))
	}
	for i, g := range f.glyphs {
		if g.Offset > maxRecordLength || g.Length > maxRecordLength {
			return nil, fmt.Errorf("%w: outline of glyph %d", ErrTooLarge, i)
		}
	}

	le := binary.LittleEndian
	size := fontHeaderSize + len(f.ranges)*fontRangeSize + len(f.glyphs)*fontGlyphSize + len(f.outlines)
	buf := make([]byte, 0, size)
	buf = le.AppendUint16(buf, uint16(int16(f.metrics.UnitsPerEm)))
	buf = le.AppendUint16(buf, uint16(int16(f.metrics.Ascent)))
	buf = le.AppendUint16(buf, uint16(int16(f.metrics.Descent)))
	buf = le.AppendUint16(buf, uint16(len(f.ranges)))
	buf = le.AppendUint16(buf, uint16(len(f.glyphs)))
	for _, r := range f.ranges {
		buf = le.AppendUint16(buf, uint16(r.Begin))
		buf = le.AppendUint16(buf, uint16(r.End))
	}
	for _, g := range f.glyphs {
		buf = le.AppendUint16(buf, uint16(g.Offset))
		buf = le.AppendUint16(buf, uint16(g.Length))
		buf = le.AppendUint16(buf, uint16(int16(g.Advance)))
	}
	buf = append(buf, f.outlines...)
	return buf, nil
}
