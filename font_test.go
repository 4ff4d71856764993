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
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"
)

// boxOutline returns a rectangle outline in font units, with y up.
func boxOutline(x0, y0, x1, y1 int) []byte {
	var w CommandWriter
	w.MoveTo(PtI(x0, y0))
	w.LineTo(PtI(x1, y0))
	w.LineTo(PtI(x1, y1))
	w.LineTo(PtI(x0, y1))
	w.Close()
	return slices.Clone(w.Bytes())
}

// testFont has a glyph for each of A-Z.  Every glyph is a box of width
// 8 and height 12, with an advance of 10.
func testFont(t testing.TB) *Font {
	t.Helper()
	box := boxOutline(1, 0, 9, 12)
	var glyphs []Glyph
	var outlines []byte
	for range 26 {
		glyphs = append(glyphs, Glyph{Offset: len(outlines), Length: len(box), Advance: Int(10)})
		outlines = append(outlines, box...)
	}
	m := Metrics{UnitsPerEm: Int(16), Ascent: Int(12), Descent: Int(-4)}
	f, err := NewFont(m, []Range{{'A', 'Z' + 1}}, glyphs, outlines)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestGlyphLookup(t *testing.T) {
	f := testFont(t)

	g, ok := f.Glyph('Z')
	if !ok || g.Offset != 25*len(boxOutline(1, 0, 9, 12)) {
		t.Errorf("Z: got %+v, %t", g, ok)
	}
	for _, r := range []rune{'@', '[', 'a', 'é'} {
		if _, ok := f.Glyph(r); ok {
			t.Errorf("unexpected glyph for %q", r)
		}
	}
	if got := f.StringWidth("AB?C"); got != Int(30) {
		t.Errorf("StringWidth = %s, want 30", got)
	}
}

func TestGlyphLookupRanges(t *testing.T) {
	glyphs := make([]Glyph, 12)
	for i := range glyphs {
		glyphs[i].Advance = Fixed(i)
	}
	f, err := NewFont(Metrics{UnitsPerEm: Int(10)},
		[]Range{{'0', '9' + 1}, {'A', 'C'}}, glyphs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g, ok := f.Glyph('B'); !ok || g.Advance != 11 {
		t.Errorf("B: got %+v, %t", g, ok)
	}
	if _, ok := f.Glyph(':'); ok {
		t.Error("glyph for code point between ranges")
	}
	if got := f.Ranges(); !slices.Equal(got, []Range{{'0', ':'}, {'A', 'C'}}) {
		t.Errorf("Ranges() = %v", got)
	}
}

func TestFontRoundTrip(t *testing.T) {
	f := testFont(t)
	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	g, err := ReadFont(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if g.Metrics() != f.Metrics() || g.NumGlyphs() != 26 || !slices.Equal(g.Ranges(), f.Ranges()) {
		t.Errorf("got %+v", g)
	}
	ga, _ := g.Glyph('Q')
	fa, _ := f.Glyph('Q')
	if ga != fa || !bytes.Equal(g.Outline(ga), f.Outline(fa)) {
		t.Error("glyph Q differs")
	}

	// the font keeps its own copy of the data
	want := slices.Clone(g.Outline(ga))
	for i := range data {
		data[i] = 0
	}
	if !bytes.Equal(g.Outline(ga), want) {
		t.Error("font aliases its input")
	}
}

func TestLoadFontErrors(t *testing.T) {
	header := func(upem, ranges, glyphs int) []byte {
		buf := binary.LittleEndian.AppendUint16(nil, uint16(upem))
		buf = binary.LittleEndian.AppendUint16(buf, 10)
		buf = binary.LittleEndian.AppendUint16(buf, 0)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(ranges))
		return binary.LittleEndian.AppendUint16(buf, uint16(glyphs))
	}
	u16 := func(buf []byte, vals ...uint16) []byte {
		for _, v := range vals {
			buf = binary.LittleEndian.AppendUint16(buf, v)
		}
		return buf
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", header(160, 0, 0)[:7], ErrTruncated},
		{"short tables", u16(header(160, 1, 1), 'A', 'B'), ErrTruncated},
		{"zero upem", header(0, 0, 0), ErrCorrupt},
		{"range too long", u16(header(160, 1, 1), 'A', 'C', 0, 0, 0), ErrCorrupt},
		{"range reversed", u16(header(160, 1, 1), 'C', 'A', 0, 0, 0), ErrCorrupt},
		{"outline outside", u16(header(160, 1, 1), 'A', 'B', 0, 4, 0), ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFont(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	// a font with fewer ranges than glyphs is accepted on load
	data := u16(header(160, 1, 2), 'A', 'B', 0, 0, 0, 0, 0, 0)
	if _, err := LoadFont(data); err != nil {
		t.Errorf("unused glyph: %v", err)
	}
}

func TestNewFontErrors(t *testing.T) {
	m := Metrics{UnitsPerEm: Int(10)}
	if _, err := NewFont(m, []Range{{'A', 'C'}}, make([]Glyph, 3), nil); !errors.Is(err, ErrCorrupt) {
		t.Errorf("count mismatch: got %v", err)
	}
	if _, err := NewFont(m, []Range{{'X', 'Y'}, {'A', 'B'}}, make([]Glyph, 2), nil); !errors.Is(err, ErrCorrupt) {
		t.Errorf("unsorted ranges: got %v", err)
	}
}

func TestPathRecord(t *testing.T) {
	stream := boxOutline(0, 0, 5, 5)
	p := NewPath(stream)
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if n := binary.LittleEndian.Uint16(data); int(n) != len(stream) {
		t.Errorf("length field %d, want %d", n, len(stream))
	}

	// trailing bytes are ignored
	q, err := LoadPath(append(slices.Clone(data), 1, 2, 3))
	if err != nil || !bytes.Equal(q.Commands(), stream) {
		t.Errorf("LoadPath: %v", err)
	}
	q, err = ReadPath(bytes.NewReader(data))
	if err != nil || !bytes.Equal(q.Commands(), stream) {
		t.Errorf("ReadPath: %v", err)
	}

	for _, n := range []int{0, 1, 2, len(data) - 1} {
		if _, err := LoadPath(data[:n]); !errors.Is(err, ErrTruncated) {
			t.Errorf("LoadPath(%d bytes): got %v", n, err)
		}
		if _, err := ReadPath(bytes.NewReader(data[:n])); !errors.Is(err, ErrTruncated) {
			t.Errorf("ReadPath(%d bytes): got %v", n, err)
		}
	}

	bad := NewPath([]byte{'M', 0, 1})
	var cmdErr *CommandError
	if err := bad.Validate(); !errors.As(err, &cmdErr) {
		t.Errorf("Validate: got %v", err)
	}

	huge := NewPath(make([]byte, maxRecordLength+1))
	if _, err := huge.MarshalBinary(); !errors.Is(err, ErrTooLarge) {
		t.Errorf("huge path: got %v", err)
	}
}
