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
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/fctx"
)

const testSVG = `<?xml version="1.0" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1">
<defs>
  <path id="arrow" d="M0 0L10 0L5 5Z"/>
  <font id="Boxes" horiz-adv-x="500">
    <font-face units-per-em="1000" ascent="800" descent="-200" unicode-range="U+0041-0043"/>
    <glyph unicode="A" glyph-name="A" d="M0 0L500 0L500 700Z"/>
    <glyph unicode="B" glyph-name="B" horiz-adv-x="600" d=""/>
    <glyph unicode="C" glyph-name="C" d="M0 0 X"/>
    <glyph unicode="D" glyph-name="D" d="M0 0L1 1Z"/>
    <glyph unicode="fi" glyph-name="fi" d="M0 0L1 1Z"/>
    <glyph glyph-name="nothing" d="M0 0L1 1Z"/>
  </font>
</defs>
<defs>
  <font id="Ligatures" horiz-adv-x="32">
    <font-face units-per-em="64" ascent="48" descent="-16" unicode-range="U+FB01-FB02"/>
    <glyph unicode="fl" glyph-name="fl" d="M0 0h8v8z"/>
    <glyph unicode="fi" glyph-name="fi" d="M0 0h8v8z"/>
  </font>
</defs>
</svg>
`

func TestFromSVG(t *testing.T) {
	doc, err := FromSVG(strings.NewReader(testSVG))
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Paths) != 1 || doc.Paths[0].ID != "arrow" {
		t.Fatalf("unexpected paths %+v", doc.Paths)
	}
	want, _ := ParsePathData("M0 0L10 0L5 5Z", 1)
	if got := doc.Paths[0].Path.Commands(); !bytes.Equal(got, want) {
		t.Errorf("arrow: got % x, want % x", got, want)
	}

	if len(doc.Fonts) != 2 {
		t.Fatalf("got %d fonts, want 2", len(doc.Fonts))
	}

	boxes := doc.Fonts[0].Font
	wantMetrics := fctx.Metrics{UnitsPerEm: 1152, Ascent: 922, Descent: -230}
	if got := boxes.Metrics(); got != wantMetrics {
		t.Errorf("metrics %+v, want %+v", got, wantMetrics)
	}
	if got := boxes.Ranges(); !slices.Equal(got, []fctx.Range{{Begin: 'A', End: 'D'}}) {
		t.Errorf("ranges %v", got)
	}

	a, _ := boxes.Glyph('A')
	outline, _ := ParsePathData("M0 0L500 0L500 700Z", 72.0/1000)
	if a.Advance != 576 || !bytes.Equal(boxes.Outline(a), outline) {
		t.Errorf("A: advance %d, outline % x", a.Advance, boxes.Outline(a))
	}
	if b, _ := boxes.Glyph('B'); b.Advance != 691 || b.Length != 0 {
		t.Errorf("B: %+v", b)
	}
	// invalid path data leaves an empty outline
	if c, ok := boxes.Glyph('C'); !ok || c.Length != 0 {
		t.Errorf("C: %+v, %t", c, ok)
	}

	lig := doc.Fonts[1].Font
	if got := lig.Ranges(); !slices.Equal(got, []fctx.Range{{Begin: 0xFB01, End: 0xFB03}}) {
		t.Errorf("ligature ranges %v", got)
	}
	if got := lig.Metrics().UnitsPerEm; got != fctx.Int(64) {
		t.Errorf("ligature units per em %s", got)
	}
}

func TestFromSVGErrors(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want error
	}{
		{"no range", `<svg><defs><font id="x"><font-face units-per-em="10"/></font></defs></svg>`, ErrNoUnicodeRange},
		{"bad path", `<svg><defs><path id="p" d="M0 0 L"/></defs></svg>`, ErrSyntax},
		{"coordinate overflow", `<svg><defs><path id="p" d="M0 0 L3000 0"/></defs></svg>`, ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromSVG(strings.NewReader(tt.svg)); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := FromSVG(strings.NewReader("<svg><defs>")); err == nil {
		t.Error("truncated XML accepted")
	}
}

func TestEntryPoint(t *testing.T) {
	tests := []struct {
		unicode string
		want    rune
		ok      bool
	}{
		{"A", 'A', true},
		{"é", 'é', true},
		{"fi", 0xFB01, true},
		{"fl", 0xFB02, true},
		{"ff", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		r, ok := entryPoint(tt.unicode)
		if r != tt.want || ok != tt.ok {
			t.Errorf("%q: got %U, %t", tt.unicode, r, ok)
		}
	}
}

func TestBuildFont(t *testing.T) {
	glyphs := map[rune]GlyphData{
		'd': {Advance: 4, Outline: []byte{'Z', 0}},
		'a': {Advance: 1, Outline: []byte{'Z', 0}},
		'b': {Advance: 2},
	}
	f, err := BuildFont(fctx.Metrics{UnitsPerEm: fctx.Int(10)}, glyphs)
	if err != nil {
		t.Fatal(err)
	}
	want := []fctx.Range{{Begin: 'a', End: 'c'}, {Begin: 'd', End: 'e'}}
	if got := f.Ranges(); !slices.Equal(got, want) {
		t.Errorf("ranges %v, want %v", got, want)
	}
	d, ok := f.Glyph('d')
	if !ok || d.Advance != 4 || d.Offset != 2 || d.Length != 2 {
		t.Errorf("d: %+v", d)
	}
	if _, ok := f.Glyph('c'); ok {
		t.Error("unexpected glyph for c")
	}
}
