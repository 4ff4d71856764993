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
	"errors"
	"testing"
)

func TestTextOrigin(t *testing.T) {
	f := testFont(t)
	tests := []struct {
		align  TextAlign
		anchor TextAnchor
		want   Point
	}{
		{AlignLeft, AnchorBaseline, Point{}},
		{AlignRight, AnchorBaseline, Pt(-Int(20), 0)},
		{AlignCenter, AnchorBaseline, Pt(-Int(10), 0)},
		{AlignLeft, AnchorMiddle, Pt(0, -Int(6))},
		{AlignLeft, AnchorTop, Pt(0, -Int(12))},
		{AlignCenter, AnchorBottom, Pt(-Int(10), Int(4))},
	}
	for _, tt := range tests {
		t.Run(tt.align.String()+"-"+tt.anchor.String(), func(t *testing.T) {
			if got := textOrigin(f, "AB", tt.align, tt.anchor); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetTextSize(t *testing.T) {
	ctx, err := NewContext(NewBitmap(8, 8, Color8))
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	ctx.SetTextSize(testFont(t), 24)
	tr := ctx.Transform()
	if tr.ScaleFrom != Pt(16, -16) || tr.ScaleTo != Pt(24, 24) {
		t.Errorf("got scale %s -> %s", tr.ScaleFrom, tr.ScaleTo)
	}
}

// drawText fills s at (10, 20) with a 16 pixel em, where one font unit
// is one pixel.
func drawText(t *testing.T, f *Font, s string) (*Bitmap, *Context) {
	t.Helper()
	bm := NewBitmap(64, 32, Color8)
	bm.Clear(Black)
	ctx, err := NewContext(bm, WithMode(ModeBinary))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ctx.Close() })

	ctx.SetTextSize(f, 16)
	ctx.SetOffset(PtI(10, 20))
	ctx.BeginFill()
	if err := ctx.DrawString(s, f, AlignLeft, AnchorBaseline); err != nil {
		t.Fatal(err)
	}
	return bm, ctx
}

func TestDrawString(t *testing.T) {
	f := testFont(t)
	bm, ctx := drawText(t, f, "A?B")
	ctx.EndFill()

	// The glyph boxes cover x 11..18 and 21..28, y 8..19.
	for _, p := range []struct {
		x, y    int
		painted bool
	}{
		{15, 14, true},
		{25, 14, true},
		{11, 8, true},
		{28, 19, true},
		{20, 14, false},
		{15, 5, false},
		{15, 20, false},
		{31, 14, false},
	} {
		want := Black
		if p.painted {
			want = White
		}
		if got := bm.ColorAt(p.x, p.y); got != want {
			t.Errorf("(%d, %d): got %v, want %v", p.x, p.y, got, want)
		}
	}
}

func TestGlyphText(t *testing.T) {
	box := boxOutline(1, 0, 9, 12)
	ring, err := NewFont(Metrics{UnitsPerEm: Int(16)},
		[]Range{{'A', 'B'}, {0xC5, 0xC6}},
		[]Glyph{
			{Length: len(box), Advance: Int(10)},
			{Length: len(box), Advance: Int(10)},
		}, box)
	if err != nil {
		t.Fatal(err)
	}
	plain := testFont(t)

	tests := []struct {
		name string
		f    *Font
		in   string
		want string
	}{
		{"ascii", plain, "ABC", "ABC"},
		{"no composed glyph", plain, "A\u030a", "A\u030a"},
		{"composed glyph", ring, "A\u030a", "\u00c5"},
		{"precomposed", ring, "\u00c5", "\u00c5"},
		{"mixed", ring, "xA\u030aA\u0301", "x\u00c5A\u0301"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphText(tt.f, tt.in); got != tt.want {
				t.Errorf("got %+q, want %+q", got, tt.want)
			}
		})
	}
}

func TestDrawStringCombiningMark(t *testing.T) {
	// The font has no glyph for U+00C5 or for the combining ring, so the
	// A is drawn on its own.
	bm, ctx := drawText(t, testFont(t), "A\u030a")
	ctx.EndFill()
	if got := bm.ColorAt(15, 14); got != White {
		t.Errorf("base character not drawn: got %v", got)
	}
}

func TestDrawStringBadOutline(t *testing.T) {
	bad := []byte{'X', 0}
	f, err := NewFont(Metrics{UnitsPerEm: Int(16)}, []Range{{'a', 'b'}},
		[]Glyph{{Length: len(bad), Advance: Int(4)}}, bad)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := NewContext(NewBitmap(8, 8, Color8))
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	err = ctx.DrawString("a", f, AlignLeft, AnchorBaseline)
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Offset != 0 {
		t.Errorf("got %v", err)
	}
}

func TestDrawStringAfterBadGlyph(t *testing.T) {
	bad := []byte{'X', 0}
	box := boxOutline(1, 0, 9, 12)
	f, err := NewFont(Metrics{UnitsPerEm: Int(16), Ascent: Int(12)}, []Range{{'a', 'c'}},
		[]Glyph{
			{Length: len(bad), Advance: Int(10)},
			{Offset: len(bad), Length: len(box), Advance: Int(10)},
		}, append(bad, box...))
	if err != nil {
		t.Fatal(err)
	}
	bm := NewBitmap(64, 32, Color8)
	ctx, err := NewContext(bm, WithMode(ModeBinary))
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()
	ctx.SetTextSize(f, 16)
	ctx.SetOffset(PtI(10, 20))
	ctx.BeginFill()

	err = ctx.DrawString("ab", f, AlignLeft, AnchorBaseline)
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != 'X' {
		t.Errorf("got error %v", err)
	}
	ctx.EndFill()

	// b is drawn after the advance of a, covering x 21..28
	if got := bm.ColorAt(25, 14); got != White {
		t.Errorf("glyph after the bad one: got %v, want White", got)
	}
	if got := bm.ColorAt(15, 14); got != Black {
		t.Errorf("bad glyph painted: got %v", got)
	}
}
