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
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fctx"
)

func TestFromSFNT(t *testing.T) {
	f, err := FromSFNT(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}

	m := f.Metrics()
	if m.UnitsPerEm != fctx.Int(72) {
		t.Errorf("units per em %s, want 72", m.UnitsPerEm)
	}
	if m.Ascent <= 0 || m.Descent >= 0 || m.Ascent > m.UnitsPerEm*2 {
		t.Errorf("implausible metrics %+v", m)
	}
	if got := f.Ranges(); !slices.Equal(got, []fctx.Range{{Begin: 0x20, End: 0x7F}}) {
		t.Errorf("ranges %v", got)
	}

	space, _ := f.Glyph(' ')
	if space.Length != 0 || space.Advance <= 0 {
		t.Errorf("space: %+v", space)
	}

	for r := rune(0x21); r < 0x7F; r++ {
		g, ok := f.Glyph(r)
		if !ok || g.Length == 0 || g.Advance <= 0 {
			t.Errorf("%q: %+v, %t", r, g, ok)
			continue
		}

		// Outlines are y-up, with closed subpaths.
		ext := fctx.EmptyExtent()
		var last fctx.SegmentOp
		err := fctx.DecodeCommands(f.Outline(g), func(s fctx.Segment) bool {
			if s.Op != fctx.SegmentClose {
				ext.Add(s.Pts[0])
			}
			last = s.Op
			return true
		})
		if err != nil {
			t.Errorf("%q: %v", r, err)
		}
		if last != fctx.SegmentClose {
			t.Errorf("%q: outline not closed", r)
		}
		if r == 'H' && (ext.Min.Y < -fctx.Int(1) || ext.Max.Y > m.Ascent) {
			t.Errorf("%q: extent %+v outside [0, ascent]", r, ext)
		}
	}
}

func TestFromSFNTOptions(t *testing.T) {
	f, err := FromSFNT(goregular.TTF, &SFNTOptions{
		Em:     16,
		Ranges: []fctx.Range{{Begin: '0', End: '9' + 1}, {Begin: 0xE000, End: 0xE002}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() != 10 {
		t.Errorf("got %d glyphs, want 10", f.NumGlyphs())
	}
	if got := f.Metrics().UnitsPerEm; got != fctx.Int(16) {
		t.Errorf("units per em %s, want 16", got)
	}
	// Go Regular has tabular digits.
	zero, _ := f.Glyph('0')
	one, _ := f.Glyph('1')
	if zero.Advance != one.Advance {
		t.Errorf("advance 0: %s, 1: %s", zero.Advance, one.Advance)
	}

	if _, err := FromSFNT(goregular.TTF, &SFNTOptions{Em: 4000}); err == nil {
		t.Error("oversized em accepted")
	}
	if _, err := FromSFNT([]byte("not a font"), nil); err == nil {
		t.Error("invalid data accepted")
	}
}

func TestFromSFNTRender(t *testing.T) {
	f, err := FromSFNT(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	bm := fctx.NewBitmap(40, 20, fctx.Color8)
	bm.Clear(fctx.Black)
	ctx, err := fctx.NewContext(bm)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	ctx.SetTextSize(f, 16)
	ctx.SetOffset(fctx.PtI(2, 15))
	ctx.BeginFill()
	if err := ctx.DrawString("HI", f, fctx.AlignLeft, fctx.AnchorBaseline); err != nil {
		t.Fatal(err)
	}
	ctx.EndFill()

	painted := 0
	for y := range 20 {
		for x := range 40 {
			if bm.ColorAt(x, y) != fctx.Black {
				painted++
			}
		}
	}
	if painted < 30 || painted > 300 {
		t.Errorf("%d pixels painted", painted)
	}
	if r := ctx.DirtyRect(); r.Min.Y < 2 || r.Max.Y > 17 {
		t.Errorf("dirty rectangle %v", r)
	}
}
