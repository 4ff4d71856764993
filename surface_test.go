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
	"image"
	"image/color"
	"testing"
)

func TestColorModel(t *testing.T) {
	tests := []struct {
		in   color.Color
		want Color
	}{
		{color.White, White},
		{color.Black, Black},
		{color.Transparent, 0},
		{color.NRGBA{R: 255, A: 255}, Red},
		{color.NRGBA{R: 170, G: 85, B: 0, A: 255}, ARGB(3, 2, 1, 0)},
		{color.NRGBA{B: 255, A: 85}, ARGB(1, 0, 0, 3)},
		{Green, Green},
	}
	for _, tt := range tests {
		if got := ColorModel.Convert(tt.in); got != tt.want {
			t.Errorf("%v: got %08b, want %08b", tt.in, got, tt.want)
		}
	}

	// every color survives the round trip through RGBA
	for c := range 256 {
		if got := ColorModel.Convert(color.NRGBA64Model.Convert(Color(c))); got != Color(c) && Color(c).A() != 0 {
			t.Errorf("%08b: got %08b", c, got)
		}
	}
}

func TestIsWhite(t *testing.T) {
	for _, c := range []Color{White, ARGB(3, 3, 2, 0), ARGB(0, 2, 2, 1)} {
		if !c.IsWhite() {
			t.Errorf("%08b is not white", c)
		}
	}
	for _, c := range []Color{Black, Red, Blue, ARGB(3, 2, 1, 1)} {
		if c.IsWhite() {
			t.Errorf("%08b is white", c)
		}
	}
}

func TestBitmapMono(t *testing.T) {
	bm := NewBitmap(10, 3, Mono1)
	if bm.Stride != 2 || len(bm.Pix) != 6 {
		t.Fatalf("stride %d, %d bytes", bm.Stride, len(bm.Pix))
	}
	if bm.ColorAt(9, 2) != Black {
		t.Error("new bitmap is not black")
	}
	bm.Clear(White)
	if bm.ColorAt(9, 2) != White {
		t.Error("Clear(White) did not set the pixels")
	}
	bm.Pix[1*2+1] &^= 1 << 1
	if bm.ColorAt(9, 1) != Black || bm.ColorAt(8, 1) != White {
		t.Error("wrong bit order")
	}
	if bm.ColorAt(10, 0) != 0 || bm.ColorAt(-1, 0) != 0 {
		t.Error("pixels outside the bitmap are not transparent")
	}

	row := bm.Row(2)
	if len(row.Data) != 2 || row.MinX != 0 || row.MaxX != 9 {
		t.Errorf("row %+v", row)
	}
	var img image.Image = bm
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Errorf("At(0, 0) red %#x", r)
	}
}
