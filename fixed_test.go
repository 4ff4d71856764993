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
	"testing"
)

func TestFixedRounding(t *testing.T) {
	tests := []struct {
		f                  Fixed
		trunc, floor, ceil int
	}{
		{0, 0, 0, 0},
		{Int(3), 3, 3, 3},
		{Int(3) + 1, 3, 3, 4},
		{Int(-3), -3, -3, -3},
		{Int(-3) + 1, -2, -3, -2},
		{Int(-3) - 1, -3, -4, -3},
		{FixedScale / 2, 0, 0, 1},
	}
	for _, tt := range tests {
		if got := tt.f.Trunc(); got != tt.trunc {
			t.Errorf("%s.Trunc() = %d, want %d", tt.f, got, tt.trunc)
		}
		if got := tt.f.Floor(); got != tt.floor {
			t.Errorf("%s.Floor() = %d, want %d", tt.f, got, tt.floor)
		}
		if got := tt.f.Ceil(); got != tt.ceil {
			t.Errorf("%s.Ceil() = %d, want %d", tt.f, got, tt.ceil)
		}
	}

	if got := Float(1.53); got != 24 {
		t.Errorf("Float(1.53) = %d, want 24", got)
	}
	if got := Fixed(-24).Float64(); got != -1.5 {
		t.Errorf("Float64 = %g, want -1.5", got)
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct{ n, d, q, m int64 }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-8, 2, -4, 0},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		q, m := floorDivMod(tt.n, tt.d)
		if q != tt.q || m != tt.m {
			t.Errorf("floorDivMod(%d, %d) = %d, %d, want %d, %d", tt.n, tt.d, q, m, tt.q, tt.m)
		}
	}
	for v := int64(-40); v <= 40; v++ {
		c := fixedCeil(v, 16)
		if 16*c < v || 16*(c-1) >= v {
			t.Errorf("fixedCeil(%d, 16) = %d", v, c)
		}
	}
}

func TestPointReflect(t *testing.T) {
	p, q := PtI(10, 20), PtI(7, 25)
	if got, want := p.Reflect(q), PtI(13, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtent(t *testing.T) {
	e := EmptyExtent()
	if !e.IsEmpty() || !e.Pixels().Empty() {
		t.Fatal("empty extent is not empty")
	}
	if e.Contains(Point{}) {
		t.Error("empty extent contains the origin")
	}

	e.Add(Pt(Int(3)+5, Int(-2)))
	if e.IsEmpty() {
		t.Fatal("extent with one point is empty")
	}
	e.Add(PtI(10, 4))
	if !e.Contains(PtI(5, 0)) || e.Contains(PtI(11, 0)) {
		t.Error("wrong Contains")
	}
	if got, want := e.Pixels(), image.Rect(3, -2, 12, 6); got != want {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
}
