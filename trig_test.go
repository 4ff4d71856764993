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
	"math"
	"testing"
)

func TestAtan2(t *testing.T) {
	var trig LookupTrig
	tests := []struct {
		y, x int32
		want Angle
	}{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 8192},
		{1, 0, 16384},
		{0, -1, 32768},
		{-1, 0, 49152},
		{-1, 1, 57344},
	}
	for _, tt := range tests {
		if got := trig.Atan2(tt.y, tt.x); got != tt.want {
			t.Errorf("Atan2(%d, %d) = %d, want %d", tt.y, tt.x, got, tt.want)
		}
	}

	// compare with the floating point result around the circle
	for deg := 0; deg < 360; deg += 7 {
		phi := float64(deg) * math.Pi / 180
		x := int32(math.Round(1000 * math.Cos(phi)))
		y := int32(math.Round(1000 * math.Sin(phi)))
		got := trig.Atan2(y, x)
		want := Deg(deg)
		if d := angleDiff(got, want); d > Deg(1) {
			t.Errorf("Atan2 at %d°: got %.2f°", deg, got.Degrees())
		}
	}
}

func TestSinCos(t *testing.T) {
	var trig LookupTrig
	for a := Angle(0); a < TrigMaxAngle; a += 97 {
		phi := float64(a) * 2 * math.Pi / float64(TrigMaxAngle)
		if got, want := float64(trig.Sin(a)), TrigMaxRatio*math.Sin(phi); math.Abs(got-want) > 3 {
			t.Fatalf("Sin(%d) = %g, want %g", a, got, want)
		}
		if got, want := float64(trig.Cos(a)), TrigMaxRatio*math.Cos(phi); math.Abs(got-want) > 3 {
			t.Fatalf("Cos(%d) = %g, want %g", a, got, want)
		}
	}
	if trig.Sin(TrigMaxAngle/4) != TrigMaxRatio || trig.Cos(0) != TrigMaxRatio {
		t.Error("sin/cos do not reach TrigMaxRatio")
	}
	if trig.Sin(-TrigMaxAngle/4) != -TrigMaxRatio {
		t.Error("negative angles are not wrapped")
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct{ a, b, want Angle }{
		{0, 0, 0},
		{100, 50, 50},
		{50, 100, 50},
		{10, TrigMaxAngle - 10, 20},
		{TrigMaxAngle - 10, 10, 20},
		{0, TrigMaxAngle / 2, TrigMaxAngle / 2},
	}
	for _, tt := range tests {
		if got := angleDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("angleDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDeg(t *testing.T) {
	if Deg(90) != TrigMaxAngle/4 || Deg(360) != TrigMaxAngle {
		t.Error("wrong conversion")
	}
	if got := Deg(45).Degrees(); got != 45 {
		t.Errorf("Degrees() = %g", got)
	}
}
