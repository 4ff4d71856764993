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

import "math"

// Angle measures rotation in units of 1/[TrigMaxAngle] of a full circle.
// Positive angles turn the x-axis toward the y-axis, which is clockwise
// on a screen where y grows downward.
type Angle int32

const (
	// TrigMaxAngle is the angle of a full circle.
	TrigMaxAngle Angle = 0x10000

	// TrigMaxRatio is the value of Sin and Cos which represents 1.
	TrigMaxRatio = 0xffff
)

// Deg converts an angle in degrees.
func Deg(d int) Angle {
	return Angle(int64(d) * int64(TrigMaxAngle) / 360)
}

// Degrees returns a as a floating point number of degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / float64(TrigMaxAngle)
}

// Trig provides the fixed-point trigonometry used for rotation and for
// the curve flatness test.
type Trig interface {
	// Sin returns the sine of a, scaled by TrigMaxRatio.
	Sin(a Angle) int32

	// Cos returns the cosine of a, scaled by TrigMaxRatio.
	Cos(a Angle) int32

	// Atan2 returns the direction of the vector (x, y) in the range
	// [0, TrigMaxAngle).  Atan2(0, 0) is 0.
	Atan2(y, x int32) Angle
}

// LookupTrig implements [Trig] with table lookups.
// No floating point arithmetic is used after package initialization.
type LookupTrig struct{}

const (
	sinTableBits  = 10
	sinTableSize  = 1 << sinTableBits // entries per quarter circle
	sinTableShift = 14 - sinTableBits // quarter circle is 1<<14 angle units

	atanTableSize = 1024
)

var (
	sinTable  [sinTableSize + 1]int32
	atanTable [atanTableSize + 1]int32
)

func init() {
	for i := range sinTable {
		phi := float64(i) / sinTableSize * math.Pi / 2
		sinTable[i] = int32(math.Round(math.Sin(phi) * TrigMaxRatio))
	}
	for i := range atanTable {
		phi := math.Atan(float64(i) / atanTableSize)
		atanTable[i] = int32(math.Round(phi * float64(TrigMaxAngle) / (2 * math.Pi)))
	}
}

// Sin implements the [Trig] interface.
func (LookupTrig) Sin(a Angle) int32 {
	a &= TrigMaxAngle - 1
	quadrant := a >> 14
	rem := int32(a & (1<<14 - 1))
	if quadrant&1 != 0 {
		rem = 1<<14 - rem
	}

	idx := rem >> sinTableShift
	frac := rem & (1<<sinTableShift - 1)
	v := sinTable[idx]
	if frac != 0 {
		v += (sinTable[idx+1] - v) * frac >> sinTableShift
	}

	if quadrant >= 2 {
		v = -v
	}
	return v
}

// Cos implements the [Trig] interface.
func (t LookupTrig) Cos(a Angle) int32 {
	return t.Sin(a + TrigMaxAngle/4)
}

// Atan2 implements the [Trig] interface.
func (LookupTrig) Atan2(y, x int32) Angle {
	if x == 0 && y == 0 {
		return 0
	}

	ax, ay := abs64(int64(x)), abs64(int64(y))
	var a int32
	if ax >= ay {
		a = atanTable[ay*atanTableSize/ax]
	} else {
		a = int32(TrigMaxAngle/4) - atanTable[ax*atanTableSize/ay]
	}

	var res int32
	switch {
	case x >= 0 && y >= 0:
		res = a
	case x < 0 && y >= 0:
		res = int32(TrigMaxAngle/2) - a
	case x < 0:
		res = int32(TrigMaxAngle/2) + a
	default:
		res = int32(TrigMaxAngle) - a
	}
	return Angle(res) & (TrigMaxAngle - 1)
}

// angleDiff returns the unsigned difference between two directions,
// in the range [0, TrigMaxAngle/2].
func angleDiff(a, b Angle) Angle {
	d := (a - b) % TrigMaxAngle
	if d < 0 {
		d = -d
	}
	if d > TrigMaxAngle/2 {
		d = TrigMaxAngle - d
	}
	return d
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
