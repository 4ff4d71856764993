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
	"fmt"
	"image"
	"math"
)

// Fixed is a signed fixed-point number with [FixedScale] sub-units per
// integer unit.
type Fixed int32

const (
	// FixedShift is the number of fractional bits of a [Fixed] value.
	FixedShift = 4

	// FixedScale is the number of sub-units per integer unit.
	FixedScale = 1 << FixedShift
)

const (
	maxFixed = Fixed(math.MaxInt32)
	minFixed = Fixed(math.MinInt32)
)

// Int converts an integer to fixed point.
func Int(n int) Fixed {
	return Fixed(n * FixedScale)
}

// Float converts a floating point value to the nearest fixed-point value.
func Float(v float64) Fixed {
	return Fixed(math.Round(v * FixedScale))
}

// Trunc returns the integer part of f, rounding toward zero.
func (f Fixed) Trunc() int {
	return int(f) / FixedScale
}

// Floor returns the largest integer not greater than f.
func (f Fixed) Floor() int {
	return int(f) >> FixedShift
}

// Ceil returns the smallest integer not less than f.
func (f Fixed) Ceil() int {
	return (int(f) + FixedScale - 1) >> FixedShift
}

// Float64 returns f as a floating point value.
func (f Fixed) Float64() float64 {
	return float64(f) / FixedScale
}

func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float64())
}

// Point is a position in fixed-point coordinates.
type Point struct {
	X, Y Fixed
}

// Pt returns the point (x, y).
func Pt(x, y Fixed) Point {
	return Point{X: x, Y: y}
}

// PtI returns the point with integer coordinates (x, y).
func PtI(x, y int) Point {
	return Point{X: Int(x), Y: Int(y)}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Reflect returns the reflection of q through p, that is 2p-q.
func (p Point) Reflect(q Point) Point {
	return Point{X: 2*p.X - q.X, Y: 2*p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Size is a fixed-point width and height.
type Size struct {
	W, H Fixed
}

// Rect is an axis-aligned rectangle in fixed-point coordinates.
type Rect struct {
	Origin Point
	Size   Size
}

// Extent is the bounding box of all device coordinates touched since the
// start of a fill.  The zero value is not empty; use [EmptyExtent].
type Extent struct {
	Min, Max Point
}

// EmptyExtent returns an extent which contains no points.
func EmptyExtent() Extent {
	return Extent{
		Min: Point{X: maxFixed, Y: maxFixed},
		Max: Point{X: minFixed, Y: minFixed},
	}
}

// IsEmpty reports whether no point has been added to e.
func (e Extent) IsEmpty() bool {
	return e.Min.X > e.Max.X || e.Min.Y > e.Max.Y
}

// Add grows e to include p.
func (e *Extent) Add(p Point) {
	e.Min.X = min(e.Min.X, p.X)
	e.Min.Y = min(e.Min.Y, p.Y)
	e.Max.X = max(e.Max.X, p.X)
	e.Max.Y = max(e.Max.Y, p.Y)
}

// Contains reports whether p lies inside e, boundary included.
func (e Extent) Contains(p Point) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// Pixels returns the rectangle of pixels which may hold flags set by
// drawing inside e.  DDA stepping rounds columns up, so the rectangle
// extends one pixel past the last touched pixel in both directions.
func (e Extent) Pixels() image.Rectangle {
	if e.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(e.Min.X.Floor(), e.Min.Y.Floor(), e.Max.X.Floor()+2, e.Max.Y.Floor()+2)
}

// floorDivMod returns the quotient rounded toward negative infinity and
// the corresponding non-negative remainder.  The denominator d must be
// positive.
func floorDivMod(n, d int64) (q, m int64) {
	q, m = n/d, n%d
	if m < 0 {
		q--
		m += d
	}
	return q, m
}

// fixedCeil returns ceil(v/f) for positive f.
func fixedCeil(v, f int64) int64 {
	q, _ := floorDivMod(v-1+f, f)
	return q
}
