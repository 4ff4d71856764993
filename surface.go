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
	"image/color"
)

// PixelFormat describes the memory layout of a surface row.
type PixelFormat int

const (
	// Mono1 packs eight pixels into a byte.  Pixel x is bit 1<<(x%8) of
	// byte x/8; a set bit is white.
	Mono1 PixelFormat = iota

	// Color8 stores one [Color] byte per pixel.
	Color8
)

func (f PixelFormat) String() string {
	switch f {
	case Mono1:
		return "mono1"
	case Color8:
		return "color8"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// Row gives access to the pixel memory of one surface row.
type Row struct {
	// Data holds the pixels of the row, starting at column 0.
	Data []byte

	// MinX and MaxX give the inclusive range of columns which may be
	// written.
	MinX, MaxX int
}

// Surface is the target of a fill.
type Surface interface {
	Format() PixelFormat

	// Bounds returns the size of the surface.  Min is always (0, 0).
	Bounds() image.Rectangle

	// Row returns the pixel memory of row y, for 0 <= y < Bounds().Dy().
	Row(y int) Row
}

// Color is a pixel value with two bits each for alpha, red, green and
// blue, packed as 0bAARRGGBB.
type Color uint8

// Some frequently used colors.
const (
	Black Color = 0b11_00_00_00
	White Color = 0b11_11_11_11
	Red   Color = 0b11_11_00_00
	Green Color = 0b11_00_11_00
	Blue  Color = 0b11_00_00_11
)

// ARGB returns a color from its four 2-bit channel values.  Each value
// is masked to the range 0 to 3.
func ARGB(a, r, g, b uint8) Color {
	return Color((a&3)<<6 | (r&3)<<4 | (g&3)<<2 | b&3)
}

func (c Color) A() uint8 { return uint8(c>>6) & 3 }
func (c Color) R() uint8 { return uint8(c>>4) & 3 }
func (c Color) G() uint8 { return uint8(c>>2) & 3 }
func (c Color) B() uint8 { return uint8(c) & 3 }

// IsWhite reports whether c is painted as a set bit on a [Mono1] surface.
// This is the case when the color channels sum to at least half of their
// maximum.
func (c Color) IsWhite() bool {
	return int(c.R())+int(c.G())+int(c.B()) >= 5
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A()) * 0x5555
	r = uint32(c.R()) * 0x5555 * a / 0xffff
	g = uint32(c.G()) * 0x5555 * a / 0xffff
	b = uint32(c.B()) * 0x5555 * a / 0xffff
	return r, g, b, a
}

// ColorModel converts arbitrary colors to [Color] values.
var ColorModel = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color(0)
	}
	// undo the premultiplication before quantizing the channels
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	q := func(v uint32) uint8 { return uint8((v + 0x2aaa) / 0x5555) }
	return ARGB(q(a), q(r), q(g), q(b))
}

// blend mixes src over dst with weight a/8 for each color channel.
// The alpha channel of dst is kept.
func blend(src, dst Color, a int) Color {
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*a + int(d)*(subRows-a) + subRows/2) / subRows)
	}
	return ARGB(dst.A(), mix(src.R(), dst.R()), mix(src.G(), dst.G()), mix(src.B(), dst.B()))
}

// Bitmap is an in-memory [Surface].  It also implements [image.Image],
// so that it can be encoded with the image/png package.
type Bitmap struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	Fmt    PixelFormat
}

var (
	_ Surface     = (*Bitmap)(nil)
	_ image.Image = (*Bitmap)(nil)
)

// NewBitmap allocates a black bitmap.
func NewBitmap(width, height int, format PixelFormat) *Bitmap {
	stride := width
	if format == Mono1 {
		stride = (width + 7) / 8
	}
	bm := &Bitmap{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
		Fmt:    format,
	}
	bm.Clear(Black)
	return bm
}

// Clear sets every pixel to c.
func (bm *Bitmap) Clear(c Color) {
	fill := byte(c)
	if bm.Fmt == Mono1 {
		fill = 0
		if c.IsWhite() {
			fill = 0xff
		}
	}
	for i := range bm.Pix {
		bm.Pix[i] = fill
	}
}

// Format implements the [Surface] interface.
func (bm *Bitmap) Format() PixelFormat {
	return bm.Fmt
}

// Bounds implements the [Surface] and [image.Image] interfaces.
func (bm *Bitmap) Bounds() image.Rectangle {
	return bm.Rect
}

// Row implements the [Surface] interface.
func (bm *Bitmap) Row(y int) Row {
	return Row{
		Data: bm.Pix[y*bm.Stride : (y+1)*bm.Stride],
		MinX: 0,
		MaxX: bm.Rect.Dx() - 1,
	}
}

// ColorModel implements the [image.Image] interface.
func (bm *Bitmap) ColorModel() color.Model {
	return ColorModel
}

// At implements the [image.Image] interface.
func (bm *Bitmap) At(x, y int) color.Color {
	return bm.ColorAt(x, y)
}

// ColorAt returns the pixel at (x, y).  Pixels outside the bitmap are
// transparent.
func (bm *Bitmap) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(bm.Rect) {
		return 0
	}
	if bm.Fmt == Mono1 {
		if bm.Pix[y*bm.Stride+x/8]&(1<<(x%8)) != 0 {
			return White
		}
		return Black
	}
	return Color(bm.Pix[y*bm.Stride+x])
}
