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
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TextAlign selects which part of a string is placed at the pivot.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextAnchor selects the vertical reference line of a string.
type TextAnchor int

const (
	AnchorBaseline TextAnchor = iota
	AnchorMiddle              // half the ascent above the baseline
	AnchorTop                 // the ascent line
	AnchorBottom              // the descent line
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorBaseline:
		return "baseline"
	case AnchorMiddle:
		return "middle"
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	default:
		return fmt.Sprintf("TextAnchor(%d)", int(a))
	}
}

// SetTextSize sets the scale so that one em of f is pixels pixels high,
// and flips the y axis of the font's outlines to point down.
func (c *Context) SetTextSize(f *Font, pixels int) {
	if !c.ok("SetTextSize") || f == nil {
		return
	}
	upem := Fixed(f.metrics.UnitsPerEm.Trunc())
	c.transform.ScaleFrom = Point{X: upem, Y: -upem}
	c.transform.ScaleTo = Point{X: Fixed(pixels), Y: Fixed(pixels)}
}

// textOrigin returns the position, in font units, where the first glyph
// of text starts relative to the pivot.
func textOrigin(f *Font, text string, align TextAlign, anchor TextAnchor) Point {
	var p Point
	switch align {
	case AlignRight:
		p.X = -f.StringWidth(text)
	case AlignCenter:
		p.X = -f.StringWidth(text) / 2
	}

	m := f.metrics
	switch anchor {
	case AnchorMiddle:
		p.Y = -m.Ascent / 2
	case AnchorTop:
		p.Y = -m.Ascent
	case AnchorBottom:
		p.Y = -m.Descent
	}
	return p
}

// glyphText returns the characters of text which are looked up in f.
// A sequence of a base character and combining marks is replaced by its
// NFC composition when f has glyphs for all composed characters, and is
// kept as given otherwise.
func glyphText(f *Font, text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}

	var b strings.Builder
	var it norm.Iter
	it.InitString(norm.NFC, text)
	for !it.Done() {
		start := it.Pos()
		seg := it.Next()
		if f.hasGlyphs(string(seg)) {
			b.Write(seg)
		} else {
			b.WriteString(text[start:it.Pos()])
		}
	}
	return b.String()
}

func (f *Font) hasGlyphs(s string) bool {
	for _, r := range s {
		if _, ok := f.Glyph(r); !ok {
			return false
		}
	}
	return true
}

// DrawString adds the outlines of text to the current shape.  The string
// is placed at the pivot of the current transform, positioned according
// to align and anchor.  Characters without a glyph in f are skipped.
//
// A character followed by combining marks is drawn with the glyph of its
// NFC composition if f has one, and as the code points given otherwise.
// A glyph with a malformed outline contributes the part of its outline
// before the error and its advance.  The remaining glyphs are still
// drawn, and the errors are returned together.
func (c *Context) DrawString(text string, f *Font, align TextAlign, anchor TextAnchor) error {
	if !c.ok("DrawString") {
		return ErrClosed
	}
	if f == nil {
		return nil
	}

	text = glyphText(f, text)
	advance := textOrigin(f, text, align, anchor)
	var errs []error
	for _, r := range text {
		g, ok := f.Glyph(r)
		if !ok {
			Logger().Debug("fctx: no glyph", "rune", r)
			continue
		}
		if err := c.DrawCommands(advance, f.Outline(g)); err != nil {
			errs = append(errs, fmt.Errorf("glyph %q: %w", r, err))
		}
		advance.X += g.Advance
	}
	return errors.Join(errs...)
}
