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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/fctx"
)

// NamedPath is a path definition from an SVG file.
type NamedPath struct {
	ID   string
	Path *fctx.Path
}

// NamedFont is a font definition from an SVG file.
type NamedFont struct {
	ID   string
	Font *fctx.Font
}

// Document holds the resources compiled from an SVG file.
type Document struct {
	Paths []NamedPath
	Fonts []NamedFont
}

// ErrNoUnicodeRange is returned for an SVG font whose font-face element
// has no usable unicode-range attribute.
var ErrNoUnicodeRange = errors.New("compile: font has no unicode range")

type svgFile struct {
	Defs []struct {
		Paths []svgPath `xml:"path"`
		Fonts []svgFont `xml:"font"`
	} `xml:"defs"`
}

type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

type svgFont struct {
	ID        string `xml:"id,attr"`
	HorizAdvX string `xml:"horiz-adv-x,attr"`
	Face      struct {
		UnitsPerEm   float64 `xml:"units-per-em,attr"`
		Ascent       float64 `xml:"ascent,attr"`
		Descent      float64 `xml:"descent,attr"`
		UnicodeRange string  `xml:"unicode-range,attr"`
	} `xml:"font-face"`
	Glyphs []svgGlyph `xml:"glyph"`
}

type svgGlyph struct {
	Unicode   string `xml:"unicode,attr"`
	Name      string `xml:"glyph-name,attr"`
	HorizAdvX string `xml:"horiz-adv-x,attr"`
	D         string `xml:"d,attr"`
}

// ligatures which are mapped to their presentation form code points
var ligatures = map[string]rune{
	"fi": 0xFB01,
	"fl": 0xFB02,
}

var unicodeRangePattern = regexp.MustCompile(`U\+([0-9A-Fa-f]+)-([0-9A-Fa-f]+)`)

// FromSVG compiles the <path> and <font> elements inside the <defs>
// sections of an SVG file.  Paths are stored unscaled.
//
// Glyphs without a single code point, glyphs outside the unicode-range of
// the font face and glyphs with invalid path data are reported in the log
// and left out (invalid outlines are replaced by empty ones).
func FromSVG(r io.Reader) (*Document, error) {
	var file svgFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("compile: reading SVG: %w", err)
	}

	doc := &Document{}
	for _, defs := range file.Defs {
		for _, p := range defs.Paths {
			data, err := ParsePathData(p.D, 1)
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", p.ID, err)
			}
			fctx.Logger().Info("compile: path", "id", p.ID, "bytes", len(data))
			doc.Paths = append(doc.Paths, NamedPath{ID: p.ID, Path: fctx.NewPath(data)})
		}
		for _, f := range defs.Fonts {
			font, err := compileSVGFont(&f)
			if err != nil {
				return nil, fmt.Errorf("font %q: %w", f.ID, err)
			}
			doc.Fonts = append(doc.Fonts, NamedFont{ID: f.ID, Font: font})
		}
	}
	return doc, nil
}

func compileSVGFont(f *svgFont) (*fctx.Font, error) {
	log := fctx.Logger().With("font", f.ID)

	m := unicodeRangePattern.FindStringSubmatch(f.Face.UnicodeRange)
	if m == nil {
		return nil, ErrNoUnicodeRange
	}
	begin, err1 := strconv.ParseUint(m[1], 16, 32)
	last, err2 := strconv.ParseUint(m[2], 16, 32)
	if err := errors.Join(err1, err2); err != nil {
		return nil, fmt.Errorf("unicode range %q: %w", f.Face.UnicodeRange, err)
	}
	end := min(last+1, 0xFFFF)

	scale := 1.0
	if f.Face.UnitsPerEm > 72 {
		scale = 72 / f.Face.UnitsPerEm
	}
	e := &encoder{scale: scale}
	metrics := fctx.Metrics{
		UnitsPerEm: e.fix(f.Face.UnitsPerEm),
		Ascent:     e.fix(f.Face.Ascent),
		Descent:    e.fix(f.Face.Descent),
	}
	if e.err != nil {
		return nil, e.err
	}

	glyphs := make(map[rune]GlyphData)
	errorCount := 0
	for _, g := range f.Glyphs {
		r, ok := entryPoint(g.Unicode)
		if !ok {
			log.Warn("compile: cannot determine entry point, discarded", "glyph", g.Name)
			continue
		}
		if uint64(r) < begin || uint64(r) >= end {
			log.Warn("compile: glyph out of range, discarded",
				"code", fmt.Sprintf("U+%04X", r), "glyph", g.Name)
			continue
		}

		adv := g.HorizAdvX
		if adv == "" {
			adv = f.HorizAdvX
		}
		advance, _ := strconv.ParseFloat(strings.TrimSpace(adv), 64)
		data := GlyphData{Advance: e.fix(advance)}
		outline, err := ParsePathData(g.D, scale)
		if err != nil {
			log.Error("compile: error packing path data",
				"code", fmt.Sprintf("U+%04X", r), "glyph", g.Name, "error", err)
			errorCount++
		} else {
			data.Outline = outline
		}
		if _, dup := glyphs[r]; dup {
			log.Debug("compile: duplicate glyph replaced", "code", fmt.Sprintf("U+%04X", r))
		}
		glyphs[r] = data
	}
	if e.err != nil {
		return nil, e.err
	}

	font, err := BuildFont(metrics, glyphs)
	if err != nil {
		return nil, err
	}
	log.Info("compile: font", "glyphs", font.NumGlyphs(), "ranges", len(font.Ranges()), "errors", errorCount)
	return font, nil
}

// entryPoint returns the code point of a glyph, given the value of its
// unicode attribute.
func entryPoint(unicode string) (rune, bool) {
	if r, ok := ligatures[unicode]; ok {
		return r, true
	}
	if utf8.RuneCountInString(unicode) == 1 {
		r, _ := utf8.DecodeRuneInString(unicode)
		return r, r != utf8.RuneError
	}
	return 0, false
}
