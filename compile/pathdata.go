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


// Package compile converts vector outlines from SVG and TrueType/OpenType
// sources into the command streams, path records and font records used
// by package fctx.
//
// All coordinates are multiplied by an em scale and then rounded to the
// nearest multiple of 1/16, the fixed-point resolution of fctx.
package compile

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/fctx"
)

var (
	// ErrSyntax is returned for malformed SVG path data.
	ErrSyntax = errors.New("compile: invalid path data")

	// ErrRange is returned when a scaled coordinate does not fit into
	// the 16-bit parameters of a command stream.
	ErrRange = errors.New("compile: coordinate out of range")
)

// number of parameters for each path data command
var cmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

type point struct {
	x, y float64
}

func (p point) add(q point) point {
	return point{p.x + q.x, p.y + q.y}
}

// encoder writes a command stream from floating point coordinates.
// The first conversion error is kept and all later ones are ignored.
type encoder struct {
	w     fctx.CommandWriter
	scale float64
	err   error
}

func (e *encoder) fix(v float64) fctx.Fixed {
	f := math.Floor(v*e.scale*16 + 0.5)
	if !(f >= math.MinInt16 && f <= math.MaxInt16) {
		if e.err == nil {
			e.err = fmt.Errorf("%w: %g", ErrRange, v)
		}
		return 0
	}
	return fctx.Fixed(f)
}

func (e *encoder) pt(p point) fctx.Point {
	return fctx.Point{X: e.fix(p.x), Y: e.fix(p.y)}
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParsePathData converts the SVG path data d into a command stream.  All
// coordinates are multiplied by scale.
//
// Absolute and relative forms of all SVG commands are accepted.  Relative
// coordinates are resolved before scaling.  Elliptical arcs are replaced
// by cubic Bézier curves, one for each quarter turn or part of it.
func ParsePathData(d string, scale float64) ([]byte, error) {
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if path[0] == ',' || path[i] < 'A' {
		return nil, fmt.Errorf("%w: path should start with a command", ErrSyntax)
	}

	e := &encoder{scale: scale}
	var f [7]float64
	var cur, start point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrSyntax, cmd, i)
		}
		for j := range n {
			if CMD == 'A' && (j == 3 || j == 4) {
				// the flags are single digits and need no separator
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
				} else {
					return nil, fmt.Errorf("%w: arc flags should be 0 or 1 in command %q at position %d", ErrSyntax, cmd, i+1)
				}
				i++
			} else {
				num, k := strconv.ParseFloat(path[i:])
				if k == 0 {
					if repeat && j == 0 && i < len(path) {
						return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrSyntax, path[i], i+1)
					}
					return nil, fmt.Errorf("%w: %d numbers should follow command %q at position %d", ErrSyntax, n, cmd, i+1)
				}
				f[j] = num
				i += k
			}
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != CMD
		abs := func(x, y float64) point {
			if rel {
				return cur.add(point{x, y})
			}
			return point{x, y}
		}

		switch CMD {
		case 'M':
			cur = abs(f[0], f[1])
			start = cur
			e.w.MoveTo(e.pt(cur))
			// further coordinate pairs are implicit line commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			e.w.Close()
			cur = start
		case 'L':
			cur = abs(f[0], f[1])
			e.w.LineTo(e.pt(cur))
		case 'H':
			if rel {
				f[0] += cur.x
			}
			cur.x = f[0]
			e.w.HLineTo(e.fix(cur.x))
		case 'V':
			if rel {
				f[0] += cur.y
			}
			cur.y = f[0]
			e.w.VLineTo(e.fix(cur.y))
		case 'C':
			c1, c2, p := abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5])
			e.w.CubicTo(e.pt(c1), e.pt(c2), e.pt(p))
			cur = p
		case 'S':
			c2, p := abs(f[0], f[1]), abs(f[2], f[3])
			if prevCmd == 'A' || prevCmd == 'a' {
				// The arc was written as cubic curves, which the decoder
				// would reflect.  After an arc the first control point is
				// the current point.
				e.w.CubicTo(e.pt(cur), e.pt(c2), e.pt(p))
			} else {
				e.w.SmoothCubicTo(e.pt(c2), e.pt(p))
			}
			cur = p
		case 'Q':
			q, p := abs(f[0], f[1]), abs(f[2], f[3])
			e.w.QuadTo(e.pt(q), e.pt(p))
			cur = p
		case 'T':
			cur = abs(f[0], f[1])
			e.w.SmoothQuadTo(e.pt(cur))
		case 'A':
			p := abs(f[5], f[6])
			e.arcTo(cur, f[0], f[1], f[2], f[3] == 1, f[4] == 1, p)
			cur = p
		}
		prevCmd = cmd
	}

	if e.err != nil {
		return nil, e.err
	}
	return e.w.Bytes(), nil
}
