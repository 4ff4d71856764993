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
	"encoding/binary"
	"fmt"
)

// Command codes of the command stream format.  Each record is a 16-bit
// little-endian code followed by a fixed number of 16-bit little-endian
// signed parameters, in fixed-point units.
const (
	CmdMoveTo        uint16 = 'M' // x y
	CmdLineTo        uint16 = 'L' // x y
	CmdHLineTo       uint16 = 'H' // x
	CmdVLineTo       uint16 = 'V' // y
	CmdCubicTo       uint16 = 'C' // x1 y1 x2 y2 x y
	CmdSmoothCubicTo uint16 = 'S' // x2 y2 x y
	CmdQuadTo        uint16 = 'Q' // x1 y1 x y
	CmdSmoothQuadTo  uint16 = 'T' // x y
	CmdClose         uint16 = 'Z'
)

// ParamCount returns the number of parameters of a command code, and
// false if the code is unknown.
func ParamCount(code uint16) (int, bool) {
	switch code {
	case CmdClose:
		return 0, true
	case CmdHLineTo, CmdVLineTo:
		return 1, true
	case CmdMoveTo, CmdLineTo, CmdSmoothQuadTo:
		return 2, true
	case CmdSmoothCubicTo, CmdQuadTo:
		return 4, true
	case CmdCubicTo:
		return 6, true
	default:
		return 0, false
	}
}

// SegmentOp identifies the kind of a [Segment].
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota // Pts[0] is the new current point
	SegmentLineTo                  // Pts[0] is the end point
	SegmentCubeTo                  // Pts[0], Pts[1] are control points, Pts[2] the end
	SegmentClose                   // Pts[0] is the start of the subpath
)

func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentCubeTo:
		return "CubeTo"
	case SegmentClose:
		return "Close"
	default:
		return fmt.Sprintf("SegmentOp(%d)", uint8(op))
	}
}

// Segment is a command with all implicit parameters resolved to absolute
// points.
type Segment struct {
	Op  SegmentOp
	Pts [3]Point
}

// DecodeCommands walks a command stream and calls yield for each segment.
// Quadratic curves are converted to cubic curves.  Decoding stops early
// if yield returns false.
//
// An unknown command code or a record which extends past the end of data
// stops decoding with a *[CommandError].  Segments before the error have
// already been passed to yield.
func DecodeCommands(data []byte, yield func(Segment) bool) error {
	var (
		cur, start Point
		ctrl       Point // last control point, for S and T
		prev       uint16
		params     [6]Fixed
	)

	for pos := 0; pos < len(data); {
		if len(data)-pos < 2 {
			return &CommandError{Offset: pos, Err: ErrTruncated}
		}
		code := binary.LittleEndian.Uint16(data[pos:])
		n, ok := ParamCount(code)
		if !ok {
			return &CommandError{Offset: pos, Code: code, Err: ErrBadCommand}
		}
		if len(data)-pos-2 < 2*n {
			return &CommandError{Offset: pos, Code: code, Err: ErrTruncated}
		}
		for i := range n {
			params[i] = Fixed(int16(binary.LittleEndian.Uint16(data[pos+2+2*i:])))
		}
		pos += 2 + 2*n

		var s Segment
		switch code {
		case CmdMoveTo:
			cur = Point{X: params[0], Y: params[1]}
			start = cur
			s = Segment{Op: SegmentMoveTo, Pts: [3]Point{cur}}
		case CmdLineTo:
			cur = Point{X: params[0], Y: params[1]}
			s = Segment{Op: SegmentLineTo, Pts: [3]Point{cur}}
		case CmdHLineTo:
			cur.X = params[0]
			s = Segment{Op: SegmentLineTo, Pts: [3]Point{cur}}
		case CmdVLineTo:
			cur.Y = params[0]
			s = Segment{Op: SegmentLineTo, Pts: [3]Point{cur}}
		case CmdCubicTo:
			c1 := Point{X: params[0], Y: params[1]}
			c2 := Point{X: params[2], Y: params[3]}
			end := Point{X: params[4], Y: params[5]}
			s = Segment{Op: SegmentCubeTo, Pts: [3]Point{c1, c2, end}}
			ctrl, cur = c2, end
		case CmdSmoothCubicTo:
			c1 := cur
			if prev == CmdCubicTo || prev == CmdSmoothCubicTo {
				c1 = cur.Reflect(ctrl)
			}
			c2 := Point{X: params[0], Y: params[1]}
			end := Point{X: params[2], Y: params[3]}
			s = Segment{Op: SegmentCubeTo, Pts: [3]Point{c1, c2, end}}
			ctrl, cur = c2, end
		case CmdQuadTo:
			q := Point{X: params[0], Y: params[1]}
			end := Point{X: params[2], Y: params[3]}
			s = quadSegment(cur, q, end)
			ctrl, cur = q, end
		case CmdSmoothQuadTo:
			q := cur
			if prev == CmdQuadTo || prev == CmdSmoothQuadTo {
				q = cur.Reflect(ctrl)
			}
			end := Point{X: params[0], Y: params[1]}
			s = quadSegment(cur, q, end)
			ctrl, cur = q, end
		case CmdClose:
			cur = start
			s = Segment{Op: SegmentClose, Pts: [3]Point{start}}
		}
		prev = code

		if !yield(s) {
			return nil
		}
	}
	return nil
}

// quadSegment returns the cubic curve which traces the same points as
// the quadratic curve from p0 to p2 with control point q.
func quadSegment(p0, q, p2 Point) Segment {
	c1 := Point{X: (p0.X + 2*q.X) / 3, Y: (p0.Y + 2*q.Y) / 3}
	c2 := Point{X: (p2.X + 2*q.X) / 3, Y: (p2.Y + 2*q.Y) / 3}
	return Segment{Op: SegmentCubeTo, Pts: [3]Point{c1, c2, p2}}
}

// CommandWriter builds a command stream.  Coordinates are stored as
// 16-bit values; values outside the range of int16 wrap around.
// The zero value is an empty stream ready to use.
type CommandWriter struct {
	buf []byte
}

func (w *CommandWriter) put(code uint16, params ...Fixed) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, code)
	for _, v := range params {
		w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(int16(v)))
	}
}

// MoveTo starts a new subpath.
func (w *CommandWriter) MoveTo(p Point) { w.put(CmdMoveTo, p.X, p.Y) }

// LineTo appends a straight line.
func (w *CommandWriter) LineTo(p Point) { w.put(CmdLineTo, p.X, p.Y) }

// HLineTo appends a horizontal line ending at x.
func (w *CommandWriter) HLineTo(x Fixed) { w.put(CmdHLineTo, x) }

// VLineTo appends a vertical line ending at y.
func (w *CommandWriter) VLineTo(y Fixed) { w.put(CmdVLineTo, y) }

// CubicTo appends a cubic Bézier curve.
func (w *CommandWriter) CubicTo(c1, c2, p Point) {
	w.put(CmdCubicTo, c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// SmoothCubicTo appends a cubic Bézier curve whose first control point is
// the reflection of the previous curve's second control point.
func (w *CommandWriter) SmoothCubicTo(c2, p Point) {
	w.put(CmdSmoothCubicTo, c2.X, c2.Y, p.X, p.Y)
}

// QuadTo appends a quadratic Bézier curve.
func (w *CommandWriter) QuadTo(c, p Point) {
	w.put(CmdQuadTo, c.X, c.Y, p.X, p.Y)
}

// SmoothQuadTo appends a quadratic Bézier curve whose control point is
// the reflection of the previous curve's control point.
func (w *CommandWriter) SmoothQuadTo(p Point) { w.put(CmdSmoothQuadTo, p.X, p.Y) }

// Close closes the current subpath.
func (w *CommandWriter) Close() { w.put(CmdClose) }

// Bytes returns the encoded stream.  The slice aliases the writer's
// buffer until the next write.
func (w *CommandWriter) Bytes() []byte { return w.buf }

// Len returns the length of the encoded stream in bytes.
func (w *CommandWriter) Len() int { return len(w.buf) }

// Reset empties the stream, keeping the allocated buffer.
func (w *CommandWriter) Reset() { w.buf = w.buf[:0] }
