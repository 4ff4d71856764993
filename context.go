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
	"image"
	"slices"
)

// Context holds the state of one drawing session on a surface.
//
// A fill starts with [Context.BeginFill], continues with any number of
// drawing calls, and ends with [Context.EndFill], which paints the
// accumulated shape onto the surface using the even-odd rule.  Points
// passed to the drawing calls are mapped to device coordinates by the
// current [Transform].
//
// A Context is not safe for concurrent use.  Calls on a nil or closed
// Context do nothing.
type Context struct {
	surface Surface
	raster  Rasterizer
	trig    Trig

	fillColor Color
	colorBias int

	transform Transform
	extent    Extent

	// device coordinates of the current point and the subpath start
	pathCur  Point
	pathInit Point

	scratch []Point
}

// NewContext creates a drawing context for s.
func NewContext(s Surface, opts ...ContextOption) (*Context, error) {
	ctx, err := newContext(s, opts)
	if err != nil {
		Logger().Error("fctx: cannot create context", "error", err)
		return nil, err
	}
	return ctx, nil
}

func newContext(s Surface, opts []ContextOption) (*Context, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	format := s.Format()
	w, h := s.Bounds().Dx(), s.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySurface, w, h)
	}

	raster := o.rasterizer
	if raster == nil {
		mode := o.mode
		if !o.modeSet {
			mode = ModeBinary
			if format == Color8 {
				mode = ModeAntialiased
			}
		}
		if mode == ModeAntialiased && format == Mono1 {
			return nil, fmt.Errorf("%w: %s rendering on %s", ErrUnsupportedFormat, mode, format)
		}
		var err error
		raster, err = NewRasterizer(mode, w, h)
		if err != nil {
			return nil, err
		}
	} else {
		rw, rh := raster.Size()
		if rw != w || rh != h {
			return nil, fmt.Errorf("%w: %dx%d != %dx%d", ErrSizeMismatch, rw, rh, w, h)
		}
		if raster.MaxCoverage() > 1 && format == Mono1 {
			return nil, fmt.Errorf("%w: antialiased rendering on %s", ErrUnsupportedFormat, format)
		}
	}

	ctx := &Context{
		surface:   s,
		raster:    raster,
		trig:      o.trig,
		fillColor: White,
		transform: IdentityTransform(),
		extent:    EmptyExtent(),
	}
	return ctx, nil
}

// Close releases the flag buffer.  Later calls on c do nothing.
func (c *Context) Close() error {
	if c == nil || c.raster == nil {
		return ErrClosed
	}
	c.raster.Release()
	c.raster = nil
	c.surface = nil
	c.scratch = nil
	return nil
}

// ok reports whether c can be used, and logs a warning if not.
func (c *Context) ok(op string) bool {
	if c == nil || c.raster == nil {
		Logger().Warn("fctx: call on closed context", "op", op)
		return false
	}
	return true
}

// Mode returns the rendering mode of c.
func (c *Context) Mode() Mode {
	if c != nil && c.raster != nil && c.raster.MaxCoverage() > 1 {
		return ModeAntialiased
	}
	return ModeBinary
}

// Extent returns the bounding box of all device coordinates used since
// the last call to BeginFill.
func (c *Context) Extent() Extent {
	if c == nil {
		return EmptyExtent()
	}
	return c.extent
}

// DirtyRect returns the pixels of the surface which EndFill may have
// changed.
func (c *Context) DirtyRect() image.Rectangle {
	if !c.ok("DirtyRect") {
		return image.Rectangle{}
	}
	return c.extent.Pixels().Intersect(c.surface.Bounds())
}

// BeginFill starts a new shape.
func (c *Context) BeginFill() {
	if !c.ok("BeginFill") {
		return
	}
	c.extent = EmptyExtent()
	c.pathCur = Point{}
	c.pathInit = Point{}
}

// SetFillColor sets the color used by EndFill.
func (c *Context) SetFillColor(col Color) {
	if !c.ok("SetFillColor") {
		return
	}
	c.fillColor = col
}

// SetColorBias sets a value which is added to the coverage of every
// partially or fully covered pixel in antialiased mode, before it is
// clamped to the range 0 to 8.  Positive values make shapes look
// heavier, negative values lighter.
//
// Pixels without coverage are never biased, so a positive bias does not
// paint the whole dirty rectangle.  Implementations which add the bias
// to every pixel of the span behave differently for bias > 0.
func (c *Context) SetColorBias(bias int) {
	if !c.ok("SetColorBias") {
		return
	}
	c.colorBias = bias
}

// Transform returns the current transform.
func (c *Context) Transform() Transform {
	if c == nil {
		return IdentityTransform()
	}
	return c.transform
}

// SetTransform replaces all transform parameters at once.
func (c *Context) SetTransform(t Transform) {
	if !c.ok("SetTransform") {
		return
	}
	c.transform = t
}

// SetOffset sets the device position of the pivot point.
func (c *Context) SetOffset(offset Point) {
	if !c.ok("SetOffset") {
		return
	}
	c.transform.Offset = offset
}

// SetScale scales x coordinates by to.X/from.X and y coordinates by
// to.Y/from.Y.  The components of from must be non-zero.
func (c *Context) SetScale(from, to Point) {
	if !c.ok("SetScale") {
		return
	}
	c.transform.ScaleFrom = from
	c.transform.ScaleTo = to
}

// SetRotation sets the rotation angle around the pivot.
func (c *Context) SetRotation(a Angle) {
	if !c.ok("SetRotation") {
		return
	}
	c.transform.Rotation = a
}

// SetPivot sets the path point which is mapped to the offset.
func (c *Context) SetPivot(p Point) {
	if !c.ok("SetPivot") {
		return
	}
	c.transform.Pivot = p
}

// mapper returns the transform for path points, shifted by advance.
func (c *Context) mapper(advance Point) preparedTransform {
	return c.transform.prepare(c.trig, advance, c.raster.SubpixelAdjust())
}

func (c *Context) device(m *preparedTransform, p Point) Point {
	d := m.apply(p)
	c.extent.Add(d)
	return d
}

// MoveTo starts a new subpath at p.
func (c *Context) MoveTo(p Point) {
	if !c.ok("MoveTo") {
		return
	}
	m := c.mapper(Point{})
	c.moveToDevice(c.device(&m, p))
}

// LineTo adds a line from the current point to p.
func (c *Context) LineTo(p Point) {
	if !c.ok("LineTo") {
		return
	}
	m := c.mapper(Point{})
	c.lineToDevice(c.device(&m, p))
}

// CurveTo adds a cubic Bézier curve from the current point to p, with
// control points c1 and c2.
func (c *Context) CurveTo(c1, c2, p Point) {
	if !c.ok("CurveTo") {
		return
	}
	m := c.mapper(Point{})
	d1 := c.device(&m, c1)
	d2 := c.device(&m, c2)
	d3 := c.device(&m, p)
	c.curveToDevice(d1, d2, d3)
}

// ClosePath adds a line from the current point back to the start of the
// subpath.
func (c *Context) ClosePath() {
	if !c.ok("ClosePath") {
		return
	}
	c.closeDevice()
}

func (c *Context) moveToDevice(d Point) {
	c.pathInit = d
	c.pathCur = d
}

func (c *Context) lineToDevice(d Point) {
	c.raster.PlotEdge(c.pathCur, d)
	c.pathCur = d
}

func (c *Context) curveToDevice(d1, d2, d3 Point) {
	flattenCubic(c.pathCur, d1, d2, d3, c.trig, c.raster.PlotEdge)
	c.pathCur = d3
}

func (c *Context) closeDevice() {
	c.raster.PlotEdge(c.pathCur, c.pathInit)
	c.pathCur = c.pathInit
}

// DrawPath adds the closed polygon with the given vertices.
// The current point is not changed.
func (c *Context) DrawPath(points []Point) {
	if !c.ok("DrawPath") {
		return
	}
	if len(points) < 2 {
		return
	}

	m := c.mapper(Point{})
	c.scratch = slices.Grow(c.scratch[:0], len(points))[:len(points)]
	for i, p := range points {
		c.scratch[i] = c.device(&m, p)
	}
	prev := c.scratch[len(c.scratch)-1]
	for _, d := range c.scratch {
		c.raster.PlotEdge(prev, d)
		prev = d
	}
}

// PlotCircle adds a circle.  Unlike the other drawing calls, center and
// radius are given in device coordinates and are not transformed.
func (c *Context) PlotCircle(center Point, radius Fixed) {
	if !c.ok("PlotCircle") {
		return
	}
	c.extent.Add(Point{X: center.X - radius, Y: center.Y - radius})
	c.extent.Add(Point{X: center.X + radius, Y: center.Y + radius})
	c.raster.PlotCircle(center, radius)
}

// DrawCommands interprets a command stream and adds the resulting
// subpaths.  All points are shifted by advance before the transform is
// applied.
//
// If the stream is malformed, the segments before the error remain part
// of the shape and a *[CommandError] is returned.
func (c *Context) DrawCommands(advance Point, data []byte) error {
	if !c.ok("DrawCommands") {
		return ErrClosed
	}

	m := c.mapper(advance)
	err := DecodeCommands(data, func(s Segment) bool {
		switch s.Op {
		case SegmentMoveTo:
			c.moveToDevice(c.device(&m, s.Pts[0]))
		case SegmentLineTo:
			c.lineToDevice(c.device(&m, s.Pts[0]))
		case SegmentCubeTo:
			d1 := c.device(&m, s.Pts[0])
			d2 := c.device(&m, s.Pts[1])
			d3 := c.device(&m, s.Pts[2])
			c.curveToDevice(d1, d2, d3)
		case SegmentClose:
			c.closeDevice()
		}
		return true
	})
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			Logger().Error("fctx: malformed command stream",
				"offset", cmdErr.Offset, "code", cmdErr.Code, "error", cmdErr.Err)
		}
		return err
	}
	return nil
}

// EndFillFunc ends the current shape without painting it.  Instead, emit
// is called for every row with the coverage of the pixels xMin, xMin+1,
// ...  Coverage ranges from 0 to [Rasterizer.MaxCoverage]; the color bias
// is not applied.  The flag buffer is cleared as for EndFill.
func (c *Context) EndFillFunc(emit func(y, xMin int, coverage []uint8)) {
	if !c.ok("EndFillFunc") {
		return
	}
	c.raster.Resolve(c.extent.Pixels(), emit)
}

// EndFill paints the pixels inside the current shape with the fill color
// and clears the flag buffer.
func (c *Context) EndFill() {
	if !c.ok("EndFill") {
		return
	}

	format := c.surface.Format()
	maxCoverage := c.raster.MaxCoverage()
	c.raster.Resolve(c.extent.Pixels(), func(y, xMin int, coverage []uint8) {
		row := c.surface.Row(y)
		lo := max(xMin, row.MinX)
		hi := min(xMin+len(coverage)-1, row.MaxX)
		for x := lo; x <= hi; x++ {
			cov := int(coverage[x-xMin])
			if cov == 0 {
				continue
			}
			if maxCoverage == 1 {
				c.paintSolid(row.Data, x, format)
				continue
			}
			a := min(max(cov+c.colorBias, 0), maxCoverage)
			if a > 0 {
				row.Data[x] = byte(blend(c.fillColor, Color(row.Data[x]), a))
			}
		}
	})
}

func (c *Context) paintSolid(data []byte, x int, format PixelFormat) {
	switch format {
	case Mono1:
		if c.fillColor.IsWhite() {
			data[x/8] |= 1 << (x % 8)
		} else {
			data[x/8] &^= 1 << (x % 8)
		}
	case Color8:
		data[x] = byte(c.fillColor)
	}
}
