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

// ContextOption configures a [Context] during creation.
//
// Example:
//
//	// antialiased rendering, the default for color surfaces
//	ctx, err := fctx.NewContext(bm)
//
//	// binary rendering on a color surface
//	ctx, err := fctx.NewContext(bm, fctx.WithMode(fctx.ModeBinary))
type ContextOption func(*contextOptions)

type contextOptions struct {
	mode       Mode
	modeSet    bool
	trig       Trig
	rasterizer Rasterizer
}

func defaultOptions() contextOptions {
	return contextOptions{
		trig: LookupTrig{},
	}
}

// WithMode selects binary or antialiased rendering.  Without this option,
// [Color8] surfaces are rendered antialiased and [Mono1] surfaces are
// rendered in binary mode.
func WithMode(m Mode) ContextOption {
	return func(o *contextOptions) {
		o.mode = m
		o.modeSet = true
	}
}

// WithTrig replaces the trigonometric tables used for rotation and curve
// flattening.
func WithTrig(t Trig) ContextOption {
	return func(o *contextOptions) {
		if t != nil {
			o.trig = t
		}
	}
}

// WithRasterizer makes the context use r instead of allocating its own
// flag buffer.  The size of r must match the surface.  This overrides
// [WithMode].  Closing the context releases r.
func WithRasterizer(r Rasterizer) ContextOption {
	return func(o *contextOptions) {
		o.rasterizer = r
	}
}
