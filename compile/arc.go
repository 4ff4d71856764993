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

import "math"

// arcTo appends cubic curves approximating the elliptical arc from p0 to
// p1.  The center parameterization follows appendix F.6 of the SVG 1.1
// recommendation.
func (e *encoder) arcTo(p0 point, rx, ry, rotation float64, large, sweep bool, p1 point) {
	if p0 == p1 {
		return
	}
	if rx == 0 || ry == 0 {
		e.w.LineTo(e.pt(p1))
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)

	phi := math.Mod(rotation, 360) * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// start point in the rotated frame, relative to the chord midpoint
	dx2 := (p0.x - p1.x) / 2
	dy2 := (p0.y - p1.y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	rx2, ry2 := rx*rx, ry*ry
	x12, y12 := x1*x1, y1*y1

	// enlarge radii which cannot reach from p0 to p1
	if check := x12/rx2 + y12/ry2; check > 1 {
		s := math.Sqrt(check)
		rx *= s
		ry *= s
		rx2, ry2 = rx*rx, ry*ry
	}

	sign := 1.0
	if large == sweep {
		sign = -1
	}
	sq := (rx2*ry2 - rx2*y12 - ry2*x12) / (rx2*y12 + ry2*x12)
	coef := sign * math.Sqrt(max(sq, 0))
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := (p0.x+p1.x)/2 + cosPhi*cx1 - sinPhi*cy1
	cy := (p0.y+p1.y)/2 + sinPhi*cx1 + cosPhi*cy1

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	start := math.Atan2(uy, ux)
	extent := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && extent > 0 {
		extent -= 2 * math.Pi
	} else if sweep && extent < 0 {
		extent += 2 * math.Pi
	}

	n := max(int(math.Ceil(math.Abs(extent)/(math.Pi/2)-1e-9)), 1)
	inc := extent / float64(n)
	k := 4.0 / 3.0 * math.Sin(inc/2) / (1 + math.Cos(inc/2))

	// maps a point of the unit circle onto the ellipse
	ellipse := func(x, y float64) point {
		return point{
			x: x*rx*cosPhi - y*ry*sinPhi + cx,
			y: x*rx*sinPhi + y*ry*cosPhi + cy,
		}
	}

	dy, dx := math.Sincos(start)
	for i := range n {
		c1 := ellipse(dx-k*dy, dy+k*dx)
		dy, dx = math.Sincos(start + float64(i+1)*inc)
		c2 := ellipse(dx+k*dy, dy-k*dx)
		p := ellipse(dx, dy)
		if i == n-1 {
			p = p1
		}
		e.w.CubicTo(e.pt(c1), e.pt(c2), e.pt(p))
	}
}
