// Package geom provides the axis-aligned box primitives shared by the
// integrator, the collision resolver and every entity variant.
//
// Coordinates are world pixels with the origin at the top-left and Y growing
// downward. Boxes are stored by their top-left corner and full size; the
// collision classification works on centres and half extents.
package geom

import "math"

// Vec is a point or displacement in world pixels
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the euclidean length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned rectangle (top-left corner + size)
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box from its top-left corner and size
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge
func (b Box) Bottom() float64 { return b.Y + b.H }

// HalfW returns half the width
func (b Box) HalfW() float64 { return b.W / 2 }

// HalfH returns half the height
func (b Box) HalfH() float64 { return b.H / 2 }

// Center returns the centre point
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Pos returns the top-left corner
func (b Box) Pos() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// Translate returns the box moved by d
func (b Box) Translate(d Vec) Box {
	return Box{X: b.X + d.X, Y: b.Y + d.Y, W: b.W, H: b.H}
}

// Inflate returns the box grown by m on every side
func (b Box) Inflate(m float64) Box {
	return Box{X: b.X - m, Y: b.Y - m, W: b.W + 2*m, H: b.H + 2*m}
}

// Overlaps reports strict intersection. Boxes that only share an edge do
// not overlap; this is the test used for overlap-only interactions.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y < o.Y+o.H &&
		b.Y+b.H > o.Y
}

// Contains reports whether o lies entirely inside b
func (b Box) Contains(o Box) bool {
	return o.X >= b.X && o.Y >= b.Y && o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// ContainsPoint reports whether p lies inside b, edges included
func (b Box) ContainsPoint(p Vec) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}
