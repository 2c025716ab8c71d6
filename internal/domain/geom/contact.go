package geom

import "math"

// Side names the face of the actor that touches another box
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Vertical reports whether the side is top or bottom
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Horizontal reports whether the side is left or right
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Opposite returns the facing side
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return SideNone
	}
}

// LandingSide returns the actor face nearest the active floor.
// dir is the gravity direction (+1 normal, -1 inverted).
func LandingSide(dir float64) Side {
	if dir < 0 {
		return SideTop
	}
	return SideBottom
}

// HeadSide returns the actor face nearest the active ceiling
func HeadSide(dir float64) Side {
	return LandingSide(dir).Opposite()
}

// Classify determines which face of a touches b.
//
// The centre-to-centre delta is compared against the half-extent sums; when
// the boxes overlap (inclusive, so touching edges count) the axis with the
// smaller penetration wins. Equal penetration on both axes resolves
// vertically.
func Classify(a, b Box) Side {
	ca, cb := a.Center(), b.Center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y
	w := (a.W + b.W) / 2
	h := (a.H + b.H) / 2

	if math.Abs(dx) > w || math.Abs(dy) > h {
		return SideNone
	}

	overlapX := w - math.Abs(dx)
	overlapY := h - math.Abs(dy)
	if overlapX < overlapY {
		if dx > 0 {
			return SideLeft
		}
		return SideRight
	}
	if dy > 0 {
		return SideTop
	}
	return SideBottom
}

// Snap returns the position of a after pushing it flush against b on side s.
// Only the axis of s changes.
func Snap(a, b Box, s Side) Vec {
	p := a.Pos()
	switch s {
	case SideBottom:
		p.Y = b.Y - a.H
	case SideTop:
		p.Y = b.Y + b.H
	case SideRight:
		p.X = b.X - a.W
	case SideLeft:
		p.X = b.X + b.W
	}
	return p
}
