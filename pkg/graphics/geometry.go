package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so an empty
// rectangle contains nothing.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// FarthestCornerDistance returns the distance from p to the farthest corner.
// A ripple centred on p with this radius covers the whole rectangle.
func (r Rect) FarthestCornerDistance(p Offset) float64 {
	dx := math.Max(math.Abs(p.X-r.Left), math.Abs(p.X-r.Right))
	dy := math.Max(math.Abs(p.Y-r.Top), math.Abs(p.Y-r.Bottom))
	return math.Hypot(dx, dy)
}

// Transform is the 2D transform applied to a node's content, around its
// centre: horizontal scale first, then rotation.
type Transform struct {
	// ScaleX is the horizontal scale factor. 1 is identity.
	ScaleX float64
	// Rotation is the clockwise rotation in degrees.
	Rotation float64
}

// IdentityTransform leaves content unchanged.
var IdentityTransform = Transform{ScaleX: 1}

// IsIdentity reports whether the transform leaves content unchanged.
func (t Transform) IsIdentity() bool {
	return t.ScaleX == 1 && t.Rotation == 0
}

// Apply maps a point expressed relative to the transform origin.
func (t Transform) Apply(p Offset) Offset {
	x := p.X * t.ScaleX
	rad := t.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Offset{
		X: x*cos - p.Y*sin,
		Y: x*sin + p.Y*cos,
	}
}
