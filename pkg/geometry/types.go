// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point or offset with floating-point coordinates.
type Point2D = r2.Vec

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Measured reports whether both dimensions are finite and strictly positive.
// Unmounted containers and unloaded images report a zero size.
func (s Size) Measured() bool {
	return Finite(s.Width) && Finite(s.Height) && s.Width > 0 && s.Height > 0
}

// Scale returns the size multiplied by a factor.
func (s Size) Scale(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Vec returns the size as a vector.
func (s Size) Vec() r2.Vec {
	return r2.Vec{X: s.Width, Y: s.Height}
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point2D {
	return Point2D{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Translate returns the rectangle moved by an offset.
func (r Rect) Translate(offset Point2D) Rect {
	tl := r2.Add(r.TopLeft(), offset)
	return Rect{X: tl.X, Y: tl.Y, Width: r.Width, Height: r.Height}
}

// Scale returns the rectangle with origin and dimensions multiplied by factor.
// This is the projection from design space into rendered pixels.
func (r Rect) Scale(factor float64) Rect {
	tl := r2.Scale(factor, r.TopLeft())
	return Rect{X: tl.X, Y: tl.Y, Width: r.Width * factor, Height: r.Height * factor}
}

// ApproxEqual reports whether every edge of r is within tol of other.
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return scalar.EqualWithinAbs(r.X, other.X, tol) &&
		scalar.EqualWithinAbs(r.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(r.Width, other.Width, tol) &&
		scalar.EqualWithinAbs(r.Height, other.Height, tol)
}

// Clamp constrains v to [lo, hi]. If lo > hi the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
