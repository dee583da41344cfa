// Package pan implements touch panning of the map content within its viewport.
package pan

import (
	"math"

	"manhattan-map/pkg/geometry"
)

// Bounds limits the translation of the content layer. The origin is the
// content centered in its container, so bounds are symmetric around zero.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ComputeBounds returns how far content may move before empty space shows
// inside the container. An axis where the content fits collapses to zero, as
// do unmeasured sizes.
func ComputeBounds(container, content geometry.Size) Bounds {
	if !container.Measured() || !content.Measured() {
		return Bounds{}
	}
	ox := math.Max(0, (content.Width-container.Width)/2)
	oy := math.Max(0, (content.Height-container.Height)/2)
	// Collapsed axes stay at +0 rather than -0.
	b := Bounds{MaxX: ox, MaxY: oy}
	if ox > 0 {
		b.MinX = -ox
	}
	if oy > 0 {
		b.MinY = -oy
	}
	return b
}

// Clamp constrains p to the bounds. Clamping is idempotent.
func (b Bounds) Clamp(p geometry.Point2D) geometry.Point2D {
	return geometry.NewPoint2D(
		geometry.Clamp(p.X, b.MinX, b.MaxX),
		geometry.Clamp(p.Y, b.MinY, b.MaxY),
	)
}

// Contains reports whether p is inside the bounds (edges included).
func (b Bounds) Contains(p geometry.Point2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Fixed reports whether no movement at all is possible.
func (b Bounds) Fixed() bool {
	return b.MinX == b.MaxX && b.MinY == b.MaxY
}

// Measurer reports live sizes of the viewport container and the scaled
// content layer. Implementations must measure on every call.
type Measurer interface {
	ContainerSize() geometry.Size
	ContentSize() geometry.Size
}

// Sizes is a fixed Measurer.
type Sizes struct {
	Container geometry.Size
	Content   geometry.Size
}

// ContainerSize implements Measurer.
func (s Sizes) ContainerSize() geometry.Size { return s.Container }

// ContentSize implements Measurer.
func (s Sizes) ContentSize() geometry.Size { return s.Content }

// MeasureBounds computes bounds from a measurer's current sizes.
func MeasureBounds(m Measurer) Bounds {
	if m == nil {
		return Bounds{}
	}
	return ComputeBounds(m.ContainerSize(), m.ContentSize())
}
