// Package scale keeps the landmark overlay congruent with the rendered map image.
package scale

import (
	"manhattan-map/internal/landmark"
	"manhattan-map/pkg/geometry"

	"github.com/rs/zerolog"
)

// DefaultScale is used until the map image has been measured.
const DefaultScale = 1.0

// Resolver derives the design-to-screen scale factor from the measured size
// of the background image. It is driven from the UI goroutine only.
type Resolver struct {
	designHeight float64
	scale        float64
	overlay      geometry.Size
	log          zerolog.Logger
}

// NewResolver creates a resolver for the standard design space.
func NewResolver(log zerolog.Logger) *Resolver {
	return NewResolverForHeight(landmark.DesignHeight, log)
}

// NewResolverForHeight creates a resolver for a custom design height.
// A non-positive height falls back to the standard design height.
func NewResolverForHeight(designHeight float64, log zerolog.Logger) *Resolver {
	if !(designHeight > 0) || !geometry.Finite(designHeight) {
		designHeight = landmark.DesignHeight
	}
	return &Resolver{
		designHeight: designHeight,
		scale:        DefaultScale,
		log:          log,
	}
}

// Resolve recomputes the scale from the rendered image size and returns it.
// The overlay is forced to exactly the rendered size so sub-pixel rounding
// cannot drift between image and markers. An unmeasured image (zero height,
// not yet loaded) keeps the previous scale.
func (r *Resolver) Resolve(rendered geometry.Size) float64 {
	if !rendered.Measured() {
		return r.scale
	}

	s := rendered.Height / r.designHeight
	if !geometry.Finite(s) || s <= 0 {
		return r.scale
	}

	if s != r.scale {
		r.log.Debug().
			Float64("height", rendered.Height).
			Float64("scale", s).
			Msg("map scale changed")
	}
	r.scale = s
	r.overlay = rendered
	return s
}

// Scale returns the current scale factor.
func (r *Resolver) Scale() float64 {
	return r.scale
}

// OverlaySize returns the size the overlay container must take. It is zero
// until the first successful measurement.
func (r *Resolver) OverlaySize() geometry.Size {
	return r.overlay
}

// Project maps a design-space box into rendered pixels relative to the overlay.
func (r *Resolver) Project(box geometry.Rect) geometry.Rect {
	return box.Scale(r.scale)
}

// ProjectLandmark returns the rendered box of a landmark.
func (r *Resolver) ProjectLandmark(l landmark.Landmark) geometry.Rect {
	return r.Project(l.Box())
}

// ToDesign converts an overlay-relative point back into design space.
func (r *Resolver) ToDesign(p geometry.Point2D) geometry.Point2D {
	return geometry.NewPoint2D(p.X/r.scale, p.Y/r.scale)
}

// FitHeight returns the rendered size of an image with the given natural size
// when it is sized to fill height h, keeping its aspect ratio.
func FitHeight(natural geometry.Size, h float64) geometry.Size {
	if !natural.Measured() || !(h > 0) {
		return geometry.Size{}
	}
	return geometry.NewSize(natural.Width*h/natural.Height, h)
}

// FitContain returns the rendered size of an image scaled to fit entirely
// inside bounds, keeping its aspect ratio.
func FitContain(natural, bounds geometry.Size) geometry.Size {
	if !natural.Measured() || !bounds.Measured() {
		return geometry.Size{}
	}
	sx := bounds.Width / natural.Width
	sy := bounds.Height / natural.Height
	s := sx
	if sy < sx {
		s = sy
	}
	return natural.Scale(s)
}
