package app

// MobileBreakpoint is the widest window, in pixels, that uses the mobile layout.
const MobileBreakpoint = 768

// Breakpoint classifies window widths. Widths up to and including MaxWidth
// are mobile.
type Breakpoint struct {
	MaxWidth float64
}

// DefaultBreakpoint returns the standard mobile breakpoint.
func DefaultBreakpoint() Breakpoint {
	return Breakpoint{MaxWidth: MobileBreakpoint}
}

// IsMobile reports whether width uses the mobile layout.
func (b Breakpoint) IsMobile(width float64) bool {
	return width <= b.MaxWidth
}
