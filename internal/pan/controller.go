package pan

import (
	"manhattan-map/pkg/geometry"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
)

// Device decides whether a window width is treated as mobile.
type Device interface {
	IsMobile(width float64) bool
}

// State is the drag state machine state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Touch describes the fingers on the surface for one input event.
type Touch struct {
	// Points holds every active touch point, in container coordinates.
	Points []geometry.Point2D
	// OnLandmark is set when the touch target is a landmark marker.
	OnLandmark bool
}

// Single returns a one-finger touch at p.
func Single(p geometry.Point2D) Touch {
	return Touch{Points: []geometry.Point2D{p}}
}

// Snapshot is the state published to listeners after every change.
type Snapshot struct {
	Position    geometry.Point2D
	Dragging    bool
	HintVisible bool
}

// Controller tracks single-finger drags and owns the content position.
// All methods must be called from the UI event goroutine.
type Controller struct {
	device   Device
	measurer Measurer
	log      zerolog.Logger

	width     float64
	state     State
	position  geometry.Point2D
	dragStart geometry.Point2D
	moved     bool

	hintDismissed bool

	listeners map[int]func(Snapshot)
	nextID    int
}

// NewController creates an idle controller at the centered origin.
func NewController(device Device, measurer Measurer, log zerolog.Logger) *Controller {
	return &Controller{
		device:    device,
		measurer:  measurer,
		log:       log,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn for state changes and returns its unsubscribe func.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Controller) notify() {
	snap := c.Snapshot()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

// Snapshot returns the current published state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Position:    c.position,
		Dragging:    c.state == Dragging,
		HintVisible: c.HintVisible(),
	}
}

// Position returns the current translation of the content layer.
func (c *Controller) Position() geometry.Point2D {
	return c.position
}

// IsDragging reports whether a drag session is active.
func (c *Controller) IsDragging() bool {
	return c.state == Dragging
}

// State returns the state machine state.
func (c *Controller) State() State {
	return c.state
}

// HintVisible reports whether the swipe hint should still be shown.
// It is false on desktop widths and after the first drag move.
func (c *Controller) HintVisible() bool {
	return !c.hintDismissed && c.mobile()
}

// Bounds returns freshly measured pan bounds.
func (c *Controller) Bounds() Bounds {
	return MeasureBounds(c.measurer)
}

// Width returns the last window width passed to Resize.
func (c *Controller) Width() float64 {
	return c.width
}

func (c *Controller) mobile() bool {
	return c.device != nil && c.device.IsMobile(c.width)
}

// TouchStart begins a drag if the window is mobile-sized, exactly one finger
// is down and the target is not a landmark. It reports whether a drag began.
func (c *Controller) TouchStart(t Touch) bool {
	if len(t.Points) != 1 || t.OnLandmark || !c.mobile() {
		return false
	}
	if c.state == Dragging {
		return false
	}

	c.state = Dragging
	c.moved = false
	c.dragStart = r2.Sub(t.Points[0], c.position)
	c.log.Debug().
		Float64("x", t.Points[0].X).
		Float64("y", t.Points[0].Y).
		Msg("drag start")
	c.notify()
	return true
}

// TouchMove moves the content to follow the finger, clamped to the current
// bounds. Multi-finger moves are ignored.
func (c *Controller) TouchMove(t Touch) {
	if c.state != Dragging || len(t.Points) != 1 {
		return
	}

	raw := r2.Sub(t.Points[0], c.dragStart)
	c.position = c.Bounds().Clamp(raw)

	if !c.moved {
		c.moved = true
		if !c.hintDismissed {
			c.hintDismissed = true
			c.log.Debug().Msg("swipe hint dismissed")
		}
	}
	c.notify()
}

// TouchEnd ends the drag session at its current position.
func (c *Controller) TouchEnd() {
	if c.state != Dragging {
		return
	}
	c.state = Idle
	c.log.Debug().
		Float64("x", c.position.X).
		Float64("y", c.position.Y).
		Msg("drag end")
	c.notify()
}

// TouchCancel behaves like TouchEnd.
func (c *Controller) TouchCancel() {
	c.TouchEnd()
}

// Resize records the window width. Leaving the mobile range resets the
// position to the origin and ends any drag.
func (c *Controller) Resize(width float64) {
	c.width = width
	if c.mobile() {
		return
	}
	if c.state == Idle && c.position == (geometry.Point2D{}) {
		return
	}

	c.state = Idle
	c.position = geometry.Point2D{}
	c.log.Debug().Float64("width", width).Msg("desktop width, position reset")
	c.notify()
}

// Reclamp re-applies the bounds to the current position, for use after the
// content or container size changed while idle.
func (c *Controller) Reclamp() {
	p := c.Bounds().Clamp(c.position)
	if p == c.position {
		return
	}
	c.position = p
	c.notify()
}
