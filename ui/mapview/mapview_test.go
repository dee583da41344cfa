package mapview

import (
	"testing"

	"manhattan-map/internal/app"
	"manhattan-map/internal/assets"
	"manhattan-map/internal/landmark"
	"manhattan-map/internal/pan"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-3

func newTestView(t *testing.T, size fyne.Size) (*MapView, *app.State) {
	t.Helper()
	test.NewApp()

	state := app.NewState(landmark.Defaults())
	m := New(state, Options{Log: zerolog.Nop()})
	t.Cleanup(m.Close)

	m.SetImage(assets.Placeholder(landmark.DesignWidth, landmark.DesignHeight))
	test.WidgetRenderer(m)
	m.Resize(size)
	return m, state
}

func drag(m *MapView, from fyne.Position, dx, dy float32) {
	m.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: from.Add(fyne.NewPos(dx, dy))},
		Dragged:    fyne.NewDelta(dx, dy),
	})
}

func TestPhoneLayout(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	assert.True(t, scalar.EqualWithinAbs(m.Scale(), 800.0/1019.0, 1e-9))
	content := m.ContentSize()
	assert.True(t, scalar.EqualWithinAbs(content.Width, 785.083, tol), content.Width)
	assert.True(t, scalar.EqualWithinAbs(content.Height, 800, tol))

	b := m.Controller().Bounds()
	assert.True(t, scalar.EqualWithinAbs(b.MaxX, 205.04, 0.01), b.MaxX)
	assert.True(t, scalar.EqualWithinAbs(b.MinX, -205.04, 0.01), b.MinX)
	assert.Zero(t, b.MaxY)
	assert.True(t, m.Controller().HintVisible())
}

func TestPhoneDragClampsVertically(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	start := fyne.NewPos(200, 430)
	drag(m, start, -25, -15)
	drag(m, start.Add(fyne.NewPos(-25, -15)), -25, -15)

	assert.True(t, m.IsDragging())
	off := m.Offset()
	assert.True(t, scalar.EqualWithinAbs(off.X, -50, tol), off.X)
	assert.Zero(t, off.Y)
	assert.False(t, m.Controller().HintVisible())

	m.DragEnd()
	assert.False(t, m.IsDragging())
	assert.True(t, scalar.EqualWithinAbs(m.Offset().X, -50, tol))
}

func TestDragClampsToBounds(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	drag(m, fyne.NewPos(100, 430), 900, 0)
	m.DragEnd()

	assert.True(t, scalar.EqualWithinAbs(m.Offset().X, m.Controller().Bounds().MaxX, tol))
}

func TestDragOnLandmarkDoesNotPan(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	// Empire State Building hotspot after the centered origin shift.
	drag(m, fyne.NewPos(328, 204), -10, 0)

	assert.False(t, m.IsDragging())
	assert.Equal(t, pan.Idle, m.Controller().State())
	assert.Zero(t, m.Offset().X)

	// The rejected gesture is not restarted by later moves.
	drag(m, fyne.NewPos(318, 204), -10, 0)
	assert.False(t, m.IsDragging())
	m.DragEnd()
}

func TestDesktopLayoutIgnoresDrag(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(1280, 860))

	assert.True(t, scalar.EqualWithinAbs(m.Scale(), 860.0/1019.0, 1e-9))
	assert.False(t, m.Controller().HintVisible())

	drag(m, fyne.NewPos(300, 300), -40, 0)
	assert.False(t, m.IsDragging())
	assert.Zero(t, m.Offset().X)
}

func TestResizeToDesktopResetsOffset(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	drag(m, fyne.NewPos(200, 430), -60, 0)
	require.True(t, m.IsDragging())

	m.Resize(fyne.NewSize(1024, 800))

	assert.False(t, m.IsDragging())
	assert.Zero(t, m.Offset().X)
}

func TestMarkersFollowOffset(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))
	marker := m.Markers()[0]
	require.Equal(t, "empire-state", marker.Landmark().ID)
	before := marker.Position()

	drag(m, fyne.NewPos(200, 430), -50, 0)
	m.DragEnd()

	after := marker.Position()
	assert.InDelta(t, float64(before.X-50), float64(after.X), 0.01)
	assert.InDelta(t, float64(before.Y), float64(after.Y), 0.01)

	s := m.Scale()
	assert.InDelta(t, 98*s, float64(marker.Size().Width), 0.01)
	assert.InDelta(t, 266*s, float64(marker.Size().Height), 0.01)
}

func TestMarkersHiddenWithoutImage(t *testing.T) {
	test.NewApp()
	state := app.NewState(landmark.Defaults())
	m := New(state, Options{Log: zerolog.Nop()})
	defer m.Close()
	test.WidgetRenderer(m)
	m.Resize(fyne.NewSize(375, 800))

	assert.Equal(t, 1.0, m.Scale())
	for _, b := range m.Markers() {
		assert.False(t, b.Visible(), b.Landmark().ID)
	}
}

func TestTouchPanAndMultiTouch(t *testing.T) {
	m, _ := newTestView(t, fyne.NewSize(375, 800))

	m.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 430)}})
	require.True(t, m.IsDragging())

	drag(m, fyne.NewPos(200, 430), -30, 0)
	assert.True(t, scalar.EqualWithinAbs(m.Offset().X, -30, tol))

	// A second finger turns the gesture into a pinch; moves are ignored.
	m.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 100)}})
	drag(m, fyne.NewPos(170, 430), -40, 0)
	assert.True(t, scalar.EqualWithinAbs(m.Offset().X, -30, tol))

	m.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 100)}})
	assert.False(t, m.IsDragging())

	m.TouchCancel(&mobile.TouchEvent{})
	assert.False(t, m.IsDragging())
}

func TestHighlightRefreshesMarkers(t *testing.T) {
	m, state := newTestView(t, fyne.NewSize(1280, 860))

	state.SetHighlightAll(true)
	for _, b := range m.Markers() {
		assert.True(t, b.Highlighted(), b.Landmark().ID)
	}

	state.SetHighlightAll(false)
	state.SetHoveredNavTarget("projects")
	for _, b := range m.Markers() {
		assert.Equal(t, b.Landmark().NavTarget == "projects", b.Highlighted(), b.Landmark().ID)
	}
}

func TestTapOpensModal(t *testing.T) {
	m, state := newTestView(t, fyne.NewSize(1280, 860))
	marker := m.Markers()[3]

	test.Tap(marker)

	require.True(t, state.IsModalOpen())
	active, _ := state.ActiveLandmark()
	assert.Equal(t, marker.Landmark().ID, active.ID)
	assert.Same(t, marker, state.Trigger())
}
