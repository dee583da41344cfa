package app

import (
	"testing"
	"time"

	"manhattan-map/internal/landmark"

	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestState() (*State, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewState(landmark.Defaults(), WithClock(clock.now)), clock
}

func TestStateDefaults(t *testing.T) {
	s, _ := newTestState()

	assert.False(t, s.IsModalOpen())
	_, ok := s.ActiveLandmark()
	assert.False(t, ok)
	assert.Nil(t, s.Trigger())
	assert.Empty(t, s.HoveredNavTarget())
	assert.False(t, s.HighlightAll())
	assert.False(t, s.MenuOpen())
	assert.False(t, s.ProfileMenuOpen())
	assert.Equal(t, 5, s.Landmarks().Len())
}

func TestOpenAndCloseModal(t *testing.T) {
	s, _ := newTestState()
	l, _ := s.Landmarks().ByID("empire-state")
	trigger := widget.NewButton("Empire", nil)

	require.True(t, s.OpenModal(l, trigger))

	active, ok := s.ActiveLandmark()
	assert.True(t, ok)
	assert.Equal(t, l, active)
	assert.Same(t, trigger, s.Trigger())

	got := s.CloseModal()
	assert.Same(t, trigger, got)
	assert.False(t, s.IsModalOpen())
	assert.Nil(t, s.Trigger())
	_, ok = s.ActiveLandmark()
	assert.False(t, ok)
}

func TestOpenModalWithoutTrigger(t *testing.T) {
	s, _ := newTestState()
	l, _ := s.Landmarks().ByID("clock")

	require.True(t, s.OpenModal(l, nil))
	assert.Nil(t, s.Trigger())
	assert.Nil(t, s.CloseModal())
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	s, _ := newTestState()
	closed := 0
	s.On(EventModalClosed, func(interface{}) { closed++ })

	assert.Nil(t, s.CloseModal())
	assert.Equal(t, 0, closed)
}

func TestModalDebounce(t *testing.T) {
	s, clock := newTestState()
	l, _ := s.Landmarks().ByID("clock")

	require.True(t, s.OpenModal(l, nil))
	s.CloseModal()

	clock.advance(ModalDebounce / 2)
	assert.False(t, s.OpenModal(l, nil))
	assert.False(t, s.IsModalOpen())

	clock.advance(ModalDebounce)
	assert.True(t, s.OpenModal(l, nil))
}

func TestOpenNavTarget(t *testing.T) {
	s, _ := newTestState()

	require.True(t, s.OpenNavTarget("contact", nil))
	active, _ := s.ActiveLandmark()
	assert.Equal(t, "walker-tower", active.ID)

	s.CloseModal()
	assert.False(t, NewState(nil).OpenNavTarget("contact", nil))
}

func TestHoverAndHighlight(t *testing.T) {
	s, _ := newTestState()
	about, _ := s.Landmarks().ByNavTarget("about")
	misc, _ := s.Landmarks().ByNavTarget("misc")

	s.SetHoveredNavTarget("about")
	assert.True(t, s.IsHighlighted(about))
	assert.False(t, s.IsHighlighted(misc))

	s.SetHoveredNavTarget("")
	assert.False(t, s.IsHighlighted(about))

	s.SetHighlightAll(true)
	assert.True(t, s.IsHighlighted(about))
	assert.True(t, s.IsHighlighted(misc))
}

func TestRapidChangesStayConsistent(t *testing.T) {
	s, clock := newTestState()
	p1, _ := s.Landmarks().ByID("clock")
	p2, _ := s.Landmarks().ByID("one-wtc")

	s.OpenModal(p1, nil)
	s.SetHoveredNavTarget("about")
	s.SetHighlightAll(true)
	s.CloseModal()
	clock.advance(time.Second)
	s.OpenModal(p2, nil)
	s.SetHoveredNavTarget("contact")

	active, ok := s.ActiveLandmark()
	assert.True(t, ok)
	assert.Equal(t, p2, active)
	assert.Equal(t, "contact", s.HoveredNavTarget())
	assert.True(t, s.HighlightAll())
}

func TestEventsAndUnsubscribe(t *testing.T) {
	s, _ := newTestState()

	var events []EventType
	offHover := s.On(EventHoverChanged, func(interface{}) { events = append(events, EventHoverChanged) })
	s.On(EventMenuChanged, func(data interface{}) {
		assert.Equal(t, true, data)
		events = append(events, EventMenuChanged)
	})

	s.SetHoveredNavTarget("xg")
	s.SetHoveredNavTarget("xg") // unchanged, no event
	s.SetMenuOpen(true)
	offHover()
	s.SetHoveredNavTarget("")

	assert.Equal(t, []EventType{EventHoverChanged, EventMenuChanged}, events)
	assert.True(t, s.MenuOpen())
}

func TestProfileMenu(t *testing.T) {
	s, _ := newTestState()
	var got []interface{}
	s.On(EventProfileMenuChanged, func(data interface{}) { got = append(got, data) })

	s.SetProfileMenuOpen(true)
	s.SetProfileMenuOpen(true)
	assert.True(t, s.ProfileMenuOpen())
	s.SetProfileMenuOpen(false)

	assert.Equal(t, []interface{}{true, false}, got)
	assert.False(t, s.MenuOpen())
}

func TestBreakpoint(t *testing.T) {
	b := DefaultBreakpoint()

	assert.True(t, b.IsMobile(500))
	assert.True(t, b.IsMobile(768))
	assert.False(t, b.IsMobile(769))
	assert.False(t, b.IsMobile(1024))
	assert.Equal(t, 768.0, b.MaxWidth)
}
