// Package app provides application state, configuration of the runtime, and events.
package app

import (
	"sync"
	"time"

	"manhattan-map/internal/landmark"

	"fyne.io/fyne/v2"
)

// ModalDebounce is how long after a close new open requests are ignored, so
// the tap that dismisses a modal cannot reopen one underneath it.
const ModalDebounce = 400 * time.Millisecond

// State holds UI state shared between the map, the nav panel and the modal.
// It is created once in main and passed to every component that needs it.
type State struct {
	mu sync.RWMutex

	landmarks *landmark.Index

	// Modal
	modalOpen bool
	active    landmark.Landmark
	trigger   fyne.CanvasObject
	closedAt  time.Time

	// Hover sync between nav and landmarks (desktop)
	hoveredNavTarget string
	highlightAll     bool

	// Mobile menus
	menuOpen        bool
	profileMenuOpen bool

	now func() time.Time

	// Event listeners
	listeners map[EventType]map[int]EventListener
	nextID    int
}

// EventType identifies different application events.
type EventType int

const (
	EventModalOpened EventType = iota
	EventModalClosed
	EventHoverChanged
	EventHighlightChanged
	EventMenuChanged
	EventProfileMenuChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source used for the modal debounce.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// NewState creates a new application state over the given landmarks.
func NewState(landmarks []landmark.Landmark, opts ...Option) *State {
	s := &State{
		landmarks: landmark.NewIndex(landmarks),
		now:       time.Now,
		listeners: make(map[EventType]map[int]EventListener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Landmarks returns the landmark index.
func (s *State) Landmarks() *landmark.Index {
	return s.landmarks
}

// On registers an event listener for the specified event type and returns a
// function that removes it.
func (s *State) On(event EventType, listener EventListener) (off func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners[event] == nil {
		s.listeners[event] = make(map[int]EventListener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[event][id] = listener

	return func() {
		s.mu.Lock()
		delete(s.listeners[event], id)
		s.mu.Unlock()
	}
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := make([]EventListener, 0, len(s.listeners[event]))
	for _, l := range s.listeners[event] {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// OpenModal shows the modal for a landmark. trigger is the object to focus
// again when the modal closes and may be nil. It reports false when the
// request falls inside the debounce window after a close.
func (s *State) OpenModal(l landmark.Landmark, trigger fyne.CanvasObject) bool {
	s.mu.Lock()
	if !s.closedAt.IsZero() && s.now().Sub(s.closedAt) < ModalDebounce {
		s.mu.Unlock()
		return false
	}
	s.modalOpen = true
	s.active = l
	s.trigger = trigger
	s.mu.Unlock()

	s.Emit(EventModalOpened, l)
	return true
}

// OpenNavTarget opens the modal for the landmark linked to target.
func (s *State) OpenNavTarget(target string, trigger fyne.CanvasObject) bool {
	l, ok := s.landmarks.ByNavTarget(target)
	if !ok {
		return false
	}
	return s.OpenModal(l, trigger)
}

// CloseModal hides the modal and returns the object that opened it.
func (s *State) CloseModal() fyne.CanvasObject {
	s.mu.Lock()
	if !s.modalOpen {
		s.mu.Unlock()
		return nil
	}
	trigger := s.trigger
	s.modalOpen = false
	s.active = landmark.Landmark{}
	s.trigger = nil
	s.closedAt = s.now()
	s.mu.Unlock()

	s.Emit(EventModalClosed, trigger)
	return trigger
}

// IsModalOpen reports whether the modal is showing.
func (s *State) IsModalOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modalOpen
}

// ActiveLandmark returns the landmark shown in the modal.
func (s *State) ActiveLandmark() (landmark.Landmark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.modalOpen
}

// Trigger returns the object that opened the current modal.
func (s *State) Trigger() fyne.CanvasObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trigger
}

// SetHoveredNavTarget records the nav item under the pointer ("" for none).
func (s *State) SetHoveredNavTarget(target string) {
	s.mu.Lock()
	if s.hoveredNavTarget == target {
		s.mu.Unlock()
		return
	}
	s.hoveredNavTarget = target
	s.mu.Unlock()
	s.Emit(EventHoverChanged, target)
}

// HoveredNavTarget returns the hovered nav target.
func (s *State) HoveredNavTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hoveredNavTarget
}

// SetHighlightAll toggles highlighting of every landmark.
func (s *State) SetHighlightAll(highlight bool) {
	s.mu.Lock()
	if s.highlightAll == highlight {
		s.mu.Unlock()
		return
	}
	s.highlightAll = highlight
	s.mu.Unlock()
	s.Emit(EventHighlightChanged, highlight)
}

// HighlightAll reports whether every landmark is highlighted.
func (s *State) HighlightAll() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlightAll
}

// IsHighlighted reports whether a landmark should render in its hover style.
func (s *State) IsHighlighted(l landmark.Landmark) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlightAll || (s.hoveredNavTarget != "" && s.hoveredNavTarget == l.NavTarget)
}

// SetMenuOpen opens or closes the mobile menu.
func (s *State) SetMenuOpen(open bool) {
	s.mu.Lock()
	if s.menuOpen == open {
		s.mu.Unlock()
		return
	}
	s.menuOpen = open
	s.mu.Unlock()
	s.Emit(EventMenuChanged, open)
}

// MenuOpen reports whether the mobile menu is open.
func (s *State) MenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

// SetProfileMenuOpen opens or closes the mobile profile menu.
func (s *State) SetProfileMenuOpen(open bool) {
	s.mu.Lock()
	if s.profileMenuOpen == open {
		s.mu.Unlock()
		return
	}
	s.profileMenuOpen = open
	s.mu.Unlock()
	s.Emit(EventProfileMenuChanged, open)
}

// ProfileMenuOpen reports whether the mobile profile menu is open.
func (s *State) ProfileMenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileMenuOpen
}
