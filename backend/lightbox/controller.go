package lightbox

import (
	"vincit.fi/photo-gallery/common/logger"
)

// State is a snapshot of the lightbox. Index and Zoomed are meaningful only
// while Open is true.
type State struct {
	Open   bool
	Index  int
	Zoomed bool
}

// ScrollLock is held for as long as the lightbox is open.
type ScrollLock interface {
	Lock()
	Unlock()
}

type noScrollLock struct{}

func (s noScrollLock) Lock()   {}
func (s noScrollLock) Unlock() {}

// Controller is the Closed / Open(index, zoomed) state machine. The number
// of navigable images is asked from count on every transition so that the
// controller always follows the current filtered list.
type Controller struct {
	state  State
	count  func() int
	lock   ScrollLock
	locked bool
}

func NewController(count func() int, lock ScrollLock) *Controller {
	if lock == nil {
		lock = noScrollLock{}
	}
	return &Controller{
		count: count,
		lock:  lock,
	}
}

func (s *Controller) State() State {
	return s.state
}

func (s *Controller) IsOpen() bool {
	return s.state.Open
}

func (s *Controller) IsLocked() bool {
	return s.locked
}

// Open shows the image at index. An index outside the current list leaves
// the state unchanged and returns false.
func (s *Controller) Open(index int) bool {
	n := s.count()
	if index < 0 || index >= n {
		logger.Debug.Printf("Lightbox index %d out of range [0, %d)", index, n)
		return false
	}
	s.state = State{Open: true, Index: index, Zoomed: false}
	s.acquire()
	return true
}

func (s *Controller) Close() {
	s.state = State{}
	s.release()
}

func (s *Controller) Next() {
	s.step(1)
}

func (s *Controller) Prev() {
	s.step(-1)
}

func (s *Controller) step(delta int) {
	n := s.count()
	if !s.state.Open || n == 0 {
		return
	}
	s.state.Index = ((s.state.Index+delta)%n + n) % n
	s.state.Zoomed = false
}

func (s *Controller) ToggleZoom() {
	if s.state.Open {
		s.state.Zoomed = !s.state.Zoomed
	}
}

// Clamp moves the index back into the current list after it has changed
// and resets zoom since the image shown may differ. The lightbox closes
// when the list became empty.
func (s *Controller) Clamp() {
	if !s.state.Open {
		return
	}
	n := s.count()
	if n == 0 {
		s.Close()
	} else {
		if s.state.Index >= n {
			s.state.Index = n - 1
		}
		s.state.Zoomed = false
	}
}

// Apply runs the transition for action and tells if the state changed.
func (s *Controller) Apply(action Action) bool {
	before := s.state
	switch action {
	case ActionClose:
		s.Close()
	case ActionNext:
		s.Next()
	case ActionPrev:
		s.Prev()
	case ActionToggleZoom:
		s.ToggleZoom()
	}
	return before != s.state
}

// Release closes the lightbox and gives the scroll lock back. It is safe to
// call any number of times.
func (s *Controller) Release() {
	s.Close()
}

func (s *Controller) acquire() {
	if !s.locked {
		s.lock.Lock()
		s.locked = true
	}
}

func (s *Controller) release() {
	if s.locked {
		s.locked = false
		s.lock.Unlock()
	}
}
