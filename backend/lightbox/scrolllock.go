package lightbox

import "sync"

// ScrollFlag is a ScrollLock that only remembers whether it is held. Views
// read it to stop scrolling the content behind the lightbox.
type ScrollFlag struct {
	held bool
	mux  sync.Mutex
}

func NewScrollFlag() *ScrollFlag {
	return &ScrollFlag{}
}

func (s *ScrollFlag) Lock() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.held = true
}

func (s *ScrollFlag) Unlock() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.held = false
}

func (s *ScrollFlag) IsHeld() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.held
}
