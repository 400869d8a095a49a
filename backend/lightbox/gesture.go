package lightbox

const (
	SwipeThreshold = 50
	// ClickSlop is the largest horizontal drag still taken as a click.
	ClickSlop = 5
)

type Direction int

const (
	SwipeNone Direction = iota
	SwipeNext
	SwipePrev
)

// SwipeTracker follows one horizontal drag. Only the horizontal delta
// between the start and the last move counts, and nothing is committed
// before End.
type SwipeTracker struct {
	startX  int
	endX    int
	started bool
	moved   bool
}

func (s *SwipeTracker) Start(x int) {
	s.startX = x
	s.endX = x
	s.started = true
	s.moved = false
}

func (s *SwipeTracker) Move(x int) {
	if s.started {
		s.endX = x
		s.moved = true
	}
}

func (s *SwipeTracker) IsActive() bool {
	return s.started
}

// Delta is the distance travelled to the left so far.
func (s *SwipeTracker) Delta() int {
	if s.started && s.moved {
		return s.startX - s.endX
	}
	return 0
}

// End finishes the drag. A leftward drag beyond the threshold means the
// next image and a rightward one the previous image.
func (s *SwipeTracker) End() Direction {
	diff := s.Delta()
	s.Reset()
	if diff > SwipeThreshold {
		return SwipeNext
	} else if diff < -SwipeThreshold {
		return SwipePrev
	} else {
		return SwipeNone
	}
}

func (s *SwipeTracker) Reset() {
	*s = SwipeTracker{}
}

func (s Direction) Action() Action {
	switch s {
	case SwipeNext:
		return ActionNext
	case SwipePrev:
		return ActionPrev
	default:
		return ActionNone
	}
}

type Key int

const (
	KeyEscape Key = iota
	KeyLeft
	KeyRight
)

// KeyAction maps a key press to a transition. Keys do nothing while the
// lightbox is closed.
func KeyAction(key Key, open bool) Action {
	if !open {
		return ActionNone
	}
	switch key {
	case KeyEscape:
		return ActionClose
	case KeyLeft:
		return ActionPrev
	case KeyRight:
		return ActionNext
	default:
		return ActionNone
	}
}

// Pointer turns press, move and release of the primary button into at most
// one action. A drag that started on the image or the backdrop and went
// past the threshold is a swipe. A shorter drag does nothing. Anything
// else is a click on the target where both press and release happened.
type Pointer struct {
	swipe   SwipeTracker
	pressed Target
	down    bool
}

func (s *Pointer) Press(target Target, x int) {
	s.pressed = target
	s.down = true
	if target == TargetImage || target == TargetBackdrop || target == TargetFooter {
		s.swipe.Start(x)
	} else {
		s.swipe.Reset()
	}
}

func (s *Pointer) Move(x int) {
	if s.down {
		s.swipe.Move(x)
	}
}

func (s *Pointer) IsDown() bool {
	return s.down
}

func (s *Pointer) Release(target Target) Action {
	if !s.down {
		return ActionNone
	}
	pressed := s.pressed
	s.down = false
	s.pressed = TargetNone

	delta := s.swipe.Delta()
	if direction := s.swipe.End(); direction != SwipeNone {
		return direction.Action()
	}
	if delta > ClickSlop || delta < -ClickSlop {
		return ActionNone
	}
	if pressed != target {
		return ActionNone
	}
	return target.ClickAction()
}

func (s *Pointer) Cancel() {
	s.down = false
	s.pressed = TargetNone
	s.swipe.Reset()
}
