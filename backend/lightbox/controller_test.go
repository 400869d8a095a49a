package lightbox

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type countingLock struct {
	locks   int
	unlocks int
}

func (s *countingLock) Lock() {
	s.locks++
}

func (s *countingLock) Unlock() {
	s.unlocks++
}

func (s *countingLock) IsHeld() bool {
	return s.locks > s.unlocks
}

func fixedCount(n *int) func() int {
	return func() int {
		return *n
	}
}

func TestController_OpenClose(t *testing.T) {
	a := assert.New(t)

	n := 3
	lock := &countingLock{}
	controller := NewController(fixedCount(&n), lock)

	a.False(controller.IsOpen())
	a.False(lock.IsHeld())

	a.True(controller.Open(1))
	a.Equal(State{Open: true, Index: 1}, controller.State())
	a.True(lock.IsHeld())

	controller.Close()
	a.Equal(State{}, controller.State())
	a.False(lock.IsHeld())
	a.Equal(1, lock.locks)
	a.Equal(1, lock.unlocks)
}

func TestController_OpenOutOfRange(t *testing.T) {
	a := assert.New(t)

	n := 3
	lock := &countingLock{}
	controller := NewController(fixedCount(&n), lock)

	a.False(controller.Open(3))
	a.False(controller.Open(-1))
	a.False(controller.IsOpen())
	a.False(lock.IsHeld())

	n = 0
	a.False(controller.Open(0))
	a.False(controller.IsOpen())
}

func TestController_Wraparound(t *testing.T) {
	a := assert.New(t)

	n := 3
	controller := NewController(fixedCount(&n), nil)

	controller.Open(0)
	controller.Prev()
	a.Equal(2, controller.State().Index)
	controller.Next()
	a.Equal(0, controller.State().Index)
}

func TestController_CyclicNavigation(t *testing.T) {
	a := assert.New(t)

	for n := 1; n <= 5; n++ {
		count := n
		controller := NewController(fixedCount(&count), nil)
		for start := 0; start < n; start++ {
			controller.Open(start)
			for i := 0; i < n; i++ {
				controller.Next()
			}
			a.Equal(start, controller.State().Index, "next n=%d start=%d", n, start)
			for i := 0; i < n; i++ {
				controller.Prev()
			}
			a.Equal(start, controller.State().Index, "prev n=%d start=%d", n, start)
		}
	}
}

func TestController_ZoomResets(t *testing.T) {
	a := assert.New(t)

	n := 3
	controller := NewController(fixedCount(&n), nil)

	controller.ToggleZoom()
	a.False(controller.State().Zoomed)

	controller.Open(0)
	controller.ToggleZoom()
	a.True(controller.State().Zoomed)
	controller.ToggleZoom()
	a.False(controller.State().Zoomed)

	controller.ToggleZoom()
	controller.Next()
	a.False(controller.State().Zoomed)

	controller.ToggleZoom()
	controller.Prev()
	a.False(controller.State().Zoomed)

	controller.ToggleZoom()
	controller.Open(2)
	a.False(controller.State().Zoomed)
}

func TestController_ClosedIsNoOp(t *testing.T) {
	a := assert.New(t)

	n := 3
	controller := NewController(fixedCount(&n), nil)

	controller.Next()
	controller.Prev()
	controller.ToggleZoom()
	a.Equal(State{}, controller.State())
}

func TestController_Clamp(t *testing.T) {
	a := assert.New(t)

	n := 3
	lock := &countingLock{}
	controller := NewController(fixedCount(&n), lock)
	controller.Open(2)
	controller.ToggleZoom()

	n = 2
	controller.Clamp()
	a.Equal(State{Open: true, Index: 1}, controller.State())
	a.True(lock.IsHeld())

	n = 5
	controller.ToggleZoom()
	controller.Clamp()
	a.Equal(State{Open: true, Index: 1}, controller.State())

	n = 0
	controller.Clamp()
	a.False(controller.IsOpen())
	a.False(lock.IsHeld())

	controller.Next()
	controller.Prev()
	a.False(controller.IsOpen())
}

func TestController_Apply(t *testing.T) {
	a := assert.New(t)

	n := 3
	controller := NewController(fixedCount(&n), nil)
	controller.Open(0)

	a.True(controller.Apply(ActionNext))
	a.Equal(1, controller.State().Index)
	a.True(controller.Apply(ActionPrev))
	a.Equal(0, controller.State().Index)
	a.True(controller.Apply(ActionToggleZoom))
	a.True(controller.State().Zoomed)
	a.False(controller.Apply(ActionDownload))
	a.False(controller.Apply(ActionNone))
	a.True(controller.Apply(ActionClose))
	a.False(controller.IsOpen())
	a.False(controller.Apply(ActionClose))
}

func TestController_LockBalanced(t *testing.T) {
	a := assert.New(t)

	n := 3
	lock := &countingLock{}
	controller := NewController(fixedCount(&n), lock)

	controller.Open(0)
	controller.Open(1)
	controller.Open(2)
	a.Equal(1, lock.locks)

	controller.Close()
	controller.Close()
	controller.Release()
	a.Equal(1, lock.unlocks)
}

func TestController_ReleaseOnPanic(t *testing.T) {
	a := assert.New(t)

	n := 3
	lock := &countingLock{}
	controller := NewController(fixedCount(&n), lock)

	func() {
		defer func() {
			_ = recover()
		}()
		defer controller.Release()

		controller.Open(1)
		a.True(lock.IsHeld())
		panic("render failed")
	}()

	a.False(lock.IsHeld())
	a.False(controller.IsOpen())
}

func TestScrollFlag(t *testing.T) {
	a := assert.New(t)

	n := 2
	flag := NewScrollFlag()
	controller := NewController(fixedCount(&n), flag)

	a.False(flag.IsHeld())
	controller.Open(0)
	a.True(flag.IsHeld())
	controller.Next()
	a.True(flag.IsHeld())
	controller.Close()
	a.False(flag.IsHeld())
}
