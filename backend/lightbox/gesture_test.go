package lightbox

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSwipeTracker(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name     string
		start    int
		moves    []int
		expected Direction
	}{
		{"60 left", 300, []int{280, 240}, SwipeNext},
		{"60 right", 300, []int{360}, SwipePrev},
		{"30 left", 300, []int{270}, SwipeNone},
		{"exactly threshold", 300, []int{250}, SwipeNone},
		{"past threshold and back", 300, []int{200, 290}, SwipeNone},
		{"no move", 300, nil, SwipeNone},
		{"start at zero", 0, []int{60}, SwipePrev},
		{"end at zero", 60, []int{0}, SwipeNext},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tracker := SwipeTracker{}
			tracker.Start(test.start)
			for _, x := range test.moves {
				tracker.Move(x)
			}
			a.Equal(test.expected, tracker.End())
			a.False(tracker.IsActive())
		})
	}
}

func TestSwipeTracker_EndWithoutStart(t *testing.T) {
	a := assert.New(t)

	tracker := SwipeTracker{}
	tracker.Move(500)
	a.Equal(SwipeNone, tracker.End())
}

func TestSwipe_TriggersExactlyOneNext(t *testing.T) {
	a := assert.New(t)

	n := 3
	controller := NewController(fixedCount(&n), nil)
	controller.Open(0)

	tracker := SwipeTracker{}
	tracker.Start(200)
	tracker.Move(170)
	tracker.Move(140)
	a.Equal(0, controller.State().Index)
	controller.Apply(tracker.End().Action())
	a.Equal(1, controller.State().Index)

	controller.Apply(tracker.End().Action())
	a.Equal(1, controller.State().Index)

	tracker.Start(200)
	tracker.Move(170)
	controller.Apply(tracker.End().Action())
	a.Equal(1, controller.State().Index)
}

func TestKeyAction(t *testing.T) {
	a := assert.New(t)

	a.Equal(ActionClose, KeyAction(KeyEscape, true))
	a.Equal(ActionPrev, KeyAction(KeyLeft, true))
	a.Equal(ActionNext, KeyAction(KeyRight, true))

	a.Equal(ActionNone, KeyAction(KeyEscape, false))
	a.Equal(ActionNone, KeyAction(KeyLeft, false))
	a.Equal(ActionNone, KeyAction(KeyRight, false))
}

func TestPointer(t *testing.T) {
	a := assert.New(t)

	t.Run("Click on image zooms", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 100)
		a.True(pointer.IsDown())
		a.Equal(ActionToggleZoom, pointer.Release(TargetImage))
		a.False(pointer.IsDown())
	})
	t.Run("Click on backdrop closes", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetBackdrop, 100)
		a.Equal(ActionClose, pointer.Release(TargetBackdrop))
	})
	t.Run("Click on footer closes", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetFooter, 100)
		a.Equal(ActionClose, pointer.Release(TargetFooter))
	})
	t.Run("Swipe over footer", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetFooter, 400)
		pointer.Move(300)
		a.Equal(ActionNext, pointer.Release(TargetFooter))
	})
	t.Run("Press on image and release on backdrop", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 100)
		pointer.Move(110)
		a.Equal(ActionNone, pointer.Release(TargetBackdrop))
	})
	t.Run("Swipe over image", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 400)
		pointer.Move(340)
		a.Equal(ActionNext, pointer.Release(TargetBackdrop))
	})
	t.Run("Swipe right", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetBackdrop, 400)
		pointer.Move(460)
		a.Equal(ActionPrev, pointer.Release(TargetImage))
	})
	t.Run("Short drag on image does nothing", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 200)
		pointer.Move(170)
		a.Equal(ActionNone, pointer.Release(TargetImage))
	})
	t.Run("Short drag on backdrop does nothing", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetBackdrop, 200)
		pointer.Move(170)
		a.Equal(ActionNone, pointer.Release(TargetBackdrop))
	})
	t.Run("Jitter within slop is still a click", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 200)
		pointer.Move(203)
		a.Equal(ActionToggleZoom, pointer.Release(TargetImage))
	})
	t.Run("Drag from a button is not a swipe", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetNext, 400)
		pointer.Move(200)
		a.Equal(ActionNone, pointer.Release(TargetBackdrop))
	})
	t.Run("Button click", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetNext, 400)
		a.Equal(ActionNext, pointer.Release(TargetNext))
	})
	t.Run("Release without press", func(t *testing.T) {
		pointer := Pointer{}
		a.Equal(ActionNone, pointer.Release(TargetClose))
	})
	t.Run("Cancel", func(t *testing.T) {
		pointer := Pointer{}
		pointer.Press(TargetImage, 400)
		pointer.Move(100)
		pointer.Cancel()
		a.Equal(ActionNone, pointer.Release(TargetImage))
	})
}
