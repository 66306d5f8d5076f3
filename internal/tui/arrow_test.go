package tui

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestArrowDirectionFromPointerHalf(t *testing.T) {
	a := newArrowIndicator(time.Second)
	a.PointerMove(10, 100, t0)
	if a.Dir() != arrowLeft {
		t.Fatalf("left half must point left; got %v", a.Dir())
	}
	a.PointerMove(90, 100, t0)
	if a.Dir() != arrowRight {
		t.Fatalf("right half must point right; got %v", a.Dir())
	}
}

func TestArrowDecayIsDebounced(t *testing.T) {
	a := newArrowIndicator(time.Second)
	a.PointerMove(90, 100, t0)
	// A later move restarts the decay window.
	a.PointerMove(90, 100, t0.Add(800*time.Millisecond))

	if a.Tick(t0.Add(1100 * time.Millisecond)) {
		t.Fatalf("decay fired from the superseded deadline")
	}
	if a.Dir() != arrowRight {
		t.Fatalf("direction decayed early")
	}
	if !a.Tick(t0.Add(1900 * time.Millisecond)) {
		t.Fatalf("decay must fire after the restarted window")
	}
	if a.Dir() != arrowNone {
		t.Fatalf("direction = %v after decay", a.Dir())
	}
}

func TestArrowLeaveClearsImmediately(t *testing.T) {
	a := newArrowIndicator(time.Second)
	a.PointerMove(90, 100, t0)
	a.Leave()
	if a.Dir() != arrowNone || a.pending() {
		t.Fatalf("leave must clear direction and timer")
	}
}

func TestArrowFromSlideChangeWraparound(t *testing.T) {
	a := newArrowIndicator(time.Second)

	// 4 -> 0 in a looping 5-slide gallery is a forward move.
	a.SlideChange(4, 0, 5, true, t0)
	if a.Dir() != arrowRight {
		t.Fatalf("wrap forward should point right; got %v", a.Dir())
	}

	// 0 -> 4 looping is a backward move.
	a.SlideChange(0, 4, 5, true, t0)
	if a.Dir() != arrowLeft {
		t.Fatalf("wrap backward should point left; got %v", a.Dir())
	}

	// Without looping, 0 -> 4 is a plain forward jump.
	a.SlideChange(0, 4, 5, false, t0)
	if a.Dir() != arrowRight {
		t.Fatalf("non-loop forward jump should point right; got %v", a.Dir())
	}
}
