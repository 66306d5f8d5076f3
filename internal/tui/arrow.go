package tui

import "time"

type arrowDir int

const (
	arrowNone arrowDir = iota
	arrowLeft
	arrowRight
)

// arrowIndicator tracks pointer/gesture direction and decays to none after
// an inactivity window. Only one decay deadline is ever outstanding: every
// update replaces it (debounce, not throttle).
type arrowIndicator struct {
	dir     arrowDir
	decay   time.Duration
	decayAt time.Time
}

func newArrowIndicator(decay time.Duration) *arrowIndicator {
	return &arrowIndicator{decay: decay}
}

func (a *arrowIndicator) Dir() arrowDir { return a.dir }

// PointerMove sets the direction from the pointer's half of the viewport
// and restarts the decay timer.
func (a *arrowIndicator) PointerMove(x, viewportW int, now time.Time) {
	if x < viewportW/2 {
		a.dir = arrowLeft
	} else {
		a.dir = arrowRight
	}
	a.decayAt = now.Add(a.decay)
}

// SlideChange infers direction from an index change, wraparound-aware, and
// applies the same decay timer.
func (a *arrowIndicator) SlideChange(oldIdx, newIdx, length int, loop bool, now time.Time) {
	if oldIdx == newIdx || length < 2 {
		return
	}
	forward := newIdx > oldIdx
	if loop {
		if oldIdx == length-1 && newIdx == 0 {
			forward = true
		} else if oldIdx == 0 && newIdx == length-1 {
			forward = false
		}
	}
	if forward {
		a.dir = arrowRight
	} else {
		a.dir = arrowLeft
	}
	a.decayAt = now.Add(a.decay)
}

// Leave clears the timer and the direction immediately.
func (a *arrowIndicator) Leave() {
	a.dir = arrowNone
	a.decayAt = time.Time{}
}

// Tick decays the direction once the inactivity deadline passes. Reports
// whether the indicator changed.
func (a *arrowIndicator) Tick(now time.Time) bool {
	if a.decayAt.IsZero() || now.Before(a.decayAt) {
		return false
	}
	a.decayAt = time.Time{}
	if a.dir == arrowNone {
		return false
	}
	a.dir = arrowNone
	return true
}

func (a *arrowIndicator) pending() bool { return !a.decayAt.IsZero() }
