package tui

import "time"

// slideshow wraps the carousel primitive with the gallery's interaction
// semantics: half-width click navigation, the ghost-click exception, ghost
// index derivation, a resize cool-down, and eager-load hints.
type slideshow struct {
	car      carousel
	cooldown time.Duration
	// coolUntil suppresses direction/ghost notifications for index changes
	// caused by the carousel recalculating after a viewport resize rather
	// than by the user.
	coolUntil time.Time

	// onChange receives every real index change. interactive is false for
	// changes landing inside the resize cool-down window.
	onChange func(oldIdx, newIdx int, interactive bool)
	// onEndReached fires when a non-looping slideshow is asked to advance
	// past its last slide (configured "go to next project" action).
	onEndReached func()
}

func newSlideshow(length, initial int, loop bool, cooldown time.Duration) *slideshow {
	return &slideshow{
		car:      newCarousel(length, initial, loop),
		cooldown: cooldown,
	}
}

func (s *slideshow) Index() int { return s.car.Index() }
func (s *slideshow) Len() int   { return s.car.Len() }

// GhostIndex returns the previous-slide index shown alongside the active
// slide. Looping galleries always have one (wraparound); non-looping
// galleries show none before the first slide, to avoid a spurious
// "previous" before the user has done anything.
func (s *slideshow) GhostIndex() (int, bool) {
	i, n := s.car.Index(), s.car.Len()
	if n < 2 {
		return 0, false
	}
	if s.car.loop {
		return (i - 1 + n) % n, true
	}
	if i > 0 {
		return i - 1, true
	}
	return 0, false
}

// Click applies the half-width rule: the left half of the display area goes
// to the previous slide, the right half to the next.
func (s *slideshow) Click(x, viewportW int, now time.Time) {
	if x < viewportW/2 {
		s.Prev(now)
	} else {
		s.Next(now)
	}
}

// GhostClick is the named exception to the half-width rule: clicking the
// ghost always goes to the previous slide, wherever the ghost landed. The
// caller must not also route the click to Click.
func (s *slideshow) GhostClick(now time.Time) {
	s.Prev(now)
}

func (s *slideshow) Next(now time.Time) {
	old := s.car.Index()
	if s.car.Next() {
		s.noteChange(old, now)
		return
	}
	// Non-loop end: hand off instead of wrapping.
	if s.onEndReached != nil {
		s.onEndReached()
	}
}

func (s *slideshow) Prev(now time.Time) {
	old := s.car.Index()
	if s.car.Prev() {
		s.noteChange(old, now)
	}
}

// JumpTo moves directly to index i (grid-thumbnail click, keyboard jump).
func (s *slideshow) JumpTo(i int, now time.Time) {
	old := s.car.Index()
	if s.car.To(i) {
		s.noteChange(old, now)
	}
}

// NoteResize opens the cool-down window during which index-change
// notifications are treated as non-interactive.
func (s *slideshow) NoteResize(now time.Time) {
	s.coolUntil = now.Add(s.cooldown)
}

func (s *slideshow) noteChange(old int, now time.Time) {
	if s.onChange == nil {
		return
	}
	interactive := !now.Before(s.coolUntil)
	s.onChange(old, s.car.Index(), interactive)
}

// EagerIndexes flags the slides worth rendering eagerly: the current slide
// and, when wraparound makes one visible immediately, the initial ghost.
// Everything else is a lazy hint for the media renderer.
func (s *slideshow) EagerIndexes() map[int]bool {
	eager := map[int]bool{s.car.Index(): true}
	if g, ok := s.GhostIndex(); ok {
		eager[g] = true
	}
	return eager
}
