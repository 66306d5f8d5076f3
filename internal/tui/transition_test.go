package tui

import (
	"errors"
	"testing"
	"time"

	"folio-cli/internal/bus"
)

type fakeNav struct {
	path     string
	navCount int
	failNext bool
}

func (f *fakeNav) NavigateTo(path string) error {
	if f.failNext {
		return errors.New("no such route")
	}
	f.path = path
	f.navCount++
	return nil
}

func (f *fakeNav) CurrentPath() string { return f.path }

type fakeVTNav struct {
	fakeNav
	wrapped int
}

func (f *fakeVTNav) StartViewTransition(apply func() error) error {
	f.wrapped++
	return apply()
}

func TestTransitionChoreography(t *testing.T) {
	b := bus.New()
	nav := &fakeNav{path: "/"}
	tc := newTransitionController(b, nav, 800*time.Millisecond, 50*time.Millisecond)

	var started []bus.TransitionStarting
	bus.Subscribe(b, func(ev bus.TransitionStarting) { started = append(started, ev) })

	if !tc.Navigate("/projects/x", navigateOptions{fadeOutInfoPanel: true}, t0) {
		t.Fatalf("navigate should start")
	}
	if len(started) != 1 || !started[0].FadeOutInfoPanel {
		t.Fatalf("transition-starting event = %+v", started)
	}
	if tc.Phase() != phaseFadingOut || !tc.FadingOut() {
		t.Fatalf("phase = %v", tc.Phase())
	}

	// Navigation happens only after the fade-out delay.
	tc.Tick(t0.Add(400 * time.Millisecond))
	if nav.navCount != 0 {
		t.Fatalf("navigated before the fade-out completed")
	}
	tc.Tick(t0.Add(800 * time.Millisecond))
	if nav.navCount != 1 || nav.path != "/projects/x" {
		t.Fatalf("nav = %+v", nav)
	}
	if tc.Phase() != phaseFadingIn {
		t.Fatalf("phase after navigation = %v", tc.Phase())
	}

	tc.Tick(t0.Add(850 * time.Millisecond))
	if tc.Phase() != phaseIdle {
		t.Fatalf("phase after fade-in = %v", tc.Phase())
	}
}

func TestTransitionReentrancyGuard(t *testing.T) {
	b := bus.New()
	nav := &fakeNav{path: "/"}
	tc := newTransitionController(b, nav, 800*time.Millisecond, 50*time.Millisecond)

	if !tc.Navigate("/projects/x", navigateOptions{}, t0) {
		t.Fatalf("first navigate should start")
	}
	// Rapid double-click: the second request must be dropped, not queued.
	if tc.Navigate("/", navigateOptions{}, t0.Add(100*time.Millisecond)) {
		t.Fatalf("second navigate must be ignored while in flight")
	}

	tc.Tick(t0.Add(time.Second))
	tc.Tick(t0.Add(2 * time.Second))

	if nav.navCount != 1 {
		t.Fatalf("exactly one navigation per completed cycle; got %d", nav.navCount)
	}
	if nav.path != "/projects/x" {
		t.Fatalf("first transition must win; path = %q", nav.path)
	}
}

func TestTransitionNavFailureResolvesToIdle(t *testing.T) {
	b := bus.New()
	nav := &fakeNav{path: "/", failNext: true}
	tc := newTransitionController(b, nav, 800*time.Millisecond, 50*time.Millisecond)

	tc.Navigate("/projects/missing", navigateOptions{}, t0)
	tc.Tick(t0.Add(time.Second))

	if tc.Phase() != phaseIdle {
		t.Fatalf("failed navigation must not leave the UI mid-fade; phase = %v", tc.Phase())
	}
	// And a later navigation works again.
	nav.failNext = false
	if !tc.Navigate("/", navigateOptions{}, t0.Add(2*time.Second)) {
		t.Fatalf("controller stuck after a failed navigation")
	}
}

func TestTransitionUsesViewTransitionCapability(t *testing.T) {
	b := bus.New()
	nav := &fakeVTNav{fakeNav: fakeNav{path: "/"}}
	tc := newTransitionController(b, nav, 800*time.Millisecond, 50*time.Millisecond)

	tc.Navigate("/projects/x", navigateOptions{}, t0)
	tc.Tick(t0.Add(time.Second))

	if nav.wrapped != 1 {
		t.Fatalf("navigation should be wrapped in the view transition; wrapped = %d", nav.wrapped)
	}
	if nav.navCount != 1 {
		t.Fatalf("wrapped navigation must still apply; navCount = %d", nav.navCount)
	}
}

func TestCompleteFadeOutShortCircuits(t *testing.T) {
	b := bus.New()
	nav := &fakeNav{path: "/"}
	tc := newTransitionController(b, nav, 800*time.Millisecond, 50*time.Millisecond)

	tc.Navigate("/projects/x", navigateOptions{}, t0)
	// Animation-end signal arrives early; the fixed delay is only a fallback.
	tc.CompleteFadeOut(t0.Add(200 * time.Millisecond))
	tc.Tick(t0.Add(200 * time.Millisecond))

	if nav.navCount != 1 {
		t.Fatalf("short-circuited fade should navigate immediately")
	}
}
