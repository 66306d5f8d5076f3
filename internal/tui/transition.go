package tui

import (
	"time"

	"folio-cli/internal/bus"
)

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseFadingOut
	phaseNavigating
	phaseFadingIn
)

// navigator is the routing capability the transition controller drives.
type navigator interface {
	NavigateTo(path string) error
	CurrentPath() string
}

// viewTransitioner is an optional navigator capability: when present, the
// navigation is wrapped in a cross-document visual transition. Absence is a
// silent feature branch, not an error.
type viewTransitioner interface {
	StartViewTransition(apply func() error) error
}

type navigateOptions struct {
	// fadeOutInfoPanel additionally tells the project-info panel to fade,
	// independent of the main content fade.
	fadeOutInfoPanel bool
}

// transitionController runs the fade-out / navigate / fade-in choreography.
// A transition in flight wins over any newer request (re-entrancy guard).
type transitionController struct {
	bus *bus.Bus
	nav navigator

	fadeOut time.Duration
	fadeIn  time.Duration

	phase       transitionPhase
	pendingPath string
	deadline    time.Time
}

func newTransitionController(b *bus.Bus, nav navigator, fadeOut, fadeIn time.Duration) *transitionController {
	return &transitionController{bus: b, nav: nav, fadeOut: fadeOut, fadeIn: fadeIn}
}

func (t *transitionController) Phase() transitionPhase { return t.phase }

func (t *transitionController) pending() bool { return t.phase != phaseIdle }

// Navigate starts the transition sequence toward path. Returns false when a
// transition is already in flight (the request is dropped, not queued).
func (t *transitionController) Navigate(path string, opts navigateOptions, now time.Time) bool {
	if t.phase != phaseIdle {
		return false
	}
	t.phase = phaseFadingOut
	t.pendingPath = path
	t.deadline = now.Add(t.fadeOut)
	bus.Publish(t.bus, bus.TransitionStarting{FadeOutInfoPanel: opts.fadeOutInfoPanel})
	return true
}

// CompleteFadeOut short-circuits the fade-out wait when an explicit
// animation-completion signal arrives; the fixed delay remains the
// conservative fallback.
func (t *transitionController) CompleteFadeOut(now time.Time) {
	if t.phase == phaseFadingOut {
		t.deadline = now
	}
}

// Tick advances the phase machine. Reports whether the phase changed.
func (t *transitionController) Tick(now time.Time) bool {
	switch t.phase {
	case phaseFadingOut:
		if now.Before(t.deadline) {
			return false
		}
		t.phase = phaseNavigating
		t.performNavigation(now)
		return true
	case phaseFadingIn:
		if now.Before(t.deadline) {
			return false
		}
		t.phase = phaseIdle
		t.deadline = time.Time{}
		return true
	}
	return false
}

func (t *transitionController) performNavigation(now time.Time) {
	path := t.pendingPath
	t.pendingPath = ""

	apply := func() error { return t.nav.NavigateTo(path) }

	var err error
	if vt, ok := t.nav.(viewTransitioner); ok {
		err = vt.StartViewTransition(apply)
	} else {
		err = apply()
	}
	if err != nil {
		// Navigation failed (route not found): resolve back to idle so the
		// UI is not stuck mid-fade. Fire-and-forget, not retryable.
		t.phase = phaseIdle
		t.deadline = time.Time{}
		return
	}

	t.phase = phaseFadingIn
	t.deadline = now.Add(t.fadeIn)
}

// FadingOut reports whether dependent components should currently be hidden.
func (t *transitionController) FadingOut() bool {
	return t.phase == phaseFadingOut || t.phase == phaseNavigating
}
