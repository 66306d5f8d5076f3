package tui

import "time"

type presentPhase int

const (
	// presentIdle: no intro requested, or the sequence already finished.
	presentIdle presentPhase = iota
	// presentHidden: panel mounted in its centered variant, content at
	// opacity zero, waiting for the hidden state to paint.
	presentHidden
	// presentCentered: panel faded in, still centered, gallery hidden.
	presentCentered
)

type presenterEvent int

const (
	presenterNone presenterEvent = iota
	presenterFadeIn
	// presenterReveal: switch the panel to its default variant, reveal the
	// gallery, and strip the transient URL flag in place.
	presenterReveal
)

// presenter runs the timer-driven intro reveal shown when a project is
// entered through an "introduce this project" path.
type presenter struct {
	phase presentPhase

	paintDelay time.Duration
	hold       time.Duration

	fadeInAt time.Time
	revealAt time.Time

	// autoAdvance chains to the next project after the reveal.
	autoAdvance bool
	advanced    bool
}

func newPresenter(paintDelay, hold time.Duration, autoAdvance bool) *presenter {
	return &presenter{paintDelay: paintDelay, hold: hold, autoAdvance: autoAdvance}
}

// Start arms the sequence: fade in after the paint delay, reveal after the
// hold.
func (p *presenter) Start(now time.Time) {
	p.phase = presentHidden
	p.fadeInAt = now.Add(p.paintDelay)
	p.revealAt = now.Add(p.hold)
	p.advanced = false
}

func (p *presenter) Presenting() bool { return p.phase != presentIdle }

// Hidden reports whether the panel content is still at opacity zero.
func (p *presenter) Hidden() bool { return p.phase == presentHidden }

// Dismiss cancels the remaining timers and jumps straight to the reveal
// end-state (user click/tap during the presentation).
func (p *presenter) Dismiss(now time.Time) presenterEvent {
	if p.phase == presentIdle {
		return presenterNone
	}
	p.finish()
	return presenterReveal
}

// Tick fires whichever deadline has passed.
func (p *presenter) Tick(now time.Time) presenterEvent {
	switch p.phase {
	case presentHidden:
		if !now.Before(p.revealAt) {
			p.finish()
			return presenterReveal
		}
		if !now.Before(p.fadeInAt) {
			p.phase = presentCentered
			p.fadeInAt = time.Time{}
			return presenterFadeIn
		}
	case presentCentered:
		if !now.Before(p.revealAt) {
			p.finish()
			return presenterReveal
		}
	}
	return presenterNone
}

// ShouldAdvance reports (once) that the auto-advance variant wants
// navigation to the next project after the reveal.
func (p *presenter) ShouldAdvance() bool {
	if p.phase != presentIdle || !p.autoAdvance || p.advanced {
		return false
	}
	p.advanced = true
	return true
}

func (p *presenter) pending() bool {
	return p.phase != presentIdle
}

func (p *presenter) finish() {
	p.phase = presentIdle
	p.fadeInAt = time.Time{}
	p.revealAt = time.Time{}
}
