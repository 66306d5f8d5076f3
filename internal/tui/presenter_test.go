package tui

import (
	"testing"
	"time"
)

func TestPresenterTimeline(t *testing.T) {
	p := newPresenter(50*time.Millisecond, 2*time.Second, false)
	p.Start(t0)

	if !p.Presenting() || !p.Hidden() {
		t.Fatalf("panel must mount hidden and centered")
	}
	if ev := p.Tick(t0.Add(20 * time.Millisecond)); ev != presenterNone {
		t.Fatalf("event before the paint delay = %v", ev)
	}
	if ev := p.Tick(t0.Add(60 * time.Millisecond)); ev != presenterFadeIn {
		t.Fatalf("event after the paint delay = %v", ev)
	}
	if p.Hidden() {
		t.Fatalf("panel still hidden after fade-in")
	}
	if ev := p.Tick(t0.Add(time.Second)); ev != presenterNone {
		t.Fatalf("event during the hold = %v", ev)
	}
	if ev := p.Tick(t0.Add(2100 * time.Millisecond)); ev != presenterReveal {
		t.Fatalf("event after the hold = %v", ev)
	}
	if p.Presenting() || p.pending() {
		t.Fatalf("sequence must be finished after the reveal")
	}
}

func TestPresenterDismissShortCircuits(t *testing.T) {
	p := newPresenter(50*time.Millisecond, 2*time.Second, false)
	p.Start(t0)
	p.Tick(t0.Add(100 * time.Millisecond)) // fade in

	if ev := p.Dismiss(t0.Add(500 * time.Millisecond)); ev != presenterReveal {
		t.Fatalf("dismiss = %v; want reveal", ev)
	}
	// The abandoned deadlines must not fire later.
	if ev := p.Tick(t0.Add(3 * time.Second)); ev != presenterNone {
		t.Fatalf("stale deadline fired after dismissal: %v", ev)
	}
}

func TestPresenterDismissBeforeFadeIn(t *testing.T) {
	p := newPresenter(50*time.Millisecond, 2*time.Second, false)
	p.Start(t0)

	if ev := p.Dismiss(t0.Add(10 * time.Millisecond)); ev != presenterReveal {
		t.Fatalf("dismiss = %v; want reveal", ev)
	}
	if p.Hidden() {
		t.Fatalf("dismissal must surface the panel content")
	}
}

func TestPresenterIdleDismissIsNoop(t *testing.T) {
	p := newPresenter(50*time.Millisecond, 2*time.Second, false)
	if ev := p.Dismiss(t0); ev != presenterNone {
		t.Fatalf("dismiss without a running sequence = %v", ev)
	}
}

func TestPresenterAutoAdvanceFiresOnce(t *testing.T) {
	p := newPresenter(50*time.Millisecond, 2*time.Second, true)
	p.Start(t0)

	if p.ShouldAdvance() {
		t.Fatalf("no advance while the presentation runs")
	}
	p.Tick(t0.Add(3 * time.Second))
	if !p.ShouldAdvance() {
		t.Fatalf("advance expected after the reveal")
	}
	if p.ShouldAdvance() {
		t.Fatalf("advance must be one-shot")
	}
}

func TestPresenterSkippedTicksCollapseToReveal(t *testing.T) {
	// A stalled heartbeat may deliver its first tick after both deadlines.
	p := newPresenter(50*time.Millisecond, 2*time.Second, false)
	p.Start(t0)

	if ev := p.Tick(t0.Add(5 * time.Second)); ev != presenterReveal {
		t.Fatalf("late tick = %v; want the end state, not a stale fade-in", ev)
	}
}
