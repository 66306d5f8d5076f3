package tui

import (
	"time"

	"folio-cli/internal/bus"
	"folio-cli/internal/content"
	"folio-cli/internal/model"
)

// beltTimings collects the belt's choreography delays.
type beltTimings struct {
	closeDelay   time.Duration
	sectionReset time.Duration
	outsideArm   time.Duration
	swipeMinDist float64
	swipeMinVel  float64 // units per millisecond
}

type touchTrack struct {
	y  float64
	at time.Time
	// inContent marks a gesture that started inside the open belt's
	// scrollable content, which must keep scrolling normally.
	inContent bool
}

// menuBelt is the expandable navigation overlay's state machine: hover and
// tap input models, debounced close, swipe classification, section
// switching with the projects fallback, and bus-driven coordination with
// sibling components.
type menuBelt struct {
	cat     *content.Catalog
	timings beltTimings

	expanded bool
	section  bus.Section

	// forceClose suppresses re-expansion from a lingering pointer-enter
	// after a programmatic close; it clears when the pointer leaves.
	forceClose bool

	// compact switches to the tap/swipe input model (narrow viewport).
	compact bool

	detected *model.Project
	hovered  *model.Project

	// closeAt is the debounced-close deadline; zero means no close pending.
	closeAt time.Time
	// sectionResetAt resets the section to projects shortly after a
	// collapse, once the collapse animation has had time to finish.
	sectionResetAt time.Time
	// armSectionReset defers deadline computation to the next Tick for
	// collapses triggered from bus handlers (which carry no clock).
	armSectionReset bool
	// expandedAt arms the outside-tap listener after a short delay so the
	// opening tap itself cannot immediately close the belt.
	expandedAt time.Time

	touch *touchTrack

	disposers []func()
}

func newMenuBelt(b *bus.Bus, cat *content.Catalog, t beltTimings) *menuBelt {
	m := &menuBelt{
		cat:     cat,
		timings: t,
		section: bus.SectionProjects,
	}
	m.disposers = append(m.disposers,
		bus.Subscribe(b, func(ev bus.MenuOpenRequest) { m.OpenSection(ev.Section) }),
		bus.Subscribe(b, func(bus.TransitionStarting) { m.autoClose() }),
		bus.Subscribe(b, func(bus.GridToggleRequest) { m.autoClose() }),
	)
	return m
}

// Dispose releases the belt's bus subscriptions. Must run on unmount.
func (m *menuBelt) Dispose() {
	for _, d := range m.disposers {
		d()
	}
	m.disposers = nil
}

func (m *menuBelt) Expanded() bool           { return m.expanded }
func (m *menuBelt) Section() bus.Section     { return m.section }
func (m *menuBelt) Detected() *model.Project { return m.detected }
func (m *menuBelt) Hovered() *model.Project  { return m.hovered }

func (m *menuBelt) SetCompact(compact bool) { m.compact = compact }

// SetRoute re-derives the current project from the active route's slug.
// When no project is resolvable, project-info is unusable and the section
// falls back to projects.
func (m *menuBelt) SetRoute(slug string) {
	m.detected = nil
	if i := m.cat.IndexOf(slug); i >= 0 {
		p := m.cat.ListProjects()[i]
		m.detected = &p
	}
	if m.detected == nil && m.section == bus.SectionProjectInfo {
		m.section = bus.SectionProjects
	}
}

func (m *menuBelt) HoverProject(p *model.Project) { m.hovered = p }

// OpenSection is the external "open to section X" operation, reachable via
// the bus so the requester needs no reference to the belt.
func (m *menuBelt) OpenSection(sec bus.Section) {
	if sec == bus.SectionProjectInfo && m.detected == nil {
		sec = bus.SectionProjects
	}
	m.section = sec
	m.expanded = true
	m.closeAt = time.Time{}
	m.sectionResetAt = time.Time{}
	m.armSectionReset = false
}

// SwitchSection changes the active section without touching expansion.
func (m *menuBelt) SwitchSection(sec bus.Section) {
	if sec == bus.SectionProjectInfo && m.detected == nil {
		sec = bus.SectionProjects
	}
	m.section = sec
}

// PointerEnter expands the belt, unless force-close is holding it shut.
// Re-entering within the close-delay window cancels the pending collapse.
func (m *menuBelt) PointerEnter(now time.Time) {
	m.closeAt = time.Time{}
	if m.forceClose {
		return
	}
	m.expand(now)
}

// PointerLeave starts the debounced close and clears the force-close flag
// (the pointer has genuinely left; the next enter may expand again).
func (m *menuBelt) PointerLeave(now time.Time) {
	m.forceClose = false
	if m.expanded {
		m.closeAt = now.Add(m.timings.closeDelay)
	}
}

// TapBelt handles a tap on the belt itself in the compact input model:
// a collapsed belt expands; taps inside an expanded belt do nothing
// (outside taps collapse, see OutsideTap).
func (m *menuBelt) TapBelt(now time.Time) {
	if !m.compact {
		return
	}
	if !m.expanded {
		m.expand(now)
	}
}

// OutsideTap collapses an expanded belt, but only once the listener has
// been armed, so the opening tap cannot close what it just opened.
func (m *menuBelt) OutsideTap(now time.Time) {
	if !m.compact || !m.expanded {
		return
	}
	if now.Before(m.expandedAt.Add(m.timings.outsideArm)) {
		return
	}
	m.collapse(now)
}

// Escape closes the belt from the keyboard.
func (m *menuBelt) Escape(now time.Time) {
	if m.expanded {
		m.collapse(now)
	}
}

func (m *menuBelt) TouchStart(y float64, now time.Time, inContent bool) {
	if !m.compact {
		return
	}
	m.touch = &touchTrack{y: y, at: now, inContent: inContent && m.expanded}
}

// TouchMove reports whether default scrolling should be suppressed: gestures
// inside the open belt's content scroll natively; everywhere else a large
// enough vertical move belongs to the open/close gesture.
func (m *menuBelt) TouchMove(y float64) (preventDefault bool) {
	if m.touch == nil || m.touch.inContent {
		return false
	}
	return m.touch.y-y > 10 || y-m.touch.y > 10
}

func (m *menuBelt) TouchEnd(y float64, now time.Time) {
	t := m.touch
	m.touch = nil
	if t == nil || !m.compact {
		return
	}
	deltaY := t.y - y // positive = swipe up
	dur := now.Sub(t.at)
	if !swipeSignificant(deltaY, dur, m.timings.swipeMinDist, m.timings.swipeMinVel) {
		return
	}
	if deltaY > 0 && !m.expanded {
		m.expand(now)
	} else if deltaY < 0 && m.expanded && !t.inContent {
		m.collapse(now)
	}
}

// swipeSignificant classifies a vertical gesture: significant when the
// displacement reaches minDist or the implied velocity exceeds minVel
// (units per millisecond). Anything else is a no-op, not an error.
func swipeSignificant(delta float64, dur time.Duration, minDist, minVel float64) bool {
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	if abs >= minDist {
		return true
	}
	ms := float64(dur) / float64(time.Millisecond)
	if ms <= 0 {
		return abs > 0
	}
	return abs/ms > minVel
}

// Tick fires pending deadlines. Reports whether the belt changed.
func (m *menuBelt) Tick(now time.Time) bool {
	changed := false

	if m.armSectionReset {
		m.armSectionReset = false
		m.sectionResetAt = now.Add(m.timings.sectionReset)
	}

	if !m.closeAt.IsZero() && !now.Before(m.closeAt) {
		m.closeAt = time.Time{}
		if m.expanded {
			m.collapse(now)
			changed = true
		}
	}

	if !m.sectionResetAt.IsZero() && !now.Before(m.sectionResetAt) {
		m.sectionResetAt = time.Time{}
		if !m.expanded && m.section != bus.SectionProjects {
			m.section = bus.SectionProjects
			changed = true
		}
	}

	return changed
}

func (m *menuBelt) pending() bool {
	return !m.closeAt.IsZero() || !m.sectionResetAt.IsZero() || m.armSectionReset
}

func (m *menuBelt) expand(now time.Time) {
	if m.expanded {
		return
	}
	m.expanded = true
	m.expandedAt = now
	m.sectionResetAt = time.Time{}
	m.armSectionReset = false
}

func (m *menuBelt) collapse(now time.Time) {
	if !m.expanded {
		return
	}
	m.expanded = false
	m.hovered = nil
	// Reset to projects after the collapse animation, not visibly during it.
	m.sectionResetAt = now.Add(m.timings.sectionReset)
}

// autoClose reacts to sibling components starting a page transition or a
// grid toggle: collapse immediately and hold the belt shut until the
// pointer actually leaves and re-enters.
func (m *menuBelt) autoClose() {
	m.forceClose = true
	m.closeAt = time.Time{}
	if m.expanded {
		m.expanded = false
		m.hovered = nil
		m.armSectionReset = true
	}
}
