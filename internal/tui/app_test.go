package tui

import (
	"strings"
	"testing"
	"time"

	"folio-cli/internal/bus"
	"folio-cli/internal/config"
	"folio-cli/internal/content"
	"folio-cli/internal/model"
)

func testAppCatalog() *content.Catalog {
	media := func(ids ...string) []model.MediaItem {
		items := make([]model.MediaItem, len(ids))
		for i, id := range ids {
			items[i] = model.MediaItem{ID: id, Kind: model.MediaKindImage, Width: 3, Height: 2}
		}
		return items
	}
	return content.NewCatalog([]model.Project{
		{ID: "a", Slug: "alpha", Title: "Alpha", Number: 1, Media: media("a1", "a2", "a3")},
		{ID: "b", Slug: "beta", Title: "Beta", Number: 2, Media: media("b1", "b2")},
	}, model.AboutInfo{Name: "Tester"})
}

func newTestApp(cfg *config.Config, path string) appModel {
	m := newAppModel(cfg, testAppCatalog(), path)
	m.applySize(80, 24, t0)
	return m
}

func TestIntroDismissAlsoAutoAdvances(t *testing.T) {
	cfg := config.Default()
	cfg.AutoAdvance = true
	m := newTestApp(cfg, "/projects/alpha?intro=1")
	if m.pres == nil || !m.pres.Presenting() {
		t.Fatalf("intro must be presenting after mount")
	}

	// Early dismissal chains to the next project, same as the timeout path.
	now := t0.Add(time.Second)
	m.dismissIntro(now)
	if m.trans.Phase() == phaseIdle {
		t.Fatalf("dismiss with auto-advance must start the next-project navigation")
	}

	m.tickMachines(now.Add(m.cfg.Fade() + time.Second))
	if m.view != viewProject || m.project.Slug != "beta" {
		t.Fatalf("after advance: view=%d slug=%q", m.view, m.project.Slug)
	}
}

func TestIntroDismissWithoutAutoAdvanceStays(t *testing.T) {
	m := newTestApp(config.Default(), "/projects/alpha?intro=1")

	m.dismissIntro(t0.Add(time.Second))
	if m.trans.Phase() != phaseIdle {
		t.Fatalf("dismiss without auto-advance must not navigate")
	}
	if m.project.Slug != "alpha" {
		t.Fatalf("slug = %q", m.project.Slug)
	}
}

func TestSlideChangeRerollsScatterEpoch(t *testing.T) {
	m := newTestApp(config.Default(), "/projects/alpha")
	epoch := m.scatter.Epoch()

	// Past the resize cool-down the change is interactive.
	m.slideNext(t0.Add(2 * time.Second))
	if m.scatter.Epoch() == epoch {
		t.Fatalf("interactive slide change must start a new scatter epoch")
	}
}

func TestGhostClickAtScatteredPosition(t *testing.T) {
	m := newTestApp(config.Default(), "/projects/alpha")
	now := t0.Add(2 * time.Second)
	m.slideNext(now) // index 1, ghost 0

	g, pos, w, h, ok := m.ghostFrame()
	if !ok || g != 0 {
		t.Fatalf("ghostFrame = %d, %v", g, ok)
	}
	if !m.ghostAt(pos.Left+1, pos.Top+1) {
		t.Fatalf("ghost hit test must cover its frame")
	}
	if m.ghostAt(pos.Left+w+5, pos.Top+h+5) {
		t.Fatalf("ghost hit test must miss outside the frame")
	}

	// Stable within the epoch.
	if _, pos2, _, _, _ := m.ghostFrame(); pos2 != pos {
		t.Fatalf("ghost position must be stable within an epoch")
	}

	m.handleProjectClick(pos.Left+1, pos.Top+1, now.Add(time.Second))
	if m.slides.Index() != 0 {
		t.Fatalf("ghost click must go back; index = %d", m.slides.Index())
	}
}

func TestBeltDragScrollRespectsGestureOwnership(t *testing.T) {
	m := newTestApp(config.Default(), "/")
	bus.Publish(m.b, bus.MenuOpenRequest{Section: bus.SectionAbout})
	if !m.belt.Expanded() {
		t.Fatalf("belt must open")
	}
	m.beltUI.body.SetContent(strings.Repeat("x\n", 50))
	now := t0.Add(time.Second)

	// A drag starting inside the scrollable content is not the belt's
	// gesture; it scrolls.
	m.pressed, m.pressY, m.dragY = true, 6, 6
	m.belt.TouchStart(6, now, true)
	m.handlePointerMove(5, 4, now)
	if m.beltUI.body.YOffset != 2 {
		t.Fatalf("YOffset = %d after content drag", m.beltUI.body.YOffset)
	}
	m.belt.TouchEnd(4, now.Add(50*time.Millisecond))
	m.pressed = false

	// A large drag starting outside the content belongs to the open/close
	// gesture; no scroll even while the pointer crosses the content area.
	m.pressed, m.pressY, m.dragY = true, 20, 20
	m.belt.TouchStart(20, now.Add(time.Second), false)
	m.handlePointerMove(5, 5, now.Add(time.Second))
	if m.beltUI.body.YOffset != 2 {
		t.Fatalf("owned drag must not scroll; YOffset = %d", m.beltUI.body.YOffset)
	}
}
