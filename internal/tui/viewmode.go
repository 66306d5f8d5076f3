package tui

import "time"

type viewMode int

const (
	modeSlideshow viewMode = iota
	modeGrid
)

type pageKind int

const (
	pageKindNone pageKind = iota
	pageKindHome
	pageKindProject
)

// pageContext is the typed page marker unrelated chrome (background
// gradients, hints) reads. It replaces an untyped global attribute: set on
// page enter, cleared on exit.
type pageContext struct {
	kind pageKind
	// slideshowActive marks that a project gallery is in slideshow mode,
	// so the page background can react.
	slideshowActive bool
}

// galleryView governs whether a project shows as a slideshow or a thumbnail
// grid. A transition lock covers the local fade choreography: mode flips
// requested while a flip is settling are dropped.
type galleryView struct {
	mode      viewMode
	fade      time.Duration
	lockUntil time.Time
	page      *pageContext

	// initialSlide carries a grid-thumbnail click into the slideshow.
	initialSlide int
}

func newGalleryView(page *pageContext, fade time.Duration) *galleryView {
	g := &galleryView{fade: fade, page: page}
	g.page.slideshowActive = true
	return g
}

func (g *galleryView) Mode() viewMode    { return g.mode }
func (g *galleryView) InitialSlide() int { return g.initialSlide }

func (g *galleryView) locked(now time.Time) bool { return now.Before(g.lockUntil) }

// Toggle flips slideshow/grid. No-op while the previous flip's fade is
// still settling.
func (g *galleryView) Toggle(now time.Time) bool {
	if g.locked(now) {
		return false
	}
	if g.mode == modeSlideshow {
		g.mode = modeGrid
	} else {
		g.mode = modeSlideshow
	}
	g.lockUntil = now.Add(g.fade)
	g.page.slideshowActive = g.mode == modeSlideshow
	return true
}

// JumpToSlide forces slideshow mode with the given active index (grid
// thumbnail click). Same lock as Toggle.
func (g *galleryView) JumpToSlide(i int, now time.Time) bool {
	if g.locked(now) {
		return false
	}
	g.initialSlide = i
	g.mode = modeSlideshow
	g.lockUntil = now.Add(g.fade)
	g.page.slideshowActive = true
	return true
}

// Unmount clears the page marker regardless of the active mode, so no
// stale mark survives navigating away.
func (g *galleryView) Unmount() {
	g.page.slideshowActive = false
}

func (g *galleryView) pending(now time.Time) bool { return now.Before(g.lockUntil) }
