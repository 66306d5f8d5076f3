package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"folio-cli/internal/bus"
	"folio-cli/internal/config"
	"folio-cli/internal/content"
	"folio-cli/internal/model"
)

const heartbeatInterval = 50 * time.Millisecond

type appModel struct {
	cfg *config.Config
	cat *content.Catalog
	b   *bus.Bus

	nav    *siteNav
	router navigator

	view   view
	width  int
	height int

	scatter *scatterField
	arrow   *arrowIndicator
	trans   *transitionController
	belt    *menuBelt
	beltUI  *beltView

	// Home: one slide per project, each showing a random media pick that
	// re-rolls when its slide becomes active.
	homeSlides *slideshow
	homePicks  map[string]int
	pickRNG    *rand.Rand

	// Project page, nil while on home.
	project model.Project
	page    *pageContext
	gallery *galleryView
	slides  *slideshow
	grid    *gridView
	pres    *presenter

	heartbeatSeq int
	resizeSeq    int
	pendingW     int
	pendingH     int

	pointerInBelt bool
	pressed       bool
	pressY        int
	// dragY tracks the last pointer row of an active press, for turning
	// unowned drags into content scrolling.
	dragY int
}

func newAppModel(cfg *config.Config, cat *content.Catalog, initialPath string) appModel {
	b := bus.New()
	sn := newSiteNav(cat, initialPath)

	var router navigator = sn
	if supportsViewTransitions() {
		router = &vtNav{siteNav: sn}
	}

	belt := newMenuBelt(b, cat, beltTimings{
		closeDelay:   cfg.MenuCloseDelay(),
		sectionReset: cfg.SectionReset(),
		outsideArm:   cfg.OutsideTapArm(),
		swipeMinDist: cfg.SwipeMinDistance,
		swipeMinVel:  cfg.SwipeMinVelocity,
	})

	m := appModel{
		cfg:     cfg,
		cat:     cat,
		b:       b,
		nav:     sn,
		router:  router,
		scatter: newScatterField(time.Now().UnixNano(), cfg.SafeZoneInsetPct),
		arrow:   newArrowIndicator(cfg.ArrowDecay()),
		trans:   newTransitionController(b, router, cfg.Fade(), cfg.PaintDelay()),
		belt:    belt,
		beltUI:  newBeltView(belt, cat),
		pickRNG: rand.New(rand.NewSource(time.Now().UnixNano() + 1)),
	}
	m.mountRoute(parsePath(initialPath), time.Now())
	return m
}

// supportsViewTransitions gates the optional cross-document transition
// capability on the terminal being capable of more than plain ASCII output.
func supportsViewTransitions() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.pendingW, m.pendingH = msg.Width, msg.Height
		if m.width == 0 {
			// First size: apply immediately so the initial frame has a layout.
			m.applySize(msg.Width, msg.Height, time.Now())
			return m, m.scheduleHeartbeat()
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(m.cfg.ResizeDebounce(), func(time.Time) tea.Msg {
			return resizeDoneMsg{seq: seq}
		})

	case resizeDoneMsg:
		if msg.seq != m.resizeSeq {
			return m, nil
		}
		m.applySize(m.pendingW, m.pendingH, time.Now())
		return m, m.scheduleHeartbeat()

	case heartbeatMsg:
		if msg.seq != m.heartbeatSeq {
			return m, nil
		}
		m.tickMachines(time.Now())
		return m, m.scheduleHeartbeat()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// applySize lays the chrome out for a settled viewport size. Scatter
// positions re-roll (the old ones were sampled against the old bounds) and
// slide-change notifications cool down so the recalculation is not mistaken
// for user input.
func (m *appModel) applySize(w, h int, now time.Time) {
	m.width, m.height = w, h
	m.belt.SetCompact(w <= m.cfg.BeltBreakpointCols)
	m.beltUI.SetSize(w, h)
	if m.grid != nil {
		m.grid.SetSize(w-4, h-4)
	}
	m.scatter.Reroll()
	if m.slides != nil {
		m.slides.NoteResize(now)
	}
	if m.homeSlides != nil {
		m.homeSlides.NoteResize(now)
	}
}

// tickMachines fires every armed deadline and consumes whatever the
// machines decided (navigation destinations, presenter events).
func (m *appModel) tickMachines(now time.Time) {
	m.arrow.Tick(now)
	m.belt.Tick(now)
	m.trans.Tick(now)

	if m.pres != nil {
		if m.pres.Tick(now) == presenterReveal {
			// Strip the transient intro flag without recording a navigation.
			m.nav.ReplaceInPlace(projectPath(m.project.Slug, false))
		}
		if m.pres.ShouldAdvance() {
			m.navigateNextProject(now, true)
		}
	}

	if dest, ok := m.nav.takeDest(); ok {
		m.mountRoute(dest, now)
	}
}

func (m *appModel) anyPending(now time.Time) bool {
	if m.arrow.pending() || m.belt.pending() || m.trans.pending() {
		return true
	}
	if m.gallery != nil && m.gallery.pending(now) {
		return true
	}
	if m.pres != nil && m.pres.pending() {
		return true
	}
	return false
}

func (m *appModel) scheduleHeartbeat() tea.Cmd {
	if !m.anyPending(time.Now()) {
		return nil
	}
	m.heartbeatSeq++
	seq := m.heartbeatSeq
	return tea.Tick(heartbeatInterval, func(time.Time) tea.Msg {
		return heartbeatMsg{seq: seq}
	})
}

// mountRoute swaps the page content for a navigation destination. The belt,
// arrow, and transition controller persist across pages; everything
// page-scoped is rebuilt.
func (m *appModel) mountRoute(r route, now time.Time) {
	if m.gallery != nil {
		m.gallery.Unmount()
	}
	m.gallery = nil
	m.slides = nil
	m.grid = nil
	m.pres = nil
	m.page = nil

	switch r.kind {
	case routeHome:
		m.view = viewHome
		m.belt.SetRoute("")
		m.page = &pageContext{kind: pageKindHome}
		m.mountHome(now)

	case routeProject:
		p, err := m.cat.GetProject(r.slug)
		if err != nil {
			m.view = viewNotFound
			m.belt.SetRoute("")
			return
		}
		m.view = viewProject
		m.project = p
		m.belt.SetRoute(p.Slug)
		m.page = &pageContext{kind: pageKindProject}
		m.mountProject(p, r.intro, now)

	default:
		m.view = viewNotFound
		m.belt.SetRoute("")
	}
}

func (m *appModel) mountHome(now time.Time) {
	m.homePicks = map[string]int{}
	for _, p := range m.cat.ListProjects() {
		m.homePicks[p.ID] = m.rollPick(p)
	}

	picks, rng, cat := m.homePicks, m.pickRNG, m.cat
	arrow := m.arrow
	s := newSlideshow(m.cat.Len(), 0, true, m.cfg.SlideCooldown())
	s.onChange = func(oldIdx, newIdx int, interactive bool) {
		// The slide that just became active draws a fresh media pick.
		projects := cat.ListProjects()
		if newIdx >= 0 && newIdx < len(projects) {
			p := projects[newIdx]
			if len(p.Media) > 0 {
				picks[p.ID] = rng.Intn(len(p.Media))
			}
		}
		if interactive {
			arrow.SlideChange(oldIdx, newIdx, cat.Len(), true, time.Now())
		}
	}
	m.homeSlides = s
}

func (m *appModel) rollPick(p model.Project) int {
	if len(p.Media) == 0 {
		return 0
	}
	return m.pickRNG.Intn(len(p.Media))
}

func (m *appModel) mountProject(p model.Project, intro bool, now time.Time) {
	m.gallery = newGalleryView(m.page, m.cfg.Fade())

	arrow, loop, scatter := m.arrow, m.cfg.Loop, m.scatter
	n := len(p.Media)
	s := newSlideshow(n, 0, loop, m.cfg.SlideCooldown())
	s.onChange = func(oldIdx, newIdx int, interactive bool) {
		if interactive {
			arrow.SlideChange(oldIdx, newIdx, n, loop, time.Now())
			// The ghost draws a fresh position for every real slide change.
			scatter.Reroll()
		}
	}
	trans, cat, slug := m.trans, m.cat, p.Slug
	s.onEndReached = func() {
		navigateAfter(trans, cat, slug, time.Now())
	}
	m.slides = s

	m.grid = newGridView(p.Media, m.cfg.GridPriorityCount)
	if m.width > 0 {
		m.grid.SetSize(m.width-4, m.height-4)
	}

	if intro {
		m.pres = newPresenter(m.cfg.PaintDelay(), m.cfg.IntroHold(), m.cfg.AutoAdvance)
		m.pres.Start(now)
	}
}

// navigateAfter moves to the project following slug in editorial order,
// wrapping at the end.
func navigateAfter(trans *transitionController, cat *content.Catalog, slug string, now time.Time) {
	i := cat.IndexOf(slug)
	if i < 0 || cat.Len() == 0 {
		return
	}
	next := cat.ListProjects()[(i+1)%cat.Len()]
	trans.Navigate(projectPath(next.Slug, false), navigateOptions{}, now)
}

func (m *appModel) navigateNextProject(now time.Time, intro bool) {
	i := m.cat.IndexOf(m.project.Slug)
	if i < 0 || m.cat.Len() == 0 {
		return
	}
	next := m.cat.ListProjects()[(i+1)%m.cat.Len()]
	m.trans.Navigate(projectPath(next.Slug, intro), navigateOptions{}, now)
}

func (m appModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch k.String() {
	case "ctrl+c", "q":
		m.belt.Dispose()
		return m, tea.Quit

	case "esc":
		if m.belt.Expanded() {
			m.belt.Escape(now)
		} else if m.view == viewProject {
			// Close project: back home through the transition controller.
			m.trans.Navigate("/", navigateOptions{fadeOutInfoPanel: true}, now)
		}

	case "m":
		if m.belt.Expanded() {
			m.belt.Escape(now)
		} else {
			bus.Publish(m.b, bus.MenuOpenRequest{Section: bus.SectionProjects})
		}

	case "a":
		bus.Publish(m.b, bus.MenuOpenRequest{Section: bus.SectionAbout})

	case "i":
		bus.Publish(m.b, bus.MenuOpenRequest{Section: bus.SectionProjectInfo})

	case "up", "k":
		if m.belt.Expanded() {
			m.beltUI.MoveCursor(-1)
		}

	case "down", "j":
		if m.belt.Expanded() {
			m.beltUI.MoveCursor(1)
		}

	case "enter":
		if m.belt.Expanded() {
			if p, ok := m.beltUI.SelectedProject(); ok {
				m.trans.Navigate(projectPath(p.Slug, false), navigateOptions{}, now)
			}
		} else if m.view == viewHome && m.homeSlides != nil {
			// Open the active project, introduced.
			projects := m.cat.ListProjects()
			if i := m.homeSlides.Index(); i < len(projects) {
				m.trans.Navigate(projectPath(projects[i].Slug, true), navigateOptions{}, now)
			}
		} else if m.pres != nil && m.pres.Presenting() {
			m.dismissIntro(now)
		}

	case "left", "h":
		m.slidePrev(now)

	case "right", "l":
		m.slideNext(now)

	case "g":
		m.toggleGrid(now)

	case "[":
		if m.inGrid() {
			m.grid.PrevPage()
		}

	case "]":
		if m.inGrid() {
			m.grid.NextPage()
		}
	}
	return m, m.scheduleHeartbeat()
}

func (m *appModel) inGrid() bool {
	return m.view == viewProject && m.gallery != nil && m.gallery.Mode() == modeGrid
}

func (m *appModel) slidePrev(now time.Time) {
	if m.pres != nil && m.pres.Presenting() {
		m.dismissIntro(now)
		return
	}
	switch {
	case m.view == viewHome && m.homeSlides != nil:
		m.homeSlides.Prev(now)
	case m.view == viewProject && m.slides != nil && !m.inGrid():
		m.slides.Prev(now)
	}
}

func (m *appModel) slideNext(now time.Time) {
	if m.pres != nil && m.pres.Presenting() {
		m.dismissIntro(now)
		return
	}
	switch {
	case m.view == viewHome && m.homeSlides != nil:
		m.homeSlides.Next(now)
	case m.view == viewProject && m.slides != nil && !m.inGrid():
		m.slides.Next(now)
	}
}

func (m *appModel) toggleGrid(now time.Time) {
	if m.view != viewProject || m.gallery == nil {
		return
	}
	if m.gallery.Toggle(now) {
		bus.Publish(m.b, bus.GridToggleRequest{})
	}
}

func (m *appModel) dismissIntro(now time.Time) {
	if m.pres == nil {
		return
	}
	if m.pres.Dismiss(now) == presenterReveal {
		m.nav.ReplaceInPlace(projectPath(m.project.Slug, false))
	}
	// The auto-advance variant chains on the same dismissal, not only on
	// the timeout path.
	if m.pres.ShouldAdvance() {
		m.navigateNextProject(now, true)
	}
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Action {
	case tea.MouseActionMotion:
		m.handlePointerMove(msg.X, msg.Y, now)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.beltUI.InScrollableContent(msg.X, msg.Y) {
				m.beltUI.ScrollBy(-1)
			}
		case tea.MouseButtonWheelDown:
			if m.beltUI.InScrollableContent(msg.X, msg.Y) {
				m.beltUI.ScrollBy(1)
			}
		case tea.MouseButtonLeft:
			m.pressed = true
			m.pressY = msg.Y
			m.dragY = msg.Y
			m.belt.TouchStart(float64(msg.Y), now, m.beltUI.InScrollableContent(msg.X, msg.Y))
		}

	case tea.MouseActionRelease:
		if !m.pressed {
			break
		}
		m.pressed = false
		dragged := msg.Y != m.pressY
		m.belt.TouchEnd(float64(msg.Y), now)
		if !dragged {
			m.handleClick(msg.X, msg.Y, now)
		}
	}
	return m, m.scheduleHeartbeat()
}

func (m *appModel) handlePointerMove(x, y int, now time.Time) {
	inBelt := m.beltUI.Contains(x, y)
	if inBelt && !m.pointerInBelt {
		m.belt.PointerEnter(now)
	} else if !inBelt && m.pointerInBelt {
		m.belt.PointerLeave(now)
	}
	m.pointerInBelt = inBelt

	if m.pressed {
		// A drag the swipe classifier claims must not also scroll; anything
		// else over the belt's content scrolls it.
		owned := m.belt.TouchMove(float64(y))
		if !owned && y != m.dragY && m.beltUI.InScrollableContent(x, y) {
			m.beltUI.ScrollBy(m.dragY - y)
		}
		m.dragY = y
	}

	// The arrow indicator follows the pointer over gallery content only.
	if !inBelt && m.hasSlideshow() {
		m.arrow.PointerMove(x, m.width, now)
	} else {
		m.arrow.Leave()
	}

	// Hover highlight for the belt's projects list.
	if inBelt && m.belt.Expanded() && m.belt.Section() == bus.SectionProjects {
		if p, ok := m.beltUI.SelectedProject(); ok {
			m.belt.HoverProject(&p)
		}
	}
}

func (m *appModel) hasSlideshow() bool {
	if m.view == viewHome {
		return m.homeSlides != nil
	}
	return m.view == viewProject && m.slides != nil && !m.inGrid()
}

func (m *appModel) handleClick(x, y int, now time.Time) {
	if m.beltUI.Contains(x, y) {
		m.handleBeltClick(x, y, now)
		return
	}
	if m.belt.Expanded() {
		m.belt.OutsideTap(now)
	}

	if m.pres != nil && m.pres.Presenting() {
		m.dismissIntro(now)
		return
	}

	switch m.view {
	case viewHome:
		m.handleHomeClick(x, y, now)
	case viewProject:
		m.handleProjectClick(x, y, now)
	}
}

func (m *appModel) handleBeltClick(x, y int, now time.Time) {
	if !m.belt.Expanded() {
		m.belt.TapBelt(now)
		return
	}
	if y == 1 {
		if sec, ok := m.beltUI.TabAt(x); ok {
			m.belt.SwitchSection(sec)
			return
		}
	}
	if m.belt.Section() == bus.SectionProjects {
		if p, ok := m.beltUI.SelectedProject(); ok {
			m.trans.Navigate(projectPath(p.Slug, false), navigateOptions{}, now)
		}
	}
}

func (m *appModel) handleHomeClick(x, y int, now time.Time) {
	if m.homeSlides == nil {
		return
	}
	// A click on the active frame opens the project; elsewhere the
	// half-width rule navigates slides.
	projects := m.cat.ListProjects()
	i := m.homeSlides.Index()
	if i < len(projects) {
		p := projects[i]
		if m.frameAt(p, x, y) {
			m.trans.Navigate(projectPath(p.Slug, true), navigateOptions{}, now)
			return
		}
	}
	m.homeSlides.Click(x, m.width, now)
}

// frameAt reports whether (x, y) falls inside p's scattered frame.
func (m *appModel) frameAt(p model.Project, x, y int) bool {
	if len(p.Media) == 0 {
		return false
	}
	item := p.Media[m.homePicks[p.ID]]
	w, h := mediaBox(m.height, m.cfg.MediaHeightPct/100, item.Aspect())
	pos := m.scatter.PositionFor(p.ID, m.width, m.height, m.cfg.MediaHeightPct/100, item.Aspect())
	return x >= pos.Left && x < pos.Left+w+2 && y >= pos.Top && y < pos.Top+h+2
}

func (m *appModel) handleProjectClick(x, y int, now time.Time) {
	if m.slides == nil || m.gallery == nil {
		return
	}
	if m.inGrid() {
		if idx, ok := m.grid.ClickIndex(x-2, y-2); ok {
			if m.gallery.JumpToSlide(idx, now) {
				m.slides.JumpTo(idx, now)
			}
		}
		return
	}

	// The caption counter at the bottom toggles the grid.
	if y >= m.height-2 {
		m.toggleGrid(now)
		return
	}

	// Clicking the ghost always goes back, wherever it scattered.
	if m.ghostAt(x, y) {
		m.slides.GhostClick(now)
		return
	}
	m.slides.Click(x, m.width, now)
}

// ghostFrame resolves the ghost slide's index, scattered placement, and box
// size. The placement is keyed separately from the home scatter so the two
// never collide, and re-rolls with each interactive slide change.
func (m *appModel) ghostFrame() (g int, pos position, w, h int, ok bool) {
	if m.slides == nil {
		return 0, position{}, 0, 0, false
	}
	g, ok = m.slides.GhostIndex()
	if !ok || g >= len(m.project.Media) {
		return 0, position{}, 0, 0, false
	}
	item := m.project.Media[g]
	heightFrac := m.cfg.MediaHeightPct / 100
	w, h = mediaBox(m.height, heightFrac, item.Aspect())
	pos = m.scatter.PositionFor("ghost:"+item.ID, m.width, m.height, heightFrac, item.Aspect())
	return g, pos, w, h, true
}

// ghostAt reports whether (x, y) falls inside the ghost frame.
func (m *appModel) ghostAt(x, y int) bool {
	_, pos, w, h, ok := m.ghostFrame()
	return ok && x >= pos.Left && x < pos.Left+w+2 && y >= pos.Top && y < pos.Top+h+2
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	c := newCanvas(m.width, m.height)

	// Mid-transition the page content is hidden; only the chrome stays.
	if !m.trans.FadingOut() {
		switch m.view {
		case viewHome:
			m.renderHome(c)
		case viewProject:
			m.renderProject(c)
		case viewNotFound:
			msg := "not found, esc to go home"
			c.Paste((m.width-len(msg))/2, m.height/2, styleMuted().Render(msg))
		}
		m.renderArrow(c)
	}

	c.Paste(0, 0, m.beltUI.View())
	return c.Render()
}

func (m appModel) renderHome(c *canvas) {
	if m.homeSlides == nil {
		return
	}
	projects := m.cat.ListProjects()
	active := m.homeSlides.Index()
	heightFrac := m.cfg.MediaHeightPct / 100

	for i, p := range projects {
		if len(p.Media) == 0 {
			continue
		}
		item := p.Media[m.homePicks[p.ID]]
		w, h := mediaBox(m.height, heightFrac, item.Aspect())
		pos := m.scatter.PositionFor(p.ID, m.width, m.height, heightFrac, item.Aspect())
		frame := renderMediaFrame(item, w, h, frameOptions{
			active: i == active,
			eager:  i == active,
		})
		c.Paste(pos.Left, pos.Top, frame)
	}

	if active < len(projects) {
		p := projects[active]
		line := styleCaption().Render(p.FormattedNumber() + "  " + p.Title + "  " + p.Meta())
		c.Paste(2, m.height-1, line)
	}
}

func (m appModel) renderProject(c *canvas) {
	if m.gallery == nil || m.slides == nil {
		return
	}

	// Intro: centered title panel; the gallery stays hidden until the
	// reveal, and nothing at all paints during the pre-paint delay.
	if m.pres != nil && m.pres.Presenting() {
		if !m.pres.Hidden() {
			m.renderIntroPanel(c)
		}
		return
	}

	if m.gallery.Mode() == modeGrid {
		c.Paste(2, 2, m.grid.View())
		return
	}

	heightFrac := m.cfg.MediaHeightPct / 100
	eager := m.slides.EagerIndexes()

	// Ghost: the previous slide, dimmed, at its own scattered position.
	if g, pos, w, h, ok := m.ghostFrame(); ok {
		frame := renderMediaFrame(m.project.Media[g], w, h, frameOptions{ghost: true, eager: eager[g]})
		c.Paste(pos.Left, pos.Top, frame)
	}

	// Active slide, centered.
	i := m.slides.Index()
	if i < len(m.project.Media) {
		item := m.project.Media[i]
		w, h := mediaBox(m.height, heightFrac, item.Aspect())
		frame := renderMediaFrame(item, w, h, frameOptions{active: true, eager: eager[i]})
		c.Paste((m.width-w)/2, (m.height-h)/2, frame)
	}

	// Caption: title left, NN/MM counter right. Clicking the caption row
	// flips to the grid.
	counter := fmt.Sprintf("%02d/%02d", i+1, len(m.project.Media))
	left := styleCaption().Render(m.project.FormattedNumber() + "  " + m.project.Title)
	right := styleCaption().Render(counter)
	c.Paste(2, m.height-1, left)
	c.Paste(m.width-len(counter)-2, m.height-1, right)
}

func (m appModel) renderIntroPanel(c *canvas) {
	title := lipgloss.NewStyle().Bold(true).Render(m.project.Title)
	num := styleCaption().Render(m.project.FormattedNumber())

	lines := []string{num, "", title}
	if meta := m.project.Meta(); meta != "" {
		lines = append(lines, styleCaption().Render(meta))
	}
	block := strings.Join(lines, "\n")
	bw := lipgloss.Width(block)
	c.Paste((m.width-bw)/2, m.height/2-2, block)
}

func (m appModel) renderArrow(c *canvas) {
	if !m.hasSlideshow() {
		return
	}
	switch m.arrow.Dir() {
	case arrowLeft:
		c.Paste(1, m.height/2, glyphArrowLeft())
	case arrowRight:
		c.Paste(m.width-3, m.height/2, glyphArrowRight())
	}
}
