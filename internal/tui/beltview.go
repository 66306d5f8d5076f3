package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"folio-cli/internal/bus"
	"folio-cli/internal/content"
	"folio-cli/internal/model"
)

// beltView renders the menu belt: a slim handle at the top edge when
// collapsed, an elevated overlay with section tabs and scrollable content
// when expanded. The belt machine owns all state; this only draws it.
type beltView struct {
	belt *menuBelt
	cat  *content.Catalog

	projects list.Model
	body     viewport.Model

	width  int
	height int

	// lastSection/lastSlug detect section switches so the viewport content
	// is rebuilt and rescrolled only when it actually changes. bodyDirty
	// forces a rebuild after a resize.
	lastSection bus.Section
	lastSlug    string
	bodyDirty   bool
}

func newBeltView(belt *menuBelt, cat *content.Catalog) *beltView {
	l := list.New(projectListItems(cat.ListProjects()), newBeltListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	return &beltView{
		belt:      belt,
		cat:       cat,
		projects:  l,
		body:      viewport.New(0, 0),
		bodyDirty: true,
	}
}

func (v *beltView) SetSize(width, height int) {
	v.width = width
	v.height = height
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := v.expandedHeight() - 4
	if innerH < 3 {
		innerH = 3
	}
	v.projects.SetSize(innerW, innerH)
	v.body.Width = innerW
	v.body.Height = innerH
	v.bodyDirty = true // re-wrap content at the new width
}

// expandedHeight is the overlay's footprint: roughly the upper half of the
// viewport, never the whole screen.
func (v *beltView) expandedHeight() int {
	h := v.height / 2
	if h < 8 {
		h = 8
	}
	if h > v.height {
		h = v.height
	}
	return h
}

// Contains reports whether a screen cell lies inside the belt's current
// footprint, for pointer enter/leave and outside-tap dispatch.
func (v *beltView) Contains(x, y int) bool {
	if !v.belt.Expanded() {
		return y == 0
	}
	return y < v.expandedHeight()
}

// InScrollableContent reports whether a cell sits in the belt's body area,
// where touch gestures scroll instead of closing.
func (v *beltView) InScrollableContent(x, y int) bool {
	return v.belt.Expanded() && y >= 3 && y < v.expandedHeight()-1
}

func (v *beltView) ScrollBy(lines int) {
	if lines < 0 {
		v.body.LineUp(-lines)
	} else {
		v.body.LineDown(lines)
	}
}

// SelectedProject returns the project under the cursor in the projects
// section.
func (v *beltView) SelectedProject() (model.Project, bool) {
	it, ok := v.projects.SelectedItem().(projectListItem)
	if !ok {
		return model.Project{}, false
	}
	return it.p, true
}

func (v *beltView) MoveCursor(delta int) {
	if v.belt.Section() != bus.SectionProjects {
		v.ScrollBy(delta)
		return
	}
	if delta < 0 {
		v.projects.CursorUp()
	} else {
		v.projects.CursorDown()
	}
	if p, ok := v.SelectedProject(); ok {
		v.belt.HoverProject(&p)
	}
}

func (v *beltView) View() string {
	if !v.belt.Expanded() {
		return v.renderHandle()
	}

	v.refreshBody()

	tabs := v.renderTabs()
	var body string
	if v.belt.Section() == bus.SectionProjects {
		body = v.projects.View()
	} else {
		body = v.body.View()
	}

	surface := lipgloss.NewStyle().
		Background(colorBeltBg).
		Foreground(colorBeltFg).
		Width(v.width-2).
		Padding(0, 1)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), max(0, v.width-2)))

	return surface.Render(tabs + "\n" + rule + "\n" + body)
}

func (v *beltView) renderHandle() string {
	label := "menu"
	if p := v.belt.Detected(); p != nil {
		label += "  " + glyphBullet() + "  " + p.FormattedNumber() + " " + p.Title
	}
	line := styleMuted().Render(label)
	if w := xansi.StringWidth(line); w < v.width {
		line += strings.Repeat(" ", v.width-w)
	}
	return line
}

func (v *beltView) renderTabs() string {
	type tab struct {
		sec   bus.Section
		label string
	}
	tabs := []tab{
		{bus.SectionProjects, "Projects"},
		{bus.SectionAbout, "About"},
	}
	if v.belt.Detected() != nil {
		tabs = append(tabs, tab{bus.SectionProjectInfo, "Info"})
	}

	active := lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true).Underline(true)
	idle := styleMuted()
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.sec == v.belt.Section() {
			parts = append(parts, active.Render(t.label))
		} else {
			parts = append(parts, idle.Render(t.label))
		}
	}
	return strings.Join(parts, "   ")
}

// TabAt maps a click on the tab row to its section.
func (v *beltView) TabAt(x int) (bus.Section, bool) {
	// Tab labels with their 3-cell gaps, in render order.
	bounds := []struct {
		sec  bus.Section
		wide int
	}{
		{bus.SectionProjects, len("Projects")},
		{bus.SectionAbout, len("About")},
	}
	if v.belt.Detected() != nil {
		bounds = append(bounds, struct {
			sec  bus.Section
			wide int
		}{bus.SectionProjectInfo, len("Info")})
	}
	pos := x - 2 // surface padding
	for _, b := range bounds {
		if pos >= 0 && pos < b.wide {
			return b.sec, true
		}
		pos -= b.wide + 3
	}
	return "", false
}

func (v *beltView) refreshBody() {
	sec := v.belt.Section()
	slug := ""
	if p := v.belt.Detected(); p != nil {
		slug = p.Slug
	}
	if !v.bodyDirty && sec == v.lastSection && slug == v.lastSlug {
		return
	}
	v.bodyDirty = false
	v.lastSection = sec
	v.lastSlug = slug

	switch sec {
	case bus.SectionAbout:
		v.body.SetContent(trimTrailingBlank(renderAbout(v.cat.AboutInfo(), v.body.Width)))
	case bus.SectionProjectInfo:
		if p := v.belt.Detected(); p != nil {
			v.body.SetContent(trimTrailingBlank(renderProjectInfo(*p, v.body.Width)))
		} else {
			v.body.SetContent("")
		}
	}
	v.body.GotoTop()
}

// trimTrailingBlank drops trailing lines that are visually empty. Markdown
// rendering pads its output with ANSI-only spacer lines, which would eat into
// the viewport's scroll range.
func trimTrailingBlank(s string) string {
	lines := strings.Split(s, "\n")
	n := len(lines)
	for n > 0 && strings.TrimSpace(stripANSIEscapes(lines[n-1])) == "" {
		n--
	}
	return strings.Join(lines[:n], "\n")
}

func renderAbout(a model.AboutInfo, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(a.Name))
	b.WriteString("\n\n")
	if a.Bio != "" {
		b.WriteString(renderMarkdownCompact(a.Bio, width))
		b.WriteString("\n\n")
	}
	writeContact(&b, "email", a.Email)
	writeContact(&b, "phone", a.Phone)
	writeContact(&b, "instagram", a.Instagram)
	if len(a.Collaborators) > 0 {
		b.WriteString("\n" + styleCaption().Render("Collaborators") + "\n")
		for _, c := range a.Collaborators {
			b.WriteString(glyphBullet() + " " + c + "\n")
		}
	}
	if len(a.Publications) > 0 {
		b.WriteString("\n" + styleCaption().Render("Publications") + "\n")
		for _, p := range a.Publications {
			b.WriteString(glyphBullet() + " " + p + "\n")
		}
	}
	return b.String()
}

func writeContact(b *strings.Builder, label string, c model.ContactInfo) {
	if c.Display == "" {
		return
	}
	b.WriteString(styleCaption().Render(label) + "  " + c.Display + "\n")
}

func renderProjectInfo(p model.Project, width int) string {
	var b strings.Builder
	b.WriteString(styleCaption().Render(p.FormattedNumber()) + "  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	b.WriteString("\n")
	if meta := p.Meta(); meta != "" {
		b.WriteString(styleCaption().Render(meta) + "\n")
	}
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(renderMarkdownCompact(p.Description, width))
		b.WriteString("\n\n")
	}
	writeStat(&b, "images", fmtInt(len(p.Media)))
	writeStat(&b, "collaboration", p.Collaboration)
	writeStat(&b, "client", p.Client)
	writeStat(&b, "date", p.Date)
	return b.String()
}

func writeStat(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(styleCaption().Render(label) + "  " + value + "\n")
}
