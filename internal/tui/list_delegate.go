package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"folio-cli/internal/model"
)

// projectListItem adapts a project to the bubbles list shown in the menu
// belt's projects section.
type projectListItem struct {
	p model.Project
}

func (i projectListItem) Title() string {
	return i.p.FormattedNumber() + "  " + i.p.Title
}

func (i projectListItem) Description() string { return i.p.Meta() }
func (i projectListItem) FilterValue() string { return i.p.Title }

func projectListItems(projects []model.Project) []list.Item {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectListItem{p: p}
	}
	return items
}

// beltListDelegate renders one project per row: number, title, and the
// meta line's trailing hint, padded to the full row so the hover highlight
// forms a solid bar.
type beltListDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	meta     lipgloss.Style
}

func newBeltListDelegate() beltListDelegate {
	return beltListDelegate{
		normal: lipgloss.NewStyle().Foreground(colorBeltFg),
		selected: lipgloss.NewStyle().
			Foreground(colorSurfaceBg).
			Background(colorFrameActive).
			Bold(true),
		meta: styleCaption(),
	}
}

func (d beltListDelegate) Height() int  { return 1 }
func (d beltListDelegate) Spacing() int { return 0 }
func (d beltListDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d beltListDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	it, ok := item.(projectListItem)
	if !ok {
		fmt.Fprint(w, style.Render(fmt.Sprint(item)))
		return
	}

	line := it.Title()
	if meta := it.Description(); meta != "" && index != m.Index() {
		line += "  " + d.meta.Render(meta)
	}

	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
