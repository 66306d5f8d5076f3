package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"folio-cli/internal/model"
)

const (
	gridCellW = 16
	gridCellH = 6
	gridPad   = 2
)

// gridView renders a project's media as a paged thumbnail grid. Thumbnails
// carry a 3-digit ordinal; clicking one jumps the slideshow to that index.
type gridView struct {
	items    []model.MediaItem
	priority int

	pag  paginator.Model
	cols int
	rows int
}

func newGridView(items []model.MediaItem, priorityCount int) *gridView {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(colorAccent).Render(glyphBullet())
	p.InactiveDot = styleMuted().Render(glyphBullet())
	return &gridView{items: items, priority: priorityCount, pag: p, cols: 1, rows: 1}
}

// SetSize recomputes the page geometry for the available area. The cell
// footprint is fixed; only the page capacity changes.
func (g *gridView) SetSize(width, height int) {
	g.cols = (width + gridPad) / (gridCellW + gridPad)
	if g.cols < 1 {
		g.cols = 1
	}
	// Each row needs the thumbnail, its number line, and a spacer; the last
	// line goes to the paginator dots.
	g.rows = (height - 1) / (gridCellH + 2)
	if g.rows < 1 {
		g.rows = 1
	}
	g.pag.PerPage = g.cols * g.rows
	g.pag.SetTotalPages(len(g.items))
	if g.pag.Page >= g.pag.TotalPages {
		g.pag.Page = g.pag.TotalPages - 1
	}
}

func (g *gridView) NextPage() { g.pag.NextPage() }
func (g *gridView) PrevPage() { g.pag.PrevPage() }

// ClickIndex maps a click at grid-local (x, y) to the absolute media index
// of the thumbnail under it, if any.
func (g *gridView) ClickIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / (gridCellW + gridPad)
	row := y / (gridCellH + 2)
	if col >= g.cols || row >= g.rows {
		return 0, false
	}
	if x%(gridCellW+gridPad) >= gridCellW || y%(gridCellH+2) > gridCellH {
		return 0, false
	}
	start, end := g.pag.GetSliceBounds(len(g.items))
	idx := start + row*g.cols + col
	if idx >= end {
		return 0, false
	}
	return idx, true
}

func (g *gridView) View() string {
	start, end := g.pag.GetSliceBounds(len(g.items))
	page := g.items[start:end]

	var rows []string
	for r := 0; r < g.rows && r*g.cols < len(page); r++ {
		var cells []string
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			if i >= len(page) {
				break
			}
			cells = append(cells, g.renderCell(start+i))
		}
		rows = append(rows, joinWithGap(cells, gridPad))
	}

	out := strings.Join(rows, "\n\n")
	if g.pag.TotalPages > 1 {
		out += "\n" + g.pag.View()
	}
	return out
}

// renderCell draws one thumbnail plus its 3-digit number. Only the first
// few thumbnails render with full detail; the rest stay on the blur fill,
// mirroring priority loading.
func (g *gridView) renderCell(idx int) string {
	return renderMediaFrame(g.items[idx], gridCellW, gridCellH, frameOptions{
		eager:   idx < g.priority,
		caption: fmt.Sprintf("%03d", idx+1),
	})
}

func joinWithGap(cells []string, gap int) string {
	if len(cells) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
