package tui

import (
	"strings"
	"testing"

	"folio-cli/internal/model"
)

func gridItems(n int) []model.MediaItem {
	items := make([]model.MediaItem, n)
	for i := range items {
		items[i] = model.MediaItem{ID: string(rune('a' + i)), Kind: model.MediaKindImage}
	}
	return items
}

func TestGridViewGeometry(t *testing.T) {
	g := newGridView(gridItems(10), 4)

	// 52 cols fit three 16-wide cells with 2-cell gaps; 17 rows fit two
	// 8-line cell rows plus the paginator line.
	g.SetSize(52, 17)
	if g.cols != 3 || g.rows != 2 {
		t.Fatalf("cols, rows = %d, %d", g.cols, g.rows)
	}
	if g.pag.PerPage != 6 {
		t.Fatalf("PerPage = %d", g.pag.PerPage)
	}
	if g.pag.TotalPages != 2 {
		t.Fatalf("TotalPages = %d", g.pag.TotalPages)
	}
}

func TestGridViewShrinkClampsPage(t *testing.T) {
	g := newGridView(gridItems(12), 4)
	g.SetSize(52, 17)
	g.NextPage()
	if g.pag.Page != 1 {
		t.Fatalf("Page = %d", g.pag.Page)
	}

	// Growing the page capacity can make the current page vanish.
	g.SetSize(120, 40)
	if g.pag.Page != 0 {
		t.Fatalf("Page after grow = %d", g.pag.Page)
	}
}

func TestGridViewClickIndex(t *testing.T) {
	g := newGridView(gridItems(10), 4)
	g.SetSize(52, 17)

	cases := []struct {
		x, y int
		idx  int
		ok   bool
	}{
		{0, 0, 0, true},
		{15, 5, 0, true},
		{16, 0, 0, false}, // horizontal gap
		{18, 0, 1, true},
		{0, 7, 0, false}, // vertical spacer
		{0, 8, 3, true},  // second row
		{36, 8, 5, true},
		{-1, 0, 0, false},
	}
	for _, c := range cases {
		idx, ok := g.ClickIndex(c.x, c.y)
		if ok != c.ok || (ok && idx != c.idx) {
			t.Fatalf("ClickIndex(%d, %d) = %d, %v; want %d, %v", c.x, c.y, idx, ok, c.idx, c.ok)
		}
	}
}

func TestGridCellCarriesNumberCaption(t *testing.T) {
	g := newGridView(gridItems(3), 1)
	if cell := g.renderCell(1); !strings.Contains(cell, "002") {
		t.Fatalf("cell missing its number: %q", cell)
	}
}

func TestGridViewClickIndexRespectsPage(t *testing.T) {
	g := newGridView(gridItems(10), 4)
	g.SetSize(52, 17)
	g.NextPage()

	idx, ok := g.ClickIndex(0, 0)
	if !ok || idx != 6 {
		t.Fatalf("ClickIndex on page 2 = %d, %v", idx, ok)
	}

	// The last page holds 4 items; the empty slots don't hit.
	if _, ok := g.ClickIndex(18, 8); ok {
		t.Fatalf("click on empty slot hit")
	}
}
