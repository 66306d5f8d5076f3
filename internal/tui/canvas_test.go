package tui

import (
	"strings"
	"testing"
)

func TestSpliceRowOverlay(t *testing.T) {
	row := strings.Repeat(".", 10)

	got := spliceRow(row, 3, "abc", 10)
	if got != "...abc...." {
		t.Fatalf("spliceRow = %q", got)
	}
}

func TestSpliceRowNegativeColumn(t *testing.T) {
	row := strings.Repeat(".", 8)

	// Only the part of the line right of the canvas edge survives.
	got := spliceRow(row, -2, "abcde", 8)
	if got != "cde....." {
		t.Fatalf("spliceRow = %q", got)
	}
}

func TestSpliceRowRightOverflow(t *testing.T) {
	row := strings.Repeat(".", 6)

	got := spliceRow(row, 4, "abcde", 6)
	if got != "....ab" {
		t.Fatalf("spliceRow = %q", got)
	}

	// Entirely off the right edge: untouched.
	if got := spliceRow(row, 6, "abc", 6); got != row {
		t.Fatalf("off-edge spliceRow = %q", got)
	}
}

func TestCanvasPasteDropsOutOfRangeRows(t *testing.T) {
	c := newCanvas(5, 2)
	c.Paste(1, -1, "aa\nbb\ncc\ndd")

	got := c.Render()
	want := " bb  \n cc  "
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestCanvasPasteKeepsRowWidth(t *testing.T) {
	c := newCanvas(4, 1)
	c.Paste(2, 0, "xyz")

	rows := strings.Split(c.Render(), "\n")
	if len(rows) != 1 || rows[0] != "  xy" {
		t.Fatalf("rows = %q", rows)
	}
}
