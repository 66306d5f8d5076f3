package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size cell buffer that media frames are pasted onto at
// arbitrary offsets. Splicing goes through x/ansi so styled frames can
// overlap without tearing escape sequences apart.
type canvas struct {
	width  int
	height int
	rows   []string
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}
	return &canvas{width: width, height: height, rows: rows}
}

// Paste splices block into the canvas with its top-left corner at
// (left, top). Rows that fall outside the canvas are dropped; rows that
// overhang the right edge are cut.
func (c *canvas) Paste(left, top int, block string) {
	if block == "" || c.width == 0 {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		y := top + i
		if y < 0 || y >= c.height {
			continue
		}
		c.rows[y] = spliceRow(c.rows[y], left, line, c.width)
	}
}

func (c *canvas) Render() string {
	return strings.Join(c.rows, "\n")
}

// spliceRow overlays line onto row starting at col, keeping the result
// exactly width cells wide.
func spliceRow(row string, col int, line string, width int) string {
	if col >= width {
		return row
	}
	if col < 0 {
		line = xansi.Cut(line, -col, xansi.StringWidth(line))
		col = 0
	}
	lineW := xansi.StringWidth(line)
	if lineW == 0 {
		return row
	}
	if col+lineW > width {
		line = xansi.Cut(line, 0, width-col)
		lineW = width - col
	}

	left := xansi.Cut(row, 0, col)
	right := ""
	if col+lineW < width {
		right = xansi.Cut(row, col+lineW, width)
	}
	out := left + line + right

	// Cut on a short row can come up empty; re-pad so the grid stays square.
	if w := xansi.StringWidth(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}
