package tui

import (
	"strings"
	"testing"

	"folio-cli/internal/model"
)

func TestFrameCaptionRendersBelow(t *testing.T) {
	item := model.MediaItem{ID: "m1", Kind: model.MediaKindImage}

	out := renderMediaFrame(item, 8, 3, frameOptions{caption: "007"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want frame plus caption", len(lines))
	}
	if !strings.Contains(lines[3], "007") {
		t.Fatalf("caption line = %q", lines[3])
	}

	// No caption, no extra line.
	out = renderMediaFrame(item, 8, 3, frameOptions{})
	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Fatalf("lines without caption = %d", got)
	}
}
