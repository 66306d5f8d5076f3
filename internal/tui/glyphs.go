package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's actual font. Instead, we can choose
// between Unicode and ASCII glyph sets for UI affordances (direction arrows,
// video badges, rules). This helps on terminals/fonts that don't render some
// glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FOLIO_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphArrowLeft() string {
	if glyphs() == glyphSetASCII {
		return "<-"
	}
	return "←"
}

func glyphArrowRight() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphPlayBadge() string {
	if glyphs() == glyphSetASCII {
		return "[>]"
	}
	return "▶"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
