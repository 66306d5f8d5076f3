package tui

import (
	"testing"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("FOLIO_TUI_MD_STYLE", "")
	t.Setenv("COLORFGBG", "")
	t.Setenv("FOLIO_TUI_DARKBG", "")

	t.Setenv("FOLIO_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("FOLIO_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyle_MDStyleOverridesTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("FOLIO_TUI_DARKBG", "")
	t.Setenv("FOLIO_TUI_THEME", "light")

	t.Setenv("FOLIO_TUI_MD_STYLE", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyle_COLORFGBGHeuristic(t *testing.T) {
	t.Setenv("FOLIO_TUI_MD_STYLE", "")
	t.Setenv("FOLIO_TUI_THEME", "")
	t.Setenv("FOLIO_TUI_DARKBG", "")

	t.Setenv("COLORFGBG", "15;0")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("bg 0 should read as dark; got %q", got)
	}

	t.Setenv("COLORFGBG", "0;15")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("bg 15 should read as light; got %q", got)
	}
}

func TestMarkdownStyleConfig_LinksUseAccent(t *testing.T) {
	for _, style := range []string{"light", "dark"} {
		cfg := markdownStyleConfig(style)
		if cfg.Link.Color == nil || *cfg.Link.Color == "" {
			t.Fatalf("%s: link color not set", style)
		}
		if cfg.Link.Underline == nil || !*cfg.Link.Underline {
			t.Fatalf("%s: links should be underlined", style)
		}
		if cfg.Text.Color == nil {
			t.Fatalf("%s: base text color not aligned with the surface", style)
		}
	}
}
