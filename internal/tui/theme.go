package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI.
var (
	defaultColorMuted lipgloss.TerminalColor = ac("240", "243")
	colorMuted                               = defaultColorMuted

	// Captions under media frames and the project meta line.
	defaultColorCaptionFg lipgloss.TerminalColor = ac("240", "245")
	colorCaptionFg                               = defaultColorCaptionFg

	defaultColorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceBg                               = defaultColorSurfaceBg
	defaultColorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorSurfaceFg                               = defaultColorSurfaceFg

	// Media frame borders: soft by default, darker for the hovered project.
	defaultColorFrameBorder                        = ac("250", "243")
	colorFrameBorder        lipgloss.TerminalColor = defaultColorFrameBorder
	defaultColorFrameActive                        = ac("232", "255")
	colorFrameActive        lipgloss.TerminalColor = defaultColorFrameActive

	// Placeholder fill while a frame has only its blur preview.
	defaultColorBlurFill lipgloss.TerminalColor = ac("253", "237")
	colorBlurFill                               = defaultColorBlurFill

	// The ghost frame peeking from the left edge renders dimmed.
	defaultColorGhostFg lipgloss.TerminalColor = ac("248", "240")
	colorGhostFg                               = defaultColorGhostFg

	defaultColorAccent lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccent                               = defaultColorAccent
	// Foreground for text rendered on top of colorAccent backgrounds
	// (video badges, the grid's active page marker).
	defaultColorAccentFg lipgloss.TerminalColor = ac("255", "235")
	colorAccentFg                               = defaultColorAccentFg

	// The expanded menu belt sits on an elevated surface.
	defaultColorBeltBg lipgloss.TerminalColor = ac("252", "236")
	colorBeltBg                               = defaultColorBeltBg
	defaultColorBeltFg lipgloss.TerminalColor = defaultColorSurfaceFg
	colorBeltFg                               = defaultColorBeltFg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleCaption() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorCaptionFg))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	// Start from termenv's best guess.
	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports,
	// trust the env. Color probing under-reports in some terminals, which
	// degrades the adaptive grays badly.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which can cause
// lipgloss.AdaptiveColor to pick the wrong variant.
//
// Priority:
// 1) FOLIO_TUI_THEME=light|dark|auto
// 2) FOLIO_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("FOLIO_TUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fallthrough to heuristics/default
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("FOLIO_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments); last segment is bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	// macOS Terminal.app often doesn't set COLORFGBG, and background probing
	// can be unreliable. Fall back to the OS appearance when available.
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
			return
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and returns exit status 1
	// in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
