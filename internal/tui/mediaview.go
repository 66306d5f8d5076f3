package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"folio-cli/internal/model"
)

// frameOptions selects how a media frame renders.
type frameOptions struct {
	// active draws the emphasized border used for the hovered/current frame.
	active bool
	// ghost renders the dimmed previous-slide sliver.
	ghost bool
	// eager frames show their full placeholder content; lazy frames show
	// only the blur fill until the slideshow reaches them.
	eager bool
	// caption renders under the frame (alt text, or the NN/MM counter).
	caption string
}

// renderMediaFrame draws one media item as a w x h cell frame. Terminals
// can't show the photograph itself, so eager frames show the alt text and
// dimensions over the blur fill, the way the real image replaces its blur
// placeholder once decoded.
func renderMediaFrame(item model.MediaItem, w, h int, opts frameOptions) string {
	if w < 6 {
		w = 6
	}
	if h < 3 {
		h = 3
	}

	innerW, innerH := w-2, h-2

	var lines []string
	if opts.eager {
		lines = frameContent(item, innerW, innerH)
	}
	body := fillBlur(lines, innerW, innerH, opts.ghost)

	if item.Kind == model.MediaKindVideo {
		body = overlayBadge(body, videoBadge(item), innerW)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(frameBorderColor(opts))
	out := border.Render(body)

	if opts.caption != "" {
		caption := opts.caption
		if xansi.StringWidth(caption) > w {
			caption = xansi.Cut(caption, 0, w)
		}
		out += "\n" + styleCaption().Render(caption)
	}
	if opts.ghost {
		out = lipgloss.NewStyle().Foreground(colorGhostFg).Faint(true).Render(out)
	}
	return out
}

func frameBorderColor(opts frameOptions) lipgloss.TerminalColor {
	if opts.ghost {
		return colorGhostFg
	}
	if opts.active {
		return colorFrameActive
	}
	return colorFrameBorder
}

// frameContent centers the alt text (and a dimensions line when known)
// inside the frame interior.
func frameContent(item model.MediaItem, w, h int) []string {
	var content []string
	alt := strings.TrimSpace(item.Alt)
	if alt != "" {
		if xansi.StringWidth(alt) > w {
			alt = xansi.Cut(alt, 0, w)
		}
		content = append(content, alt)
	}
	if item.Width > 0 && item.Height > 0 && h >= 3 {
		content = append(content, fmtInt(item.Width)+"x"+fmtInt(item.Height))
	}
	if len(content) == 0 {
		return nil
	}

	top := (h - len(content)) / 2
	if top < 0 {
		top = 0
	}
	lines := make([]string, h)
	for i, c := range content {
		y := top + i
		if y >= h {
			break
		}
		pad := (w - xansi.StringWidth(c)) / 2
		if pad < 0 {
			pad = 0
		}
		lines[y] = strings.Repeat(" ", pad) + c
	}
	return lines
}

// fillBlur pads content lines to the full interior, filling empty cells
// with the blur-placeholder shade.
func fillBlur(lines []string, w, h int, ghost bool) string {
	shade := blurShade()
	fillStyle := lipgloss.NewStyle().Foreground(colorBlurFill)
	if ghost {
		fillStyle = fillStyle.Foreground(colorGhostFg)
	}

	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var line string
		if y < len(lines) {
			line = lines[y]
		}
		lw := xansi.StringWidth(line)
		if lw >= w {
			rows[y] = xansi.Cut(line, 0, w)
			continue
		}
		if line == "" {
			rows[y] = fillStyle.Render(strings.Repeat(shade, w))
			continue
		}
		rows[y] = line + fillStyle.Render(strings.Repeat(shade, w-lw))
	}
	return strings.Join(rows, "\n")
}

// blurShade picks the placeholder fill rune: a light stipple that reads as
// "image loading" on both backgrounds; denser on dark terminals where the
// light shade all but disappears.
func blurShade() string {
	if glyphs() == glyphSetASCII {
		return "."
	}
	if lipgloss.HasDarkBackground() {
		return "▒"
	}
	return "░"
}

func videoBadge(item model.MediaItem) string {
	label := glyphPlayBadge()
	switch item.Provider {
	case model.VideoProviderVimeo:
		label += " vimeo"
	case model.VideoProviderYouTube:
		label += " youtube"
	}
	return lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent).
		Padding(0, 1).
		Render(label)
}

// overlayBadge pastes the provider badge into the frame's top-left corner.
func overlayBadge(body, badge string, w int) string {
	rows := strings.Split(body, "\n")
	if len(rows) == 0 {
		return body
	}
	rows[0] = spliceRow(rows[0], 0, badge, w)
	return strings.Join(rows, "\n")
}
