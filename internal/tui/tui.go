package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio-cli/internal/config"
	"folio-cli/internal/content"
)

// Run starts the interactive portfolio at initialPath ("/" for home).
func Run(cfg *config.Config, cat *content.Catalog, initialPath string) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newAppModel(cfg, cat, initialPath)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
