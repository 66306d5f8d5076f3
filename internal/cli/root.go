package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio-cli/internal/config"
	"folio-cli/internal/content"
	"folio-cli/internal/tui"
)

type App struct {
	Dir        string
	ConfigPath string
	PrettyJSON bool

	// Path is the initial route the TUI opens at.
	Path string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "folio",
		Short:        "Photography portfolio in the terminal + content CLI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the portfolio
  folio

  # Jump straight into a project, introduced
  folio --path "/projects/morocco?intro=1"

  # Scriptable commands
  folio projects list --pretty
  folio seed export > content.json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("FOLIO_DIR", ""), "Path to the content dir (default: ~/.folio)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("FOLIO_CONFIG", ""), "Path to the config file (default: <dir>/.folio.yml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&app.Path, "path", "/", "Initial route for the TUI (e.g. /projects/<slug>)")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newSlugsCmd(app))
	cmd.AddCommand(newAboutCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(app)
	if err != nil {
		return err
	}
	return tui.Run(cfg, cat, app.Path)
}

func resolveDir(app *App) (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving content dir: %w", err)
	}
	dir := filepath.Join(home, ".folio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating content dir: %w", err)
	}
	app.Dir = dir
	return dir, nil
}

func resolveConfigPath(app *App) (string, error) {
	if app.ConfigPath != "" {
		return app.ConfigPath, nil
	}
	dir, err := resolveDir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".folio.yml"), nil
}

func loadConfig(app *App) (*config.Config, error) {
	path, err := resolveConfigPath(app)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func loadCatalog(app *App) (*content.Catalog, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, err
	}
	s := content.Store{Dir: dir}
	return s.Load(context.Background())
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
