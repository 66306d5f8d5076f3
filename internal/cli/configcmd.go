package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio-cli/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the choreography configuration",
	}
	cmd.AddCommand(newConfigInitCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to overwrite)", path))
			}
			if err := config.Default().Save(path); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path}})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (file + env overrides)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
}
