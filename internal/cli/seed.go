package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio-cli/internal/content"
)

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import and export portfolio content",
	}
	cmd.AddCommand(newSeedImportCmd(app))
	cmd.AddCommand(newSeedExportCmd(app))
	return cmd
}

func newSeedImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored content with a seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("reading seed: %w", err))
			}
			var seed content.Seed
			if err := json.Unmarshal(data, &seed); err != nil {
				return writeErr(cmd, fmt.Errorf("parsing seed %s: %w", args[0], err))
			}

			dir, err := resolveDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := content.Store{Dir: dir}
			if err := s.Import(cmd.Context(), &seed); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"imported": len(seed.Projects)},
			})
		},
	}
}

func newSeedExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the stored content as a seed file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := content.Store{Dir: dir}
			cat, err := s.Load(context.Background())
			if err != nil {
				return writeErr(cmd, err)
			}

			seed := content.Seed{
				Projects: cat.ListProjects(),
				About:    cat.AboutInfo(),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(seed)
		},
	}
}
