package cli

import (
	"github.com/spf13/cobra"
)

// newSlugsCmd lists project slugs one per line, for shell completion and
// piping into `projects show`.
func newSlugsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "slugs",
		Short: "List project slugs in editorial order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := cmd.OutOrStdout()
			for _, s := range cat.ListSlugs() {
				if _, err := out.Write([]byte(s + "\n")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
