package cli

import (
	"github.com/spf13/cobra"
)

func newAboutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the about/contact record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cat.AboutInfo()})
		},
	}
}
