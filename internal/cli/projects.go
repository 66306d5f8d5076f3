package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"folio-cli/internal/model"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect portfolio projects",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects in editorial order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			type row struct {
				Number   string `json:"number"`
				Slug     string `json:"slug"`
				Title    string `json:"title"`
				Meta     string `json:"meta,omitempty"`
				Category string `json:"category,omitempty"`
				Media    int    `json:"media"`
			}
			rows := make([]row, 0, cat.Len())
			for _, p := range cat.ListProjects() {
				rows = append(rows, row{
					Number:   p.FormattedNumber(),
					Slug:     p.Slug,
					Title:    p.Title,
					Meta:     p.Meta(),
					Category: string(p.Category),
					Media:    len(p.Media),
				})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"projects": rows}})
		},
	}
}

func newProjectsShowCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one project, description rendered as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := cat.GetProject(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("project %q: %w", args[0], err))
			}

			if raw {
				return writeOut(cmd, app, map[string]any{"data": p})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", p.FormattedNumber(), p.Title)
			if meta := p.Meta(); meta != "" {
				fmt.Fprintln(out, meta)
			}
			fmt.Fprintln(out)
			if p.Description != "" {
				fmt.Fprintln(out, renderDescription(p.Description))
			}
			fmt.Fprintf(out, "media: %d\n", len(p.Media))
			for i, item := range p.Media {
				fmt.Fprintf(out, "  %03d %s\n", i+1, describeMedia(item))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Emit the raw project record as JSON")

	return cmd
}

// renderDescription is best-effort: on renderer failure the plain markdown
// is still useful output.
func renderDescription(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("auto"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func describeMedia(item model.MediaItem) string {
	if item.Kind == model.MediaKindVideo {
		return fmt.Sprintf("video %s %s", item.Provider, item.VideoID)
	}
	d := "image"
	if item.Width > 0 && item.Height > 0 {
		d = fmt.Sprintf("image %dx%d", item.Width, item.Height)
	}
	if item.Alt != "" {
		d += " " + strings.TrimSpace(item.Alt)
	}
	return d
}
