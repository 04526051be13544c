package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkeshava/portfolio"
)

func newBuildCommand(e *env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `Renders every page to <output>/<route>/index.html and copies the blog
asset, profile photo, favicon, robots.txt and sitemap.xml alongside.
Set contact.action to a form relay if the exported contact form should work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := portfolio.New(e.cfg, portfolio.WithLogger(e.logger), portfolio.WithWatch(false))
			rep, err := app.Export(cmd.Context(), output)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderExportReport(rep))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "dist", "output directory")
	return cmd
}
