package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkeshava/portfolio"
)

func newRoutesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := portfolio.New(e.cfg, portfolio.WithLogger(e.logger), portfolio.WithWatch(false))
			routes, err := app.Routes()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRoutes(routes, e.cfg.URL))
			return nil
		},
	}
}
