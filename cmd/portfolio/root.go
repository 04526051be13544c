package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio"
)

// env is the state shared by every subcommand once the root command has
// loaded configuration.
type env struct {
	configPath string
	verbose    bool

	cfg    portfolio.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	e := &env{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Serve or export the portfolio site",
		Long: `portfolio renders a single-page portfolio with projects and blog pages.
It can run as an HTTP server with a contact inbox, or export the site
as static files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["config"] == "skip" {
				return nil
			}
			return e.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "config file (default ./"+portfolio.DefaultConfigName+")")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCommand(e))
	root.AddCommand(newBuildCommand(e))
	root.AddCommand(newRoutesCommand(e))
	root.AddCommand(newInitCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// load reads the config, then builds the logger for the configured env.
func (e *env) load() error {
	cfg, err := portfolio.LoadConfig(e.configPath, nil)
	if err != nil {
		return err
	}
	logger, err := portfolio.NewLogger(cfg.Env, e.verbose)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	logger.Debug("config loaded",
		zap.String("env", cfg.Env),
		zap.String("url", cfg.URL),
		zap.String("blog_mode", cfg.Blog.Mode),
		zap.Bool("admin", cfg.AdminEnabled()))
	return nil
}
