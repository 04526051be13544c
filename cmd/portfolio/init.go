package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pkeshava/portfolio"
)

const sampleCaption = `---
title: Bubble plot
date: 2024-01-01
---

Generated offline and embedded as a standalone page.
Replace ` + "`assets/bubble_plot.html`" + ` with your own export.
`

const samplePlot = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Plot</title></head>
<body><p>Replace this file with a generated visualization.</p></body>
</html>
`

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init [dir]",
		Short:       "Write a starter config and assets directory",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"config": "skip"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd.OutOrStdout(), dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func runInit(out io.Writer, dir string, force bool) error {
	cfgPath := filepath.Join(dir, portfolio.DefaultConfigName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := portfolio.DefaultConfig()
	cfg.Blog.Caption = "assets/blog.md"
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, cfg.StaticDir), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "  created %s\n", cfgPath)

	// Existing assets are left alone even with --force.
	samples := []struct {
		path, body string
	}{
		{cfg.Blog.Caption, sampleCaption},
		{cfg.Blog.Asset, samplePlot},
	}
	for _, s := range samples {
		p := filepath.Join(dir, filepath.FromSlash(s.path))
		if _, err := os.Stat(p); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := os.WriteFile(p, []byte(s.body), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(out, "  created %s\n", p)
	}

	fmt.Fprintln(out)
	serve := "portfolio serve"
	if filepath.Clean(dir) != "." {
		serve = "portfolio -c " + cfgPath + " serve"
	}
	fmt.Fprintf(out, "Add your photo at %s, then run '%s'.\n", filepath.Join(dir, filepath.FromSlash(cfg.Photo)), serve)
	return nil
}
