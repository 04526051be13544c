package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/views"
)

// ExportedFile is one file written by Export.
type ExportedFile struct {
	Path string // slash-separated, relative to the output directory
	Size int
}

// ExportReport summarizes a static export.
type ExportReport struct {
	OutDir   string
	Files    []ExportedFile
	Warnings []string
	Duration time.Duration
}

// Export renders every registered route to <outDir>/<route>/index.html and
// writes the blog asset, avatar, favicon, robots.txt and sitemap.xml next to
// them. Without a contact.action the exported form has nowhere to post.
func (a *App) Export(ctx context.Context, outDir string) (ExportReport, error) {
	start := time.Now()
	rep := ExportReport{OutDir: outDir}
	if err := a.prepare(); err != nil {
		return rep, err
	}

	write := func(rel string, data []byte) error {
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("portfolio: export %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("portfolio: export %s: %w", rel, err)
		}
		rep.Files = append(rep.Files, ExportedFile{Path: rel, Size: len(data)})
		return nil
	}
	warn := func(msg string, fields ...zap.Field) {
		rep.Warnings = append(rep.Warnings, msg)
		a.Logger.Warn(msg, fields...)
	}

	opts := a.siteOptions()
	for _, rt := range a.Registry.Routes() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		b, err := renderBytes(ctx, rt.Page(ctx, opts))
		if err != nil {
			return rep, fmt.Errorf("portfolio: render %s: %w", rt.Path, err)
		}
		if err := write(RouteFile(rt.Path), b); err != nil {
			return rep, err
		}
	}

	notFound, err := renderBytes(ctx, views.NotFoundPage(opts))
	if err != nil {
		return rep, fmt.Errorf("portfolio: render 404 page: %w", err)
	}
	if err := write("404.html", notFound); err != nil {
		return rep, err
	}

	if asset, err := a.assets.Get(); err != nil {
		warn("blog asset not exported", zap.Error(err))
	} else if a.Config.Blog.Mode == BlogModeIframe {
		if err := write("assets/"+asset.FileName(), asset.Content); err != nil {
			return rep, err
		}
	}

	if a.avatar != nil {
		if err := write("photo4.png", a.avatar); err != nil {
			return rep, err
		}
	} else {
		warn("profile photo not exported", zap.String("path", a.Config.Photo))
	}

	favicon, err := fs.ReadFile(EmbeddedAssets, "embedded/favicon.svg")
	if err != nil {
		return rep, err
	}
	if err := write("favicon.svg", favicon); err != nil {
		return rep, err
	}
	if err := write("robots.txt", []byte(a.robotsTxt())); err != nil {
		return rep, err
	}
	sitemap, err := a.sitemapXML()
	if err != nil {
		return rep, err
	}
	if err := write("sitemap.xml", sitemap); err != nil {
		return rep, err
	}

	rep.Duration = time.Since(start)
	a.Logger.Info("export complete",
		zap.String("out", outDir),
		zap.Int("files", len(rep.Files)),
		zap.Duration("took", rep.Duration))
	return rep, nil
}
