package portfolio

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/views"
)

const assetHashLen = 12

// assetCSP lets the framed visualization run its own scripts and load its
// plotting library, while the rest of the site keeps the stricter policy.
const assetCSP = "default-src 'self'; script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.plot.ly; style-src 'self' 'unsafe-inline'; img-src 'self' data: blob:; font-src 'self' data:; frame-ancestors 'self'"

var captionMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

var inlinePolicy = bluemonday.UGCPolicy()

// LoadBlogAsset reads the visualization at path. A caption that fails to
// load is logged and left out; it never fails the asset.
func LoadBlogAsset(path, captionPath string, logger *zap.Logger) (BlogAsset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return BlogAsset{}, fmt.Errorf("portfolio: read blog asset: %w", err)
	}
	sum := sha256.Sum256(content)
	asset := BlogAsset{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Content:  content,
		Hash:     hex.EncodeToString(sum[:])[:assetHashLen],
		LoadedAt: time.Now(),
	}
	if captionPath != "" {
		caption, err := LoadCaption(captionPath)
		if err != nil {
			logger.Warn("blog caption skipped", zap.String("path", captionPath), zap.Error(err))
		} else {
			asset.Caption = caption
		}
	}
	return asset, nil
}

// LoadCaption reads a markdown file with optional YAML frontmatter
// (title, date) and renders its body to HTML.
func LoadCaption(path string) (Caption, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Caption{}, err
	}
	var c Caption
	body, err := frontmatter.Parse(bytes.NewReader(raw), &c)
	if err != nil {
		return Caption{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	var buf bytes.Buffer
	if err := captionMarkdown.Convert(body, &buf); err != nil {
		return Caption{}, fmt.Errorf("render markdown: %w", err)
	}
	c.HTML = buf.String()
	return c, nil
}

// SanitizeInline strips scripts, event handlers and other active content so
// the asset can be written into the page itself.
func SanitizeInline(content []byte) string {
	return string(inlinePolicy.SanitizeBytes(content))
}

func (a *App) loadBlogAsset() (BlogAsset, error) {
	asset, err := LoadBlogAsset(a.Config.Blog.Asset, a.Config.Blog.Caption, a.Logger)
	if err != nil {
		return BlogAsset{}, err
	}
	if a.Config.Blog.Mode == BlogModeInline {
		asset.Inline = SanitizeInline(asset.Content)
	}
	a.Logger.Debug("blog asset loaded",
		zap.String("name", asset.Name),
		zap.String("hash", asset.Hash),
		zap.Int("bytes", len(asset.Content)))
	return asset, nil
}

// blogEmbed describes how the blog page shows the asset. A missing asset
// yields the fallback block.
func (a *App) blogEmbed(_ context.Context) views.BlogEmbed {
	asset, err := a.assets.Get()
	if err != nil {
		a.Logger.Warn("blog asset unavailable", zap.String("path", a.Config.Blog.Asset), zap.Error(err))
		return views.BlogEmbed{Mode: views.EmbedMissing}
	}
	embed := views.BlogEmbed{
		Title:       asset.Caption.Title,
		Date:        asset.Caption.Date,
		CaptionHTML: asset.Caption.HTML,
	}
	if a.Config.Blog.Mode == BlogModeInline {
		embed.Mode = views.EmbedInline
		embed.HTML = asset.Inline
	} else {
		embed.Mode = views.EmbedFrame
		embed.Src = asset.URL()
	}
	return embed
}

func (a *App) handleAsset(c echo.Context) error {
	asset, err := a.assets.Get()
	if err != nil || c.Param("file") != asset.FileName() {
		return echo.ErrNotFound
	}
	c.Response().Header().Set(echo.HeaderContentSecurityPolicy, assetCSP)
	c.Response().Header().Set(echo.HeaderXFrameOptions, "SAMEORIGIN")
	return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, asset.Content)
}
