package portfolio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "pouyan_reflex", c.AppName)
	assert.Equal(t, "sqlite:///reflex.db", c.DBURL)
	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, BlogModeIframe, c.Blog.Mode)
	assert.Equal(t, 5*time.Minute, c.Blog.CacheTTL)
	assert.Equal(t, 90, c.Analytics.RetentionDays)
	assert.True(t, c.IsDev())
	assert.False(t, c.AdminEnabled())
	require.NoError(t, c.Validate())
}

func TestDatabasePath(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"sqlite:///reflex.db", "reflex.db", false},
		{"sqlite:///data/reflex.db", "data/reflex.db", false},
		{"sqlite:////var/lib/site/reflex.db", "/var/lib/site/reflex.db", false},
		{"postgres://localhost/db", "", true},
		{"sqlite:///", "", true},
	}
	for _, tt := range tests {
		got, err := Config{DBURL: tt.url}.DatabasePath()
		if tt.wantErr {
			assert.Error(t, err, tt.url)
			continue
		}
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.Blog.Mode = "popup"
	assert.ErrorContains(t, c.Validate(), "blog.mode")

	c = DefaultConfig()
	c.Admin.Password = "secret"
	assert.ErrorContains(t, c.Validate(), "admin.password")

	c.Admin.SessionSecret = "0123456789abcdef"
	assert.NoError(t, c.Validate())
	assert.True(t, c.AdminEnabled())
}

func TestLoadConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
url: https://example.com
env: prod
blog:
  mode: inline
  cache_ttl: 10m
contact:
  rate_limit: 2
`), 0o644))

	c, err := LoadConfig(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", c.URL)
	assert.False(t, c.IsDev())
	assert.Equal(t, BlogModeInline, c.Blog.Mode)
	assert.Equal(t, 10*time.Minute, c.Blog.CacheTTL)
	assert.Equal(t, 2, c.Contact.RateLimit)
	assert.Equal(t, filepath.Join(filepath.Dir(p), "assets", "bubble_plot.html"), c.Blog.Asset)
	assert.Equal(t, "pouyan_reflex", c.AppName)
}

func TestLoadConfigResolvesPathsAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
db_url: sqlite:///data/site.db
static_dir: public
photo: img/me.png
blog:
  asset: plots/plot.html
  caption: plots/plot.md
`), 0o644))

	c, err := LoadConfig(p, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "public"), c.StaticDir)
	assert.Equal(t, filepath.Join(dir, "img", "me.png"), c.Photo)
	assert.Equal(t, filepath.Join(dir, "plots", "plot.html"), c.Blog.Asset)
	assert.Equal(t, filepath.Join(dir, "plots", "plot.md"), c.Blog.Caption)
	dbPath, err := c.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "site.db"), dbPath)
}

func TestLoadConfigKeepsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "plot.html")
	p := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte("blog:\n  asset: "+abs+"\n"), 0o644))

	c, err := LoadConfig(p, nil)
	require.NoError(t, err)
	assert.Equal(t, abs, c.Blog.Asset)
	assert.Empty(t, c.Blog.Caption)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(p, []byte("addr: \":4000\"\n"), 0o644))
	t.Setenv("PORTFOLIO_ADDR", ":5000")
	t.Setenv("PORTFOLIO_BLOG_MODE", "inline")

	c, err := LoadConfig(p, nil)
	require.NoError(t, err)
	assert.Equal(t, ":5000", c.Addr)
	assert.Equal(t, BlogModeInline, c.Blog.Mode)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("blog:\n  mode: popup\n"), 0o644))
	_, err = LoadConfig(p, nil)
	assert.ErrorContains(t, err, "blog.mode")
}
