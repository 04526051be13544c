package portfolio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/views"
)

// DefaultConfigName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultConfigName = "portfolio.yaml"

// Config holds all configuration for a portfolio site.
type Config struct {
	AppName      string          `mapstructure:"app_name" yaml:"app_name"`
	URL          string          `mapstructure:"url" yaml:"url"`       // canonical URL (default "http://localhost:3000")
	Addr         string          `mapstructure:"addr" yaml:"addr"`     // listen address (default ":3000")
	Env          string          `mapstructure:"env" yaml:"env"`       // "dev" or "prod"
	DBURL        string          `mapstructure:"db_url" yaml:"db_url"` // sqlite:///path
	Stylesheets  []string        `mapstructure:"stylesheets" yaml:"stylesheets"`
	StaticDir    string          `mapstructure:"static_dir" yaml:"static_dir"`
	Photo        string          `mapstructure:"photo" yaml:"photo"` // source image for /photo4.png
	CookieSecure bool            `mapstructure:"cookie_secure" yaml:"cookie_secure"`
	Blog         BlogConfig      `mapstructure:"blog" yaml:"blog"`
	Contact      ContactConfig   `mapstructure:"contact" yaml:"contact"`
	Admin        AdminConfig     `mapstructure:"admin" yaml:"admin"`
	Analytics    AnalyticsConfig `mapstructure:"analytics" yaml:"analytics"`
}

// BlogConfig locates the pre-generated visualization shown on /blog.
type BlogConfig struct {
	Asset    string        `mapstructure:"asset" yaml:"asset"`
	Mode     string        `mapstructure:"mode" yaml:"mode"`       // "iframe" or "inline"
	Caption  string        `mapstructure:"caption" yaml:"caption"` // optional markdown with frontmatter
	CacheTTL time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// MarshalYAML writes the cache TTL as a duration string such as "5m0s".
func (b BlogConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Asset    string `yaml:"asset"`
		Mode     string `yaml:"mode"`
		Caption  string `yaml:"caption"`
		CacheTTL string `yaml:"cache_ttl"`
	}{b.Asset, b.Mode, b.Caption, b.CacheTTL.String()}, nil
}

// ContactConfig controls where the contact form posts.
type ContactConfig struct {
	// Action is an external form relay. Empty means the built-in /contact
	// endpoint.
	Action    string `mapstructure:"action" yaml:"action"`
	RateLimit int    `mapstructure:"rate_limit" yaml:"rate_limit"` // submissions per IP per minute
}

// AdminConfig enables the message inbox when both fields are set.
type AdminConfig struct {
	Password      string `mapstructure:"password" yaml:"password"`
	SessionSecret string `mapstructure:"session_secret" yaml:"session_secret"`
}

// AnalyticsConfig controls server-side page view counting.
type AnalyticsConfig struct {
	Disabled      bool `mapstructure:"disabled" yaml:"disabled"`
	RetentionDays int  `mapstructure:"retention_days" yaml:"retention_days"`
}

// Blog asset embedding modes.
const (
	BlogModeIframe = "iframe"
	BlogModeInline = "inline"
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.AppName == "" {
		c.AppName = "pouyan_reflex"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Env == "" {
		c.Env = "dev"
	}
	if c.DBURL == "" {
		c.DBURL = "sqlite:///reflex.db"
	}
	if c.Stylesheets == nil {
		c.Stylesheets = append([]string(nil), views.DefaultStylesheets...)
	}
	if c.StaticDir == "" {
		c.StaticDir = "assets"
	}
	if c.Photo == "" {
		c.Photo = "assets/photo4.png"
	}
	if c.Blog.Asset == "" {
		c.Blog.Asset = "assets/bubble_plot.html"
	}
	if c.Blog.Mode == "" {
		c.Blog.Mode = BlogModeIframe
	}
	if c.Blog.CacheTTL == 0 {
		c.Blog.CacheTTL = 5 * time.Minute
	}
	if c.Contact.RateLimit == 0 {
		c.Contact.RateLimit = 5
	}
	if c.Analytics.RetentionDays == 0 {
		c.Analytics.RetentionDays = 90
	}
}

// Validate reports configuration that cannot be served.
func (c Config) Validate() error {
	switch c.Blog.Mode {
	case BlogModeIframe, BlogModeInline:
	default:
		return fmt.Errorf("portfolio: blog.mode must be %q or %q, got %q", BlogModeIframe, BlogModeInline, c.Blog.Mode)
	}
	if _, err := c.DatabasePath(); err != nil {
		return err
	}
	if (c.Admin.Password == "") != (c.Admin.SessionSecret == "") {
		return errors.New("portfolio: admin.password and admin.session_secret must be set together")
	}
	return nil
}

// IsDev reports whether the site runs in development mode.
func (c Config) IsDev() bool {
	return c.Env != "prod"
}

// AdminEnabled reports whether the inbox routes are mounted.
func (c Config) AdminEnabled() bool {
	return c.Admin.Password != "" && c.Admin.SessionSecret != ""
}

// DatabasePath converts db_url into a filesystem path for SQLite.
// "sqlite:///reflex.db" is the relative file reflex.db; four slashes give an
// absolute path.
func (c Config) DatabasePath() (string, error) {
	const scheme = "sqlite://"
	if !strings.HasPrefix(c.DBURL, scheme) {
		return "", fmt.Errorf("portfolio: unsupported db_url %q", c.DBURL)
	}
	p := strings.TrimPrefix(c.DBURL, scheme)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", fmt.Errorf("portfolio: db_url %q has no path", c.DBURL)
	}
	return p, nil
}

// LoadConfig reads configuration from path (or ./portfolio.yaml when path is
// empty) and from PORTFOLIO_* environment variables. A missing default file
// is not an error. Relative file paths are resolved against the directory
// of the config file in use.
func LoadConfig(path string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("app_name", def.AppName)
	v.SetDefault("url", def.URL)
	v.SetDefault("addr", def.Addr)
	v.SetDefault("env", def.Env)
	v.SetDefault("db_url", def.DBURL)
	v.SetDefault("stylesheets", def.Stylesheets)
	v.SetDefault("static_dir", def.StaticDir)
	v.SetDefault("photo", def.Photo)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("blog.asset", def.Blog.Asset)
	v.SetDefault("blog.mode", def.Blog.Mode)
	v.SetDefault("blog.caption", "")
	v.SetDefault("blog.cache_ttl", def.Blog.CacheTTL)
	v.SetDefault("contact.action", "")
	v.SetDefault("contact.rate_limit", def.Contact.RateLimit)
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.session_secret", "")
	v.SetDefault("analytics.disabled", false)
	v.SetDefault("analytics.retention_days", def.Analytics.RetentionDays)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultConfigName, ".yaml"))
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("portfolio: read config: %w", err)
		}
		logger.Debug("no config file found, using defaults and environment")
	} else {
		logger.Info("using config file", zap.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("portfolio: decode config: %w", err)
	}
	cfg.setDefaults()
	if used := v.ConfigFileUsed(); used != "" {
		cfg.resolvePaths(filepath.Dir(used))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolvePaths makes relative file paths relative to dir instead of the
// working directory.
func (c *Config) resolvePaths(dir string) {
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.StaticDir = rel(c.StaticDir)
	c.Photo = rel(c.Photo)
	c.Blog.Asset = rel(c.Blog.Asset)
	c.Blog.Caption = rel(c.Blog.Caption)
	if p, err := c.DatabasePath(); err == nil {
		c.DBURL = "sqlite:///" + rel(p)
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the default logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithSubmitter replaces the default SQLite-backed contact submission handler.
func WithSubmitter(s Submitter) Option {
	return func(a *App) {
		a.submitter = s
	}
}

// WithRoutes registers additional pages after the built-in ones.
func WithRoutes(fn func(*Registry) error) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithWatch toggles the development file watcher. It defaults to on in dev.
func WithWatch(on bool) Option {
	return func(a *App) {
		a.watch = &on
	}
}
