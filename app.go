// Package portfolio serves and exports a single-author portfolio site built
// from the markup and views packages. It provides the route registry, an
// Echo server with a contact form inbox, the blog visualization pipeline
// and a static site exporter.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/analytics"
	"github.com/pkeshava/portfolio/markup"
	"github.com/pkeshava/portfolio/views"
)

// App is the central portfolio application. It wires together the registry,
// store, caches, handlers and middleware.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Logger   *zap.Logger
	Registry *Registry
	Store    *Store

	assets         *AssetCache
	avatar         []byte
	submitter      Submitter
	contactLimiter *RateLimiter
	loginLimiter   *RateLimiter
	watcher        *Watcher
	tracker        *analytics.Tracker
	watch          *bool
	customRoutes   []func(*Registry) error

	prepared    bool
	initialized bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	return a
}

// prepare builds what rendering needs: the frozen registry, the blog asset
// cache and the processed avatar. It touches no database, so Export can run
// without one.
func (a *App) prepare() error {
	if a.prepared {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	a.assets = NewAssetCache(a.Config.Blog.CacheTTL, a.loadBlogAsset)
	if err := a.registerPages(); err != nil {
		return err
	}
	for _, fn := range a.customRoutes {
		if err := fn(a.Registry); err != nil {
			return fmt.Errorf("portfolio: custom routes: %w", err)
		}
	}
	a.Registry.Freeze()
	a.avatar = a.loadAvatar()
	a.prepared = true
	return nil
}

func (a *App) registerPages() error {
	pages := []struct {
		path  string
		title string
		page  PageFunc
	}{
		{"/", "Home", func(_ context.Context, o views.PageOptions) markup.Document {
			return views.LandingPage(o)
		}},
		{"/projects", "Projects", func(_ context.Context, o views.PageOptions) markup.Document {
			return views.ProjectsPage(o)
		}},
		{"/blog", "Blog", func(ctx context.Context, o views.PageOptions) markup.Document {
			return views.BlogPage(o, a.blogEmbed(ctx))
		}},
	}
	for _, p := range pages {
		if err := a.Registry.Register(p.path, p.title, p.page); err != nil {
			return err
		}
	}
	return nil
}

// Routes returns the registered pages, preparing the app if needed.
func (a *App) Routes() ([]Route, error) {
	if err := a.prepare(); err != nil {
		return nil, err
	}
	return a.Registry.Routes(), nil
}

// Init opens the store, mounts middleware and routes, and starts the dev
// watcher. Start calls it; tests call it and drive a.Echo directly.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.prepare(); err != nil {
		return err
	}

	if a.submitter == nil || a.Config.AdminEnabled() {
		path, err := a.Config.DatabasePath()
		if err != nil {
			return err
		}
		store, err := NewStore(path)
		if err != nil {
			return fmt.Errorf("portfolio: init store: %w", err)
		}
		a.Store = store
		if a.submitter == nil {
			a.submitter = store
		}
	}
	if a.Store != nil && !a.Config.Analytics.Disabled {
		a.startAnalytics()
	}

	a.contactLimiter = NewRateLimiter(a.Config.Contact.RateLimit, time.Minute)
	if a.Config.AdminEnabled() {
		a.loginLimiter = NewRateLimiter(5, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()

	if a.watchEnabled() {
		a.startWatcher()
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until Shutdown.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("serving",
		zap.String("addr", a.Config.Addr),
		zap.String("url", a.Config.URL),
		zap.String("env", a.Config.Env),
		zap.Int("routes", a.Registry.Len()))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	for _, rt := range a.Registry.Routes() {
		e.GET(rt.Path, a.handlePage(rt))
	}

	e.GET("/assets/:file", a.handleAsset)
	e.GET("/photo4.png", a.handleAvatar)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.Static("/public", a.Config.StaticDir)

	e.POST("/contact", a.handleContact)

	if a.Config.AdminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.GET("/admin/messages/:id/", a.handleMessage)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.DELETE("/admin/messages/:id/", a.handleMessageDelete)
		e.POST("/admin/messages/:id/delete/", a.handleMessageDelete)
	}
}

func (a *App) watchEnabled() bool {
	if a.watch != nil {
		return *a.watch
	}
	return a.Config.IsDev()
}

func (a *App) startWatcher() {
	files := []string{a.Config.Blog.Asset, a.Config.Blog.Caption}
	w, err := Watch(files, defaultDebounce, func() {
		a.assets.Invalidate()
		a.Logger.Info("blog asset changed, cache cleared", zap.String("path", a.Config.Blog.Asset))
	}, a.Logger)
	if err != nil {
		a.Logger.Warn("file watcher disabled", zap.Error(err))
		return
	}
	a.watcher = w
}

// startAnalytics keeps page view counting optional: a failure leaves the
// site serving without it.
func (a *App) startAnalytics() {
	store, err := analytics.NewStore(a.Store.DB())
	if err == nil {
		a.tracker, err = analytics.NewTracker(context.Background(), store, siteHost(a.Config.URL), a.Logger)
	}
	if err != nil {
		a.Logger.Warn("analytics disabled", zap.Error(err))
		return
	}
	a.tracker.StartCleanup(a.Config.Analytics.RetentionDays, 6*time.Hour)
}

// Close releases the watcher, tracker, limiters and store. Call it on shutdown.
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
	}
	if a.tracker != nil {
		a.tracker.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Close()
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}
