package portfolio

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/analytics"
	"github.com/pkeshava/portfolio/views"
)

// siteOptions are the page options shared by every render.
func (a *App) siteOptions() views.PageOptions {
	return views.PageOptions{
		SiteName:    views.Owner.Name,
		SiteURL:     a.Config.URL,
		Stylesheets: a.Config.Stylesheets,
		Contact:     views.ContactForm{Action: a.Config.Contact.Action},
	}
}

// pageOptions adds request state: the CSRF token, the built-in form target
// and the "message sent" flag.
func (a *App) pageOptions(c echo.Context) views.PageOptions {
	opts := a.siteOptions()
	if opts.Contact.Action == "" {
		opts.Contact.Action = "/contact"
		opts.Contact.CSRFToken = CsrfToken(c)
	}
	opts.Contact.Sent = c.QueryParam("sent") == "1"
	return opts
}

func (a *App) handlePage(rt Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := Render(c, rt.Page(c.Request().Context(), a.pageOptions(c))); err != nil {
			return err
		}
		a.trackView(c, rt.Path)
		return nil
	}
}

func (a *App) trackView(c echo.Context, path string) {
	if a.tracker == nil {
		return
	}
	req := c.Request()
	err := a.tracker.Record(req.Context(), analytics.Hit{
		Path:      path,
		IP:        c.RealIP(),
		UserAgent: req.UserAgent(),
		Referrer:  req.Referer(),
	})
	if err != nil {
		a.Logger.Warn("page view not recorded", zap.String("path", path), zap.Error(err))
	}
}

func (a *App) handleFavicon(c echo.Context) error {
	b, err := fs.ReadFile(EmbeddedAssets, "embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", b)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, a.robotsTxt())
}

func (a *App) handleSitemap(c echo.Context) error {
	b, err := a.sitemapXML()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", b)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFoundPage(a.pageOptions(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		_ = RenderStatus(c, code, views.ServerErrorPage(a.siteOptions()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
