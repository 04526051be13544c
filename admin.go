package portfolio

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.LoginPage(a.siteOptions(), CsrfToken(c), false))
	}
	return a.renderInbox(c)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.Admin.Password)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("failed inbox login", zap.String("ip", ip))
	return RenderStatus(c, http.StatusUnauthorized, views.LoginPage(a.siteOptions(), CsrfToken(c), true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleMessageDelete serves both DELETE and the form-friendly POST variant.
func (a *App) handleMessageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if err := a.Store.DeleteMessage(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	a.Logger.Info("message deleted", zap.String("id", id))
	if c.Request().Method == http.MethodDelete {
		return a.renderInbox(c)
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleMessage(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	m, err := a.Store.GetMessage(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return Render(c, views.MessagePage(a.siteOptions(), CsrfToken(c), inboxMessage(m)))
}

// inboxLimit caps how many messages the inbox page lists.
const inboxLimit = 50

func (a *App) renderInbox(c echo.Context) error {
	ctx := c.Request().Context()
	msgs, err := a.Store.ListMessages(ctx, inboxLimit)
	if err != nil {
		return err
	}
	total, err := a.Store.CountMessages(ctx)
	if err != nil {
		return err
	}
	rows := make([]views.InboxMessage, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, inboxMessage(m))
	}
	return Render(c, views.InboxPage(a.siteOptions(), CsrfToken(c), views.Inbox{
		Messages: rows,
		Total:    total,
		Traffic:  a.traffic(c),
	}))
}

func inboxMessage(m ContactMessage) views.InboxMessage {
	return views.InboxMessage{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Message:  m.Message,
		RemoteIP: m.RemoteIP,
		Received: humanize.Time(m.CreatedAt),
	}
}

// trafficDays is the window summarized on the inbox page.
const trafficDays = 30

func (a *App) traffic(c echo.Context) *views.TrafficSummary {
	if a.tracker == nil {
		return nil
	}
	sum, err := a.tracker.Summary(c.Request().Context(), trafficDays)
	if err != nil {
		a.Logger.Warn("traffic summary failed", zap.Error(err))
		return nil
	}
	t := &views.TrafficSummary{
		Days:     trafficDays,
		Views:    sum.Views,
		Visitors: sum.Visitors,
		BotViews: sum.BotViews,
	}
	for _, p := range sum.TopPages {
		t.Pages = append(t.Pages, views.TrafficRow{Label: p.Path, Count: p.Views})
	}
	for _, r := range sum.Referrers {
		t.Referrers = append(t.Referrers, views.TrafficRow{Label: r.Name, Count: r.Count})
	}
	for _, b := range sum.Browsers {
		t.Browsers = append(t.Browsers, views.TrafficRow{Label: b.Name, Count: b.Count})
	}
	return t
}
