package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pkeshava/portfolio/views"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
)

// Submitter accepts contact form submissions. The default is the SQLite
// Store; a relay or mailer can be plugged in with WithSubmitter.
type Submitter interface {
	Submit(ctx context.Context, m ContactMessage) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, m ContactMessage) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, m ContactMessage) error {
	return f(ctx, m)
}

// ValidationError describes a contact form field the visitor must fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateContact trims and checks the submitted fields.
func ValidateContact(name, email, message string) (ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	switch {
	case name == "":
		return ContactMessage{}, &ValidationError{Field: "name", Message: "Please enter your name."}
	case utf8.RuneCountInString(name) > maxNameLen:
		return ContactMessage{}, &ValidationError{Field: "name", Message: "Your name is too long."}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ContactMessage{}, &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	switch {
	case message == "":
		return ContactMessage{}, &ValidationError{Field: "message", Message: "Please enter a message."}
	case utf8.RuneCountInString(message) > maxMessageLen:
		return ContactMessage{}, &ValidationError{Field: "message", Message: fmt.Sprintf("Please keep your message under %d characters.", maxMessageLen)}
	}
	return ContactMessage{Name: name, Email: addr.Address, Message: message}, nil
}

func (a *App) handleContact(c echo.Context) error {
	form := views.ContactForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}
	ip := c.RealIP()
	if !a.contactLimiter.Allow(ip) {
		a.Logger.Warn("contact rate limit hit", zap.String("ip", ip))
		form.Error = "Too many messages. Please try again in a minute."
		return a.renderContactForm(c, http.StatusTooManyRequests, form)
	}

	msg, err := ValidateContact(form.Name, form.Email, form.Message)
	var verr *ValidationError
	if errors.As(err, &verr) {
		form.Error = verr.Message
		return a.renderContactForm(c, http.StatusBadRequest, form)
	}
	msg.RemoteIP = ip

	if err := a.submitter.Submit(c.Request().Context(), msg); err != nil {
		return fmt.Errorf("portfolio: submit contact message: %w", err)
	}
	a.Logger.Info("contact message received", zap.String("ip", ip))
	return c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
}

// renderContactForm re-renders the landing page with the visitor's input
// and an error above the form.
func (a *App) renderContactForm(c echo.Context, code int, form views.ContactForm) error {
	opts := a.pageOptions(c)
	form.Action = opts.Contact.Action
	form.CSRFToken = opts.Contact.CSRFToken
	opts.Contact = form
	return RenderStatus(c, code, views.LandingPage(opts))
}
