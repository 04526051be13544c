package portfolio

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm(name, email, message string) url.Values {
	return url.Values{"name": {name}, "email": {email}, "message": {message}}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name, email, message string
		field                string // empty when valid
	}{
		{"Ada", "ada@example.com", "Hello", ""},
		{"  Ada  ", " ada@example.com ", " Hello ", ""},
		{"", "ada@example.com", "Hello", "name"},
		{"   ", "ada@example.com", "Hello", "name"},
		{strings.Repeat("a", maxNameLen+1), "ada@example.com", "Hello", "name"},
		{"Ada", "", "Hello", "email"},
		{"Ada", "not-an-email", "Hello", "email"},
		{"Ada", "Ada <ada@example.com>", "Hello", "email"},
		{"Ada", "ada@example.com", "", "message"},
		{"Ada", "ada@example.com", strings.Repeat("x", maxMessageLen+1), "message"},
	}
	for _, tt := range tests {
		msg, err := ValidateContact(tt.name, tt.email, tt.message)
		if tt.field == "" {
			require.NoError(t, err, tt)
			assert.Equal(t, "Ada", msg.Name)
			assert.Equal(t, "ada@example.com", msg.Email)
			assert.Equal(t, "Hello", msg.Message)
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, tt)
		assert.Equal(t, tt.field, verr.Field)
		assert.NotEmpty(t, verr.Message)
	}
}

func TestContactSubmissionStored(t *testing.T) {
	a := newTestApp(t, nil)

	rec := postForm(a, "/contact", contactForm("Ada", "ada@example.com", "Hello there"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?sent=1#contact", rec.Header().Get("Location"))

	msgs, err := a.Store.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.Equal(t, "Hello there", msgs[0].Message)
	assert.Equal(t, "192.0.2.1", msgs[0].RemoteIP)

	assert.Contains(t, body(t, get(a, "/?sent=1")), "Your message was sent")
}

func TestContactFormCarriesCSRFToken(t *testing.T) {
	a := newTestApp(t, nil)
	b := body(t, get(a, "/"))
	assert.Contains(t, b, `action="/contact"`)
	assert.Contains(t, b, `name="_csrf"`)
}

func TestContactRelayAction(t *testing.T) {
	a := newTestApp(t, func(c *Config) { c.Contact.Action = "https://forms.example.com/f/123" })
	b := body(t, get(a, "/"))
	assert.Contains(t, b, `action="https://forms.example.com/f/123"`)
	assert.NotContains(t, b, `name="_csrf"`)
}

func TestContactRequiresCSRF(t *testing.T) {
	a := newTestApp(t, nil)
	form := contactForm("Ada", "ada@example.com", "Hello")
	req := newFormRequest("/contact", form)
	rec := serve(a, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	n, err := a.Store.CountMessages(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactInvalidInputRerendersForm(t *testing.T) {
	a := newTestApp(t, nil)

	rec := postForm(a, "/contact", contactForm("Ada", "nope", "Hello"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	b := body(t, rec)
	assert.Contains(t, b, "Please enter a valid email address.")
	assert.Contains(t, b, `value="Ada"`)
	assert.Contains(t, b, "Hello</textarea>")

	n, err := a.Store.CountMessages(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactRateLimited(t *testing.T) {
	a := newTestApp(t, func(c *Config) { c.Contact.RateLimit = 1 })

	first := postForm(a, "/contact", contactForm("Ada", "ada@example.com", "One"))
	require.Equal(t, http.StatusSeeOther, first.Code)

	second := postForm(a, "/contact", contactForm("Ada", "ada@example.com", "Two"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, body(t, second), "Too many messages")
}

func TestContactCustomSubmitter(t *testing.T) {
	var mu sync.Mutex
	var got []ContactMessage
	a := newTestApp(t, nil, WithSubmitter(SubmitterFunc(func(_ context.Context, m ContactMessage) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, m)
		return nil
	})))
	assert.Nil(t, a.Store)

	rec := postForm(a, "/contact", contactForm("Ada", "ada@example.com", "Hi"))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "ada@example.com", got[0].Email)
	assert.Equal(t, "192.0.2.1", got[0].RemoteIP)
}

func TestContactSubmitFailure(t *testing.T) {
	a := newTestApp(t, nil, WithSubmitter(SubmitterFunc(func(context.Context, ContactMessage) error {
		return errors.New("relay down")
	})))

	rec := postForm(a, "/contact", contactForm("Ada", "ada@example.com", "Hi"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body(t, rec), `id="server-error"`)
}
