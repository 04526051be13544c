package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	chromeMac   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	edgeWin     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"
	firefoxLin  = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	safariIPad  = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	chromeDroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	googlebot   = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua                  string
		browser, os, device string
	}{
		{chromeMac, "Chrome", "macOS", "Desktop"},
		{edgeWin, "Edge", "Windows", "Desktop"},
		{firefoxLin, "Firefox", "Linux", "Desktop"},
		{safariIPad, "Safari", "iOS", "Tablet"},
		{chromeDroid, "Chrome", "Android", "Mobile"},
		{"curl/8.4.0", "Other", "Other", "Desktop"},
	}
	for _, tt := range tests {
		b, o, d := ParseUserAgent(tt.ua)
		assert.Equal(t, tt.browser, b, tt.ua)
		assert.Equal(t, tt.os, o, tt.ua)
		assert.Equal(t, tt.device, d, tt.ua)
	}
}

func TestBotName(t *testing.T) {
	assert.Equal(t, "Googlebot", BotName(googlebot))
	assert.Equal(t, "Other Bot", BotName("SomeNewBot/1.0"))
	assert.Equal(t, "No User-Agent", BotName(""))
	assert.Empty(t, BotName(chromeMac))
	assert.Empty(t, BotName(safariIPad))
}

func TestCleanReferrer(t *testing.T) {
	tests := []struct {
		ref, self, want string
	}{
		{"", "example.com", "Direct"},
		{"https://example.com/projects", "example.com", "Direct"},
		{"https://www.example.com/", "example.com", "Direct"},
		{"https://www.google.com/search?q=x", "example.com", "Google"},
		{"https://scholar.google.com/citations", "example.com", "Google Scholar"},
		{"https://github.com/someone", "example.com", "GitHub"},
		{"https://news.ycombinator.com/item?id=1", "example.com", "news.ycombinator.com"},
		{"not a url", "example.com", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanReferrer(tt.ref, tt.self), tt.ref)
	}
}

func TestVisitorIDRotatesDaily(t *testing.T) {
	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	a := visitorID("salt", "1.2.3.4", chromeMac, day)

	assert.Len(t, a, 16)
	assert.Equal(t, a, visitorID("salt", "1.2.3.4", chromeMac, day.Add(3*time.Hour)))
	assert.NotEqual(t, a, visitorID("salt", "1.2.3.4", chromeMac, day.AddDate(0, 0, 1)))
	assert.NotEqual(t, a, visitorID("other", "1.2.3.4", chromeMac, day))
	assert.NotEqual(t, a, visitorID("salt", "1.2.3.5", chromeMac, day))
}
