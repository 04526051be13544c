// Package analytics records anonymous page views on the server and
// summarizes them for the inbox. No cookies are set and no client script is
// involved; visitors are identified by a salted hash that rotates daily.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"
)

// View is one recorded page view.
type View struct {
	Path      string
	VisitorID string
	Browser   string
	OS        string
	Device    string
	Referrer  string
	Bot       string // crawler name, empty for people
	Timestamp time.Time
}

// Hit is the request data a view is derived from.
type Hit struct {
	Path      string
	IP        string
	UserAgent string
	Referrer  string
}

// PageStat counts views of one path.
type PageStat struct {
	Path  string
	Views int
}

// DimensionStat counts views sharing one value, such as a browser.
type DimensionStat struct {
	Name  string
	Count int
}

// Summary aggregates views recorded since a point in time.
type Summary struct {
	Since     time.Time
	Views     int
	Visitors  int
	BotViews  int
	TopPages  []PageStat
	Referrers []DimensionStat
	Browsers  []DimensionStat
}

// visitorID hashes ip and ua with the installation salt and the UTC day,
// so the same person counts once per day and cannot be followed across days.
func visitorID(salt, ip, ua string, t time.Time) string {
	h := sha256.New()
	h.Write([]byte(salt + "|" + t.UTC().Format(time.DateOnly) + "|" + ip + "|" + ua))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

type match struct {
	needle string
	name   string
}

// Order matters: Edge and Opera UAs also contain "chrome", Chrome UAs
// contain "safari", Android UAs contain "linux" and iPad UAs contain
// "mobile".
var (
	browsers = []match{
		{"firefox", "Firefox"},
		{"opr", "Opera"},
		{"opera", "Opera"},
		{"edg", "Edge"},
		{"chrome", "Chrome"},
		{"safari", "Safari"},
	}
	systems = []match{
		{"windows", "Windows"},
		{"android", "Android"},
		{"iphone", "iOS"},
		{"ipad", "iOS"},
		{"macintosh", "macOS"},
		{"mac os", "macOS"},
		{"linux", "Linux"},
	}
	devices = []match{
		{"tablet", "Tablet"},
		{"ipad", "Tablet"},
		{"mobile", "Mobile"},
	}
	bots = []match{
		{"googlebot", "Googlebot"},
		{"bingbot", "Bingbot"},
		{"duckduckbot", "DuckDuckBot"},
		{"yandex", "Yandex"},
		{"baidu", "Baidu"},
		{"slurp", "Yahoo Slurp"},
		{"facebookexternalhit", "Facebook"},
		{"twitterbot", "Twitterbot"},
		{"linkedinbot", "LinkedIn"},
		{"ahrefsbot", "Ahrefs"},
		{"semrushbot", "SEMrush"},
		{"mj12bot", "Majestic"},
		{"dotbot", "Moz"},
		{"crawler", "Generic Crawler"},
		{"spider", "Generic Spider"},
		{"scrape", "Scraper"},
		{"bot", "Other Bot"},
	}
)

func lookup(ua string, table []match, fallback string) string {
	for _, m := range table {
		if strings.Contains(ua, m.needle) {
			return m.name
		}
	}
	return fallback
}

// ParseUserAgent extracts browser, OS and device class from a User-Agent.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)
	return lookup(ua, browsers, "Other"), lookup(ua, systems, "Other"), lookup(ua, devices, "Desktop")
}

// BotName names the crawler behind ua, or returns "" for a browser.
// An empty User-Agent is treated as a script.
func BotName(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return "No User-Agent"
	}
	return lookup(strings.ToLower(ua), bots, "")
}

var searchEngines = []match{
	{"google.", "Google"},
	{"bing.", "Bing"},
	{"duckduckgo.", "DuckDuckGo"},
	{"yahoo.", "Yahoo"},
	{"github.", "GitHub"},
	{"linkedin.", "LinkedIn"},
}

// CleanReferrer reduces a Referer header to a source name: "Direct" when
// empty or from selfHost, a known site name, or the bare host.
func CleanReferrer(ref, selfHost string) string {
	if ref == "" {
		return "Direct"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "Other"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if selfHost != "" && host == strings.TrimPrefix(strings.ToLower(selfHost), "www.") {
		return "Direct"
	}
	// Scholar before Google.
	if strings.HasPrefix(host, "scholar.google.") {
		return "Google Scholar"
	}
	return lookup(host, searchEngines, host)
}
