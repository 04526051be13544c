package portfolio

import (
	"bytes"
	"encoding/xml"
	"strings"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapXML lists every registered page. The blog entry carries the date
// of its caption when one is set.
func (a *App) sitemapXML() ([]byte, error) {
	var urls []sitemapURL
	for _, rt := range a.Registry.Routes() {
		u := sitemapURL{Loc: AbsoluteURL(a.Config.URL, rt.Path)}
		if rt.Path == "/blog" {
			if asset, err := a.assets.Get(); err == nil {
				u.LastMod = asset.Caption.Date
			}
		}
		urls = append(urls, u)
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (a *App) robotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("\nSitemap: " + AbsoluteURL(a.Config.URL, "/sitemap.xml") + "\n")
	return b.String()
}
