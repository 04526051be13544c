package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the site owner.
// json.Marshal escapes <, > and &, so the result is safe inside a script tag.
func PersonJsonLD(p Profile, siteURL string) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Person",
		"name":        p.Name,
		"description": p.Bio,
	}
	if siteURL != "" {
		data["url"] = buildURL(siteURL)
		if p.Photo != "" {
			data["image"] = strings.TrimSuffix(buildURL(siteURL), "/") + p.Photo
		}
	}
	if len(p.SameAs) > 0 {
		data["sameAs"] = p.SameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
