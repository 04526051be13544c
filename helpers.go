package portfolio

import (
	"net/url"
	"path"
	"strings"
)

// AbsoluteURL joins a route path onto the site's base URL.
func AbsoluteURL(base, routePath string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" {
		return strings.TrimRight(base, "/") + NormalizePath(routePath)
	}
	u.Path = path.Join("/", u.Path, routePath)
	if routePath == "/" && u.Path != "/" {
		u.Path += "/"
	}
	return u.String()
}

// siteHost is the host part of base, or "" if it has none.
func siteHost(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// RouteFile is the export path for a route: "/" is "index.html" and
// "/projects" is "projects/index.html".
func RouteFile(routePath string) string {
	p := strings.Trim(NormalizePath(routePath), "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}
