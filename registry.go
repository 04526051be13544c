package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkeshava/portfolio/markup"
	"github.com/pkeshava/portfolio/views"
)

var (
	// ErrDuplicateRoute is returned when a path is registered twice.
	ErrDuplicateRoute = errors.New("portfolio: route already registered")
	// ErrRegistryFrozen is returned when registering after Freeze.
	ErrRegistryFrozen = errors.New("portfolio: registry is frozen")
	// ErrInvalidRoute is returned for malformed paths or a nil page.
	ErrInvalidRoute = errors.New("portfolio: invalid route")
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("portfolio: not found")
)

// PageFunc assembles a page for one request or export.
type PageFunc func(ctx context.Context, opts views.PageOptions) markup.Document

// Route binds a path to a page assembler.
type Route struct {
	Path  string
	Title string
	Page  PageFunc
}

// Registry maps paths to pages. It is filled at startup, frozen, and then
// only read.
type Registry struct {
	mu     sync.RWMutex
	routes []Route
	index  map[string]int
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a page at path. An empty title is derived from the path.
func (r *Registry) Register(path, title string, page PageFunc) error {
	if page == nil {
		return fmt.Errorf("%w: %s: nil page", ErrInvalidRoute, path)
	}
	if err := ValidateRoutePath(path); err != nil {
		return err
	}
	path = NormalizePath(path)
	if title == "" {
		title = TitleForPath(path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: %s", ErrRegistryFrozen, path)
	}
	if _, ok := r.index[path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
	}
	r.index[path] = len(r.routes)
	r.routes = append(r.routes, Route{Path: path, Title: title, Page: page})
	return nil
}

// Lookup finds the route for path. Trailing slashes are ignored.
func (r *Registry) Lookup(path string) (Route, bool) {
	path = NormalizePath(path)
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[path]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Routes returns the registered routes in registration order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// NormalizePath ensures a leading slash and drops a trailing one.
func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// ValidateRoutePath rejects paths that cannot be served as a static page.
func ValidateRoutePath(path string) error {
	switch {
	case path == "":
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidRoute)
	case !strings.HasPrefix(path, "/"):
		return fmt.Errorf("%w: %s: path must start with /", ErrInvalidRoute, path)
	case strings.Contains(path, "?"):
		return fmt.Errorf("%w: %s: path cannot contain a query string", ErrInvalidRoute, path)
	case strings.Contains(path, "#"):
		return fmt.Errorf("%w: %s: path cannot contain a fragment", ErrInvalidRoute, path)
	case strings.Contains(path, ".."):
		return fmt.Errorf("%w: %s: path cannot contain parent directory references", ErrInvalidRoute, path)
	case strings.ContainsAny(path, "*:"):
		return fmt.Errorf("%w: %s: path cannot contain wildcards or parameters", ErrInvalidRoute, path)
	case strings.Contains(path, "//"):
		return fmt.Errorf("%w: %s: path cannot contain empty segments", ErrInvalidRoute, path)
	}
	return nil
}

// TitleForPath derives a display title from the last path segment:
// "/" is "Home", "/side-projects" is "Side Projects".
func TitleForPath(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return "Home"
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(path)
	return cases.Title(language.English).String(words)
}
