package portfolio

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pkeshava/portfolio/markup"
	"github.com/pkeshava/portfolio/views"
)

func registryPage(title string) PageFunc {
	return func(context.Context, views.PageOptions) markup.Document {
		return markup.Document{Title: title, Body: markup.El("main")}
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	for _, p := range []string{"/", "/projects", "/blog/"} {
		if err := r.Register(p, "", registryPage(p)); err != nil {
			t.Fatalf("Register(%q): %v", p, err)
		}
	}

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	rt, ok := r.Lookup("/blog")
	if !ok {
		t.Fatal("Lookup(/blog) not found")
	}
	if rt.Path != "/blog" || rt.Title != "Blog" {
		t.Errorf("route = %+v", rt)
	}
	if _, ok := r.Lookup("/projects/"); !ok {
		t.Error("Lookup should ignore a trailing slash")
	}
	if _, ok := r.Lookup("/missing"); ok {
		t.Error("Lookup(/missing) should fail")
	}

	var paths []string
	for _, rt := range r.Routes() {
		paths = append(paths, rt.Path)
	}
	if got := paths[0] + " " + paths[1] + " " + paths[2]; got != "/ /projects /blog" {
		t.Errorf("Routes order = %q", got)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("/blog", "", registryPage("a")); err != nil {
		t.Fatal(err)
	}
	err := r.Register("/blog/", "", registryPage("b"))
	if !errors.Is(err, ErrDuplicateRoute) {
		t.Fatalf("err = %v, want ErrDuplicateRoute", err)
	}
}

func TestRegisterAfterFreeze(t *testing.T) {
	r := NewRegistry()
	r.Freeze()
	err := r.Register("/late", "", registryPage("late"))
	if !errors.Is(err, ErrRegistryFrozen) {
		t.Fatalf("err = %v, want ErrRegistryFrozen", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("/ok", "", nil); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("nil page: err = %v", err)
	}
	for _, p := range []string{"", "blog", "/a?b", "/a#b", "/../etc", "/posts/:id", "/files/*", "/a//b"} {
		if err := r.Register(p, "", registryPage(p)); !errors.Is(err, ErrInvalidRoute) {
			t.Errorf("Register(%q): err = %v, want ErrInvalidRoute", p, err)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after invalid registrations", r.Len())
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":          "/",
		"/":         "/",
		"blog":      "/blog",
		"/blog/":    "/blog",
		"/a/b//":    "/a/b",
		"/projects": "/projects",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleForPath(t *testing.T) {
	tests := map[string]string{
		"/":                 "Home",
		"/blog":             "Blog",
		"/side-projects":    "Side Projects",
		"/notes/deep_dives": "Deep Dives",
	}
	for in, want := range tests {
		if got := TitleForPath(in); got != want {
			t.Errorf("TitleForPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegistryConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("/", "", registryPage("home"))
	r.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := r.Lookup("/"); !ok {
				t.Error("Lookup(/) failed")
			}
			_ = r.Routes()
		}()
	}
	wg.Wait()
}
