package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildersDoNotMutateReceiver(t *testing.T) {
	base := El("a", Text("About")).Attr("href", "#about").Styled(Style{"color": "#4B5563"})
	before := base

	_ = base.Attr("href", "/elsewhere").Styled(Style{"color": "red"}).OnHover(Style{"color": "blue"})

	if diff := cmp.Diff(before, base); diff != "" {
		t.Fatalf("receiver changed (-before +after):\n%s", diff)
	}
}

func TestAttrReplacesExistingKey(t *testing.T) {
	n := El("input").Attr("type", "text").Attr("type", "email")
	if len(n.Attrs) != 1 {
		t.Fatalf("Attrs = %v, want one entry", n.Attrs)
	}
	if v, _ := n.Lookup("type"); v != "email" {
		t.Errorf("type = %q, want %q", v, "email")
	}
}

func TestRenderEscapesText(t *testing.T) {
	got := El("p", Text(`Tom & "Jerry" <3`)).String()
	want := `<p>Tom &amp; &#34;Jerry&#34; &lt;3</p>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderVoidAndBooleanAttributes(t *testing.T) {
	got := El("input").Attr("type", "email").Attr("name", "email").Bool("required").String()
	want := `<input type="email" name="email" required>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderNeutralisesScriptURLs(t *testing.T) {
	got := El("a", Text("x")).Attr("href", "javascript:alert(1)").String()
	if strings.Contains(got, "javascript:") {
		t.Errorf("unsafe href rendered: %q", got)
	}
	ok := El("a", Text("x")).Attr("href", "https://github.com/pkeshava").String()
	if !strings.Contains(ok, `href="https://github.com/pkeshava"`) {
		t.Errorf("safe href altered: %q", ok)
	}
}

func TestRawIsNotEscaped(t *testing.T) {
	got := El("div", Raw("<b>hi</b>")).String()
	if got != "<div><b>hi</b></div>" {
		t.Errorf("String() = %q", got)
	}
}

func TestClassNameIsDeterministic(t *testing.T) {
	a := El("div").Styled(Style{"color": "#fff", "margin": "0"})
	b := El("span").Styled(Style{"margin": "0"}).Styled(Style{"color": "#fff"})
	if a.ClassName() == "" {
		t.Fatal("expected a generated class")
	}
	if a.ClassName() != b.ClassName() {
		t.Errorf("equal styles produced %q and %q", a.ClassName(), b.ClassName())
	}
	c := El("div").Styled(Style{"color": "#000"})
	if a.ClassName() == c.ClassName() {
		t.Error("different styles share a class")
	}
	if El("div").ClassName() != "" {
		t.Error("unstyled node has a class")
	}
}

func TestUserClassKeptBeforeGeneratedClass(t *testing.T) {
	n := El("i").Class("fa-2x fa-github fab").Styled(Style{"color": "#1F2937"})
	got := n.String()
	want := `<i class="fa-2x fa-github fab ` + n.ClassName() + `"></i>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBreakpointLabelsOrderedByWidth(t *testing.T) {
	b := Widths("max-width", "1536px", "640px", "1024px", "768px", "1280px")
	want := []string{"640px", "768px", "1024px", "1280px", "1536px"}
	if diff := cmp.Diff(want, b.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestResponsiveMergesPerLabel(t *testing.T) {
	b := Responsive("margin-bottom", map[string]string{"0px": "1rem", "768px": "0"}).
		Merge(Responsive("margin-right", map[string]string{"768px": "2rem"}))
	want := Breakpoints{
		"0px":   Style{"margin-bottom": "1rem"},
		"768px": Style{"margin-bottom": "0", "margin-right": "2rem"},
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestRulesEmitBaseHoverFocusThenMedia(t *testing.T) {
	n := El("a").
		Styled(Style{"color": "#4B5563"}).
		OnHover(Style{"color": "#1F2937"}).
		OnFocus(Style{"outline-style": "none"}).
		At(Responsive("display", map[string]string{"768px": "block", "0px": "none"}))
	sel := "." + n.ClassName()
	want := []string{
		sel + "{color:#4B5563}",
		sel + ":hover{color:#1F2937}",
		sel + ":focus{outline-style:none}",
		"@media (min-width: 0px){" + sel + "{display:none}}",
		"@media (min-width: 768px){" + sel + "{display:block}}",
	}
	if diff := cmp.Diff(want, Collect(n).Rules()); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectDeduplicatesSharedStyles(t *testing.T) {
	p := func(s string) Node { return El("p", Text(s)).Styled(Style{"color": "#4B5563"}) }
	sheet := Collect(El("div", p("a"), p("b"), p("c")))
	if got := len(sheet.Rules()); got != 1 {
		t.Errorf("len(Rules()) = %d, want 1", got)
	}
}

func TestDocumentRender(t *testing.T) {
	doc := Document{
		Title: "Home",
		Head:  []Node{El("link").Attr("href", "https://cdn.example/site.css").Attr("rel", "stylesheet")},
		Body:  El("main", Text("hello")).Styled(Style{"width": "100%"}),
	}
	got := doc.String()
	for _, want := range []string{
		"<!doctype html>",
		`<html lang="en">`,
		"<title>Home</title>",
		`<link href="https://cdn.example/site.css" rel="stylesheet">`,
		"<style>." + doc.Body.ClassName() + "{width:100%}</style>",
		`<body><main class="` + doc.Body.ClassName() + `">hello</main></body>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q:\n%s", want, got)
		}
	}
	if doc.String() != got {
		t.Error("rendering the same document twice differs")
	}
}

func TestQueries(t *testing.T) {
	tree := El("nav",
		El("a", Text("About")).Attr("href", "#about"),
		El("a", Text("Blog")).Attr("href", "/blog").ID("blog-link"),
		Fragment(Text(" "), El("span", Text("x"))),
	)
	if got := len(tree.Find(ByTag("a"))); got != 2 {
		t.Errorf("Find(a) = %d, want 2", got)
	}
	if got := tree.Find(ByID("blog-link")); len(got) != 1 || got[0].TextContent() != "Blog" {
		t.Errorf("Find(ByID) = %v", got)
	}
	if got := len(tree.Find(ByAttr("href", "#about"))); got != 1 {
		t.Errorf("Find(ByAttr) = %d, want 1", got)
	}
	if got := tree.TextContent(); got != "AboutBlog x" {
		t.Errorf("TextContent() = %q", got)
	}
}
