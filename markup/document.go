package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Stylesheet is the deduplicated set of CSS rules generated for a tree.
type Stylesheet struct {
	rules []string
	seen  map[string]struct{}
}

// Collect walks the given trees in document order and gathers the rules for
// every styled node. Identical styles are emitted once.
func Collect(nodes ...Node) *Stylesheet {
	s := &Stylesheet{seen: make(map[string]struct{})}
	for _, n := range nodes {
		n.Walk(func(c Node) bool {
			s.add(c)
			return true
		})
	}
	return s
}

func (s *Stylesheet) add(n Node) {
	class := n.ClassName()
	if class == "" {
		return
	}
	if _, ok := s.seen[class]; ok {
		return
	}
	s.seen[class] = struct{}{}
	s.rules = append(s.rules, n.rules()...)
}

// Rules returns the collected CSS rules in emission order.
func (s *Stylesheet) Rules() []string {
	out := make([]string, len(s.rules))
	copy(out, s.rules)
	return out
}

// String returns the stylesheet as CSS, one rule per line.
func (s *Stylesheet) String() string {
	return strings.Join(s.rules, "\n")
}

// Document is a complete HTML page.
type Document struct {
	Lang  string
	Title string
	// Head holds extra head nodes such as stylesheet links and meta tags.
	Head []Node
	Body Node
}

var _ templ.Component = Document{}

// Render writes the page, including a <style> block with the rules
// collected from the body.
func (d Document) Render(ctx context.Context, w io.Writer) error {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}
	r := &renderer{w: w}
	r.write("<!doctype html>\n")
	r.write(`<html lang="` + templ.EscapeString(lang) + `"><head>`)
	r.write(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	if d.Title != "" {
		r.write("<title>" + templ.EscapeString(d.Title) + "</title>")
	}
	for _, h := range d.Head {
		r.node(h)
	}
	if css := Collect(append(append([]Node{}, d.Head...), d.Body)...).String(); css != "" {
		// Style values come from source literals; keep them from closing the element.
		r.write("<style>" + strings.ReplaceAll(css, "</", `<\/`) + "</style>")
	}
	r.write("</head><body>")
	r.node(d.Body)
	r.write("</body></html>\n")
	return r.err
}

// String renders the document to a string, ignoring write errors.
func (d Document) String() string {
	var b strings.Builder
	_ = d.Render(context.Background(), &b)
	return b.String()
}
