package markup

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// urlAttributes are sanitized with templ.URL before being written.
var urlAttributes = map[string]bool{
	"href":   true,
	"src":    true,
	"action": true,
}

var _ templ.Component = Node{}

// Render writes n as HTML. Generated style classes are referenced but no
// stylesheet is written; use Document for complete pages.
func (n Node) Render(ctx context.Context, w io.Writer) error {
	r := &renderer{w: w}
	r.node(n)
	return r.err
}

// String renders n to a string, ignoring write errors.
func (n Node) String() string {
	var buf bytes.Buffer
	_ = n.Render(context.Background(), &buf)
	return buf.String()
}

type renderer struct {
	w   io.Writer
	err error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) node(n Node) {
	if r.err != nil {
		return
	}
	switch n.Kind {
	case KindText:
		r.write(templ.EscapeString(n.Text))
	case KindRaw:
		r.write(n.Text)
	case KindFragment:
		for _, c := range n.Children {
			r.node(c)
		}
	case KindElement:
		r.element(n)
	}
}

func (r *renderer) element(n Node) {
	r.write("<" + n.Tag)

	class, _ := n.Lookup("class")
	if generated := n.ClassName(); generated != "" {
		class = strings.TrimSpace(class + " " + generated)
	}
	for _, a := range n.Attrs {
		if a.Key == "class" {
			continue
		}
		r.attr(a)
	}
	if class != "" {
		r.attr(Attr{Key: "class", Value: class})
	}
	r.write(">")

	if voidElements[n.Tag] {
		return
	}
	for _, c := range n.Children {
		r.node(c)
	}
	r.write("</" + n.Tag + ">")
}

func (r *renderer) attr(a Attr) {
	if a.Bool {
		r.write(" " + a.Key)
		return
	}
	v := a.Value
	if urlAttributes[a.Key] {
		v = string(templ.URL(v))
	}
	r.write(" " + a.Key + `="` + templ.EscapeString(v) + `"`)
}
