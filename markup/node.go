// Package markup models an immutable HTML element tree. Styling is declared
// per node (base, hover, focus and breakpoint overrides) and compiled into a
// page-level stylesheet when a Document is rendered.
//
// Nodes are plain values. Every builder method returns a modified copy and
// never mutates the receiver, so a Node can be shared between pages and
// concurrent renders.
package markup

// Kind represents the type of a Node.
type Kind uint8

const (
	// KindElement is a tagged element with attributes and children.
	KindElement Kind = iota
	// KindText is an escaped text node.
	KindText
	// KindFragment groups children without a wrapping element.
	KindFragment
	// KindRaw is trusted HTML written without escaping.
	KindRaw
)

// Attr is a single HTML attribute. Boolean attributes render as a bare key.
type Attr struct {
	Key   string
	Value string
	Bool  bool
}

// Node is an immutable markup node.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Style    Style
	Hover    Style
	Focus    Style
	Media    Breakpoints
	Children []Node
	Text     string
}

// El creates an element node.
func El(tag string, children ...Node) Node {
	return Node{Kind: KindElement, Tag: tag, Children: copyNodes(children)}
}

// Text creates a text node. The content is escaped when rendered.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Raw creates a node whose content is written verbatim. Only use it for
// HTML that has already been sanitized or is produced by this module.
func Raw(html string) Node {
	return Node{Kind: KindRaw, Text: html}
}

// Fragment groups nodes without a wrapper element.
func Fragment(children ...Node) Node {
	return Node{Kind: KindFragment, Children: copyNodes(children)}
}

// Attr returns a copy of n with key set to value, replacing any previous value.
func (n Node) Attr(key, value string) Node {
	return n.setAttr(Attr{Key: key, Value: value})
}

// Bool returns a copy of n with the boolean attribute key set.
func (n Node) Bool(key string) Node {
	return n.setAttr(Attr{Key: key, Bool: true})
}

// ID sets the id attribute.
func (n Node) ID(id string) Node {
	return n.Attr("id", id)
}

// Class sets the class attribute. Generated style classes are appended to it
// at render time.
func (n Node) Class(class string) Node {
	return n.Attr("class", class)
}

// Styled returns a copy of n with s merged over its base style.
func (n Node) Styled(s Style) Node {
	n.Style = n.Style.Merge(s)
	return n
}

// OnHover returns a copy of n with s merged over its :hover style.
func (n Node) OnHover(s Style) Node {
	n.Hover = n.Hover.Merge(s)
	return n
}

// OnFocus returns a copy of n with s merged over its :focus style.
func (n Node) OnFocus(s Style) Node {
	n.Focus = n.Focus.Merge(s)
	return n
}

// At returns a copy of n with the breakpoint overrides in b merged over its
// existing responsive styles.
func (n Node) At(b Breakpoints) Node {
	n.Media = n.Media.Merge(b)
	return n
}

// Append returns a copy of n with children added after the existing ones.
func (n Node) Append(children ...Node) Node {
	kids := make([]Node, 0, len(n.Children)+len(children))
	kids = append(kids, n.Children...)
	kids = append(kids, children...)
	n.Children = kids
	return n
}

// Lookup returns the value of attribute key.
func (n Node) Lookup(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (n Node) setAttr(attr Attr) Node {
	attrs := make([]Attr, 0, len(n.Attrs)+1)
	replaced := false
	for _, a := range n.Attrs {
		if a.Key == attr.Key {
			attrs = append(attrs, attr)
			replaced = true
			continue
		}
		attrs = append(attrs, a)
	}
	if !replaced {
		attrs = append(attrs, attr)
	}
	n.Attrs = attrs
	return n
}

func (n Node) styled() bool {
	return len(n.Style) > 0 || len(n.Hover) > 0 || len(n.Focus) > 0 || len(n.Media) > 0
}

func copyNodes(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}
