package markup

import "strings"

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every node in the tree rooted at n, n included, that matches.
func (n Node) Find(match func(Node) bool) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent returns the concatenated, unescaped text of n's text nodes.
func (n Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c Node) bool {
		if c.Kind == KindText {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// ByTag matches element nodes with the given tag.
func ByTag(tag string) func(Node) bool {
	return func(n Node) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByID matches element nodes whose id attribute equals id.
func ByID(id string) func(Node) bool {
	return func(n Node) bool {
		v, ok := n.Lookup("id")
		return n.Kind == KindElement && ok && v == id
	}
}

// ByAttr matches element nodes carrying attribute key with value.
func ByAttr(key, value string) func(Node) bool {
	return func(n Node) bool {
		v, ok := n.Lookup(key)
		return n.Kind == KindElement && ok && v == value
	}
}
