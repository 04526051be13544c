package markup

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Style maps CSS property names (kebab-case) to values.
type Style map[string]string

// Merge returns a new Style with o applied over s. Neither input is modified.
func (s Style) Merge(o Style) Style {
	if len(s) == 0 && len(o) == 0 {
		return nil
	}
	out := make(Style, len(s)+len(o))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Declarations renders the style as a CSS declaration block body with
// properties in lexical order, e.g. "color:#fff;margin:0".
func (s Style) Declarations() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+s[k])
	}
	return strings.Join(parts, ";")
}

// Breakpoints is a responsive style map: each key is a minimum screen width
// label such as "768px", each value the overrides applied from that width up.
// "0px" applies at every width and is emitted before the wider breakpoints.
type Breakpoints map[string]Style

// Merge returns new Breakpoints with o applied over b, label by label.
func (b Breakpoints) Merge(o Breakpoints) Breakpoints {
	if len(b) == 0 && len(o) == 0 {
		return nil
	}
	out := make(Breakpoints, len(b)+len(o))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range o {
		out[k] = out[k].Merge(v)
	}
	return out
}

// Responsive builds Breakpoints that vary a single property, the way a
// per-property breakpoint map is written: Responsive("margin-bottom",
// map[string]string{"0px": "1rem", "768px": "0"}).
func Responsive(property string, values map[string]string) Breakpoints {
	out := make(Breakpoints, len(values))
	for label, v := range values {
		out[label] = Style{property: v}
	}
	return out
}

// Widths builds Breakpoints that set property to the breakpoint width itself
// at each of the given labels. Widths("max-width", "640px", "768px") caps a
// container at the current breakpoint.
func Widths(property string, labels ...string) Breakpoints {
	out := make(Breakpoints, len(labels))
	for _, l := range labels {
		out[l] = Style{property: l}
	}
	return out
}

// Labels returns the breakpoint labels ordered by ascending pixel width.
// Labels that do not parse as pixel widths sort last, lexically.
func (b Breakpoints) Labels() []string {
	labels := make([]string, 0, len(b))
	for l := range b {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		wi, oki := ParseWidth(labels[i])
		wj, okj := ParseWidth(labels[j])
		switch {
		case oki && okj:
			return wi < wj
		case oki != okj:
			return oki
		default:
			return labels[i] < labels[j]
		}
	})
	return labels
}

// ParseWidth parses a pixel breakpoint label such as "768px".
func ParseWidth(label string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(label), "px"))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ClassName returns the generated class for n's styles, or "" when n has
// none. The name is a hash of the declarations so identical styles share a
// class and repeated renders produce identical output.
func (n Node) ClassName() string {
	if !n.styled() {
		return ""
	}
	var b strings.Builder
	b.WriteString("base{" + n.Style.Declarations() + "}")
	b.WriteString("hover{" + n.Hover.Declarations() + "}")
	b.WriteString("focus{" + n.Focus.Declarations() + "}")
	for _, l := range n.Media.Labels() {
		b.WriteString("@" + l + "{" + n.Media[l].Declarations() + "}")
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "x" + hex.EncodeToString(sum[:4])
}

// rules returns the CSS rules for n's generated class.
func (n Node) rules() []string {
	class := n.ClassName()
	if class == "" {
		return nil
	}
	sel := "." + class
	var out []string
	if len(n.Style) > 0 {
		out = append(out, sel+"{"+n.Style.Declarations()+"}")
	}
	if len(n.Hover) > 0 {
		out = append(out, sel+":hover{"+n.Hover.Declarations()+"}")
	}
	if len(n.Focus) > 0 {
		out = append(out, sel+":focus{"+n.Focus.Declarations()+"}")
	}
	for _, l := range n.Media.Labels() {
		decls := n.Media[l].Declarations()
		if decls == "" {
			continue
		}
		if w, ok := ParseWidth(l); ok {
			out = append(out, "@media (min-width: "+strconv.Itoa(w)+"px){"+sel+"{"+decls+"}}")
			continue
		}
		out = append(out, "@media "+l+"{"+sel+"{"+decls+"}}")
	}
	return out
}
