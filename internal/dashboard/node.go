package dashboard

import (
	"html/template"
	"sort"
	"strings"
)

// Node is a typed HTML node tree produced by the region render functions.
type Node struct {
	Tag      string
	Class    string
	Attrs    map[string]string
	Text     string
	Raw      template.HTML
	Children []Node
}

// El builds an element node.
func El(tag, class string, children ...Node) Node {
	return Node{Tag: tag, Class: class, Children: children}
}

// Text builds an escaped text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Trusted wraps markup that is already safe, such as rendered chart SVG.
func Trusted(markup template.HTML) Node {
	return Node{Raw: markup}
}

// With returns a copy of n carrying the attribute.
func (n Node) With(key, value string) Node {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}

// IsZero reports whether the node renders nothing.
func (n Node) IsZero() bool {
	return n.Tag == "" && n.Text == "" && n.Raw == "" && len(n.Children) == 0
}

// HTML renders the tree with escaping applied to text and attributes.
func (n Node) HTML() template.HTML {
	var b strings.Builder
	n.write(&b)
	return template.HTML(b.String())
}

// TextContent concatenates the text of the tree, like the DOM property.
func (n Node) TextContent() string {
	var b strings.Builder
	n.text(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	if n.Raw != "" {
		b.WriteString(string(n.Raw))
	}
	if n.Tag == "" {
		b.WriteString(template.HTMLEscapeString(n.Text))
		for _, c := range n.Children {
			c.write(b)
		}
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if n.Class != "" {
		writeAttr(b, "class", n.Class)
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeAttr(b, k, n.Attrs[k])
	}
	b.WriteByte('>')
	b.WriteString(template.HTMLEscapeString(n.Text))
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func (n Node) text(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.text(b)
	}
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(template.HTMLEscapeString(value))
	b.WriteByte('"')
}
