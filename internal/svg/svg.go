// Package svg renders scenario previews as static SVG documents. It carries
// a minimal element builder: the node set needed here is small and closed,
// so a plain struct assembled with chained setters is enough.
package svg

import (
	"io"
	"strings"
)

// Node is either an element (Tag set) or character data (Tag empty).
// Attributes keep insertion order so output is deterministic.
type Node struct {
	tag      string
	attrs    []attr
	children []*Node
	text     string
}

type attr struct {
	name, value string
}

// Element returns a new element node.
func Element(tag string) *Node {
	return &Node{tag: tag}
}

// Text returns a character-data node. Content is escaped at render time;
// raw input never reaches the output.
func Text(s string) *Node {
	return &Node{text: s}
}

// Set assigns an attribute and returns the node for chaining. Setting an
// existing name overwrites its value in place.
func (n *Node) Set(name, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return n
		}
	}
	n.attrs = append(n.attrs, attr{name, value})
	return n
}

// Add appends child nodes and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// WriteTo serializes the node tree.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	n.render(&sb)
	written, err := io.WriteString(w, sb.String())
	return int64(written), err
}

func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	if n.tag == "" {
		sb.WriteString(Escape(n.text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(Escape(a.value))
		sb.WriteByte('"')
	}
	if len(n.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.children {
		c.render(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the reserved XML characters in s.
func Escape(s string) string {
	return escaper.Replace(s)
}
