// Package cell defines typed cell content produced by column renderers.
//
// Renderers never build markup strings. They return a Cell made of text and
// element nodes, and a separate step (RenderHTML, or the terminal
// formatters) decides how to escape and draw it.
package cell

import "strings"

// Attr is a single element or cell attribute. An empty Val renders as a
// bare attribute name.
type Attr struct {
	Key string `json:"key" yaml:"key"`
	Val string `json:"val,omitempty" yaml:"val,omitempty"`
}

// Node is either a text node (Tag == "") or an element.
type Node struct {
	Tag      string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attrs    []Attr `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsText reports whether n is a text node.
func (n Node) IsText() bool { return n.Tag == "" }

// TextNode returns a text node.
func TextNode(s string) Node { return Node{Text: s} }

// Element returns an element node.
func Element(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Cell is the content of one table cell for one column.
type Cell struct {
	// Key is the column key the cell belongs to.
	Key     string `json:"key" yaml:"key"`
	Attrs   []Attr `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Content []Node `json:"content,omitempty" yaml:"content,omitempty"`
}

// Empty returns a cell with no content.
func Empty(key string, attrs ...Attr) Cell {
	return Cell{Key: key, Attrs: attrs}
}

// Text returns a cell holding a single text node. An empty string yields an
// empty cell.
func Text(key, s string, attrs ...Attr) Cell {
	c := Cell{Key: key, Attrs: attrs}
	if s != "" {
		c.Content = []Node{TextNode(s)}
	}
	return c
}

// IsEmpty reports whether the cell has no visible text.
func (c Cell) IsEmpty() bool {
	return c.PlainText() == ""
}

// PlainText concatenates all text in the cell, depth first.
func (c Cell) PlainText() string {
	var b strings.Builder
	for _, n := range c.Content {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, ch := range n.Children {
		writeText(b, ch)
	}
}

// Attr returns the value of the named attribute and whether it is present.
func (c Cell) Attr(key string) (string, bool) {
	for _, a := range c.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
