package cell

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags limits which element nodes RenderHTML emits. Elements outside
// the list are dropped and only their text is kept.
var allowedTags = map[string]bool{
	"span": true, "b": true, "i": true, "em": true, "strong": true,
	"code": true, "a": true, "br": true, "div": true, "p": true,
}

// voidTags are allowed elements that never have children.
var voidTags = map[string]bool{"br": true}

// RenderHTML writes c as a <td> element. Text and attribute values are
// escaped by the html renderer; event handler attributes and javascript:
// URLs are removed.
func RenderHTML(w io.Writer, c Cell) error {
	if err := html.Render(w, ToHTMLNode(c)); err != nil {
		return fmt.Errorf("render cell %q: %w", c.Key, err)
	}
	return nil
}

// HTML returns the rendered <td> as a string.
func HTML(c Cell) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ToHTMLNode converts c to a detached <td> node.
func ToHTMLNode(c Cell) *html.Node {
	td := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td, Attr: convertAttrs(c.Attrs)}
	for _, n := range c.Content {
		appendNode(td, n)
	}
	return td
}

func appendNode(parent *html.Node, n Node) {
	if n.IsText() {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		return
	}
	tag := strings.ToLower(n.Tag)
	if !allowedTags[tag] {
		for _, ch := range n.Children {
			appendNode(parent, ch)
		}
		return
	}
	el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: convertAttrs(n.Attrs)}
	// Void elements cannot hold children; html.Render rejects them.
	if !voidTags[tag] {
		for _, ch := range n.Children {
			appendNode(el, ch)
		}
	}
	parent.AppendChild(el)
}

func convertAttrs(attrs []Attr) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(strings.TrimSpace(a.Key))
		if key == "" || strings.HasPrefix(key, "on") || strings.ContainsAny(key, " \t\n\"'<>/=") {
			continue
		}
		if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
			continue
		}
		out = append(out, html.Attribute{Key: key, Val: a.Val})
	}
	return out
}
