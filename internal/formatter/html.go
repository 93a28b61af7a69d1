package formatter

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/cell"
)

// RenderHTML writes the plan as a <table> element. Header cells carry
// th-name with the column key; auto-created columns also carry
// gm-create="true". All text goes through the html renderer's escaping.
func RenderHTML(w io.Writer, plan grid.Plan, opts Options) error {
	table := element(atom.Table, nil)

	thead := element(atom.Thead, nil)
	headRow := element(atom.Tr, nil)
	for _, h := range plan.Headers {
		attrs := []html.Attribute{{Key: "th-name", Val: h.Key}}
		if h.Auto {
			attrs = append(attrs, html.Attribute{Key: "gm-create", Val: "true"})
		}
		attrs = append(attrs, html.Attribute{Key: "style", Val: headerStyleAttr(h)})
		th := element(atom.Th, attrs)
		th.AppendChild(&html.Node{Type: html.TextNode, Data: h.Text})
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody, nil)
	if len(plan.Rows) == 0 && opts.EmptyText != "" {
		tr := element(atom.Tr, []html.Attribute{{Key: "empty-template", Val: "true"}})
		td := element(atom.Td, []html.Attribute{{Key: "colspan", Val: strconv.Itoa(len(plan.Headers))}})
		td.AppendChild(&html.Node{Type: html.TextNode, Data: opts.EmptyText})
		tr.AppendChild(td)
		tbody.AppendChild(tr)
	}
	for _, r := range plan.Rows {
		attrs := []html.Attribute{{Key: "data-depth", Val: strconv.Itoa(r.Depth)}}
		tr := element(atom.Tr, attrs)
		for i, c := range r.Cells {
			td := cell.ToHTMLNode(c)
			if i < len(plan.Headers) && plan.Headers[i].Align != "" {
				td.Attr = append(td.Attr, html.Attribute{Key: "align", Val: string(plan.Headers[i].Align)})
			}
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	if err := html.Render(w, table); err != nil {
		return fmt.Errorf("render html table: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if opts.Footer != "" {
		p := element(atom.P, []html.Attribute{{Key: "class", Val: "footer"}})
		p.AppendChild(&html.Node{Type: html.TextNode, Data: opts.Footer})
		if err := html.Render(w, p); err != nil {
			return fmt.Errorf("render html footer: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func element(a atom.Atom, attrs []html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

func headerStyleAttr(h grid.Header) string {
	style := "text-align:" + string(h.Align)
	if h.Align == "" {
		style = "text-align:left"
	}
	if !h.Width.IsAuto() {
		style = "width:" + h.Width.String() + ";" + style
	}
	return style
}
