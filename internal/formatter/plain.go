package formatter

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
)

// RenderPlain draws the plan as an ASCII bordered table.
func RenderPlain(w io.Writer, plan grid.Plan, opts Options) error {
	if len(plan.Headers) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	headers := make([]string, len(plan.Headers))
	aligns := make([]int, len(plan.Headers))
	for i, h := range plan.Headers {
		headers[i] = h.Text
		aligns[i] = tablewriterAlign(h.Align)
	}
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(aligns)

	rows := TextRows(plan, opts.indent())
	if len(rows) == 0 && opts.EmptyText != "" {
		empty := make([]string, len(headers))
		empty[0] = opts.EmptyText
		rows = [][]string{empty}
	}
	table.AppendBulk(rows)
	table.Render()

	if opts.Footer != "" {
		_, err := io.WriteString(w, opts.Footer+"\n")
		return err
	}
	return nil
}

func tablewriterAlign(a column.Align) int {
	switch a {
	case column.AlignCenter:
		return tablewriter.ALIGN_CENTER
	case column.AlignRight:
		return tablewriter.ALIGN_RIGHT
	default:
		return tablewriter.ALIGN_LEFT
	}
}
