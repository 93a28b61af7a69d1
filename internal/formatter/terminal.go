package formatter

import (
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/term"
)

const (
	sepWidth    = 2
	minColWidth = 3
	// charWidthPx converts pixel widths to terminal columns.
	charWidthPx = 8
)

// RenderTerminal draws the plan as a lipgloss styled table: header,
// separator line, one line per row, then the footer.
func RenderTerminal(plan grid.Plan, opts Options) string {
	if len(plan.Headers) == 0 {
		return ""
	}

	totalWidth := opts.TotalWidth
	if totalWidth <= 0 {
		totalWidth = term.DetectWidth()
	}
	rows := TextRows(plan, opts.indent())
	widths := columnWidths(plan, rows, totalWidth)

	var b strings.Builder
	sep := strings.Repeat(" ", sepWidth)

	headers := make([]string, len(plan.Headers))
	for i, h := range plan.Headers {
		headers[i] = align(h.Text, widths[i], h.Align)
		if !opts.NoColor {
			headers[i] = headerStyle.Render(headers[i])
		}
	}
	b.WriteString(strings.Join(headers, sep) + "\n")

	total := (len(widths) - 1) * sepWidth
	for _, w := range widths {
		total += w
	}
	line := strings.Repeat("─", total)
	if !opts.NoColor {
		line = separatorStyle.Render(line)
	}
	b.WriteString(line + "\n")

	if len(rows) == 0 && opts.EmptyText != "" {
		b.WriteString(align(opts.EmptyText, total, column.AlignCenter) + "\n")
	}
	for _, row := range rows {
		parts := make([]string, len(row))
		for i, val := range row {
			h := plan.Headers[i]
			parts[i] = align(val, widths[i], h.Align)
			if !opts.NoColor {
				if h.Auto {
					parts[i] = orderStyle.Render(parts[i])
				} else {
					parts[i] = valueStyle.Render(parts[i])
				}
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " ") + "\n")
	}
	if opts.Footer != "" {
		b.WriteString(opts.Footer + "\n")
	}
	return b.String()
}

// columnWidths sizes each column to its widest value. Fixed descriptor widths
// act as a floor. When the table is wider than totalWidth, data columns are
// shrunk widest first; auto-created columns keep their width.
func columnWidths(plan grid.Plan, rows [][]string, totalWidth int) []int {
	n := len(plan.Headers)
	widths := make([]int, n)
	for i, h := range plan.Headers {
		widths[i] = lipgloss.Width(h.Text)
		if fixed := h.Width.Chars(totalWidth, charWidthPx); fixed > widths[i] && h.Auto {
			widths[i] = fixed
		}
	}
	for _, row := range rows {
		for i, val := range row {
			if i < n {
				if w := lipgloss.Width(val); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	usable := totalWidth - (n-1)*sepWidth
	needed := 0
	for _, w := range widths {
		needed += w
	}
	if needed <= usable || usable <= 0 {
		return widths
	}

	shrinkable := make([]int, 0, n)
	for i, h := range plan.Headers {
		if !h.Auto {
			shrinkable = append(shrinkable, i)
		}
	}
	excess := needed - usable
	for excess > 0 {
		sort.SliceStable(shrinkable, func(a, b int) bool {
			return widths[shrinkable[a]] > widths[shrinkable[b]]
		})
		if len(shrinkable) == 0 || widths[shrinkable[0]] <= minColWidth {
			break
		}
		widths[shrinkable[0]]--
		excess--
	}
	return widths
}
