// Package formatter draws a grid.Plan in one of several output formats.
package formatter

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/logger"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats in help order.
func Formats() []Format {
	return []Format{FormatTable, FormatPlain, FormatHTML, FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, formatList())
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}

// Options configures rendering.
type Options struct {
	Format  Format
	NoColor bool
	// TotalWidth is the available width for the terminal table. 0 uses the
	// terminal width.
	TotalWidth int
	// EmptyText is drawn when the plan has no rows.
	EmptyText string
	// Footer is an optional line drawn under text tables.
	Footer string
	// Indent prefixes the first data cell of nested rows once per level.
	// Empty means two spaces.
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// Render writes plan to w.
func Render(ctx context.Context, w io.Writer, plan grid.Plan, opts Options) error {
	lgr := logger.FromContext(ctx)
	lgr.V(1).Info("rendering plan", logger.FormatKey, string(opts.Format), logger.RowsKey, len(plan.Rows))

	switch opts.Format {
	case FormatTable, "":
		_, err := io.WriteString(w, RenderTerminal(plan, opts))
		return err
	case FormatPlain:
		return RenderPlain(w, plan, opts)
	case FormatHTML:
		return RenderHTML(w, plan, opts)
	case FormatJSON:
		return RenderJSON(w, plan)
	case FormatYAML:
		return RenderYAML(w, plan)
	case FormatCSV:
		return RenderCSV(w, plan)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

var (
	defaultHeaderFG   = lipgloss.Color("12")
	defaultHeaderBG   = lipgloss.Color("236")
	defaultOrderColor = lipgloss.Color("14")
	defaultValueColor = lipgloss.Color("248")
	defaultSeparator  = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	orderStyle     lipgloss.Style
	valueStyle     lipgloss.Style
	separatorStyle lipgloss.Style
)

// TableColors controls the colors of the terminal table. Nil fields fall
// back to the defaults.
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	OrderColor     color.Color
	ValueColor     color.Color
	SeparatorColor color.Color
}

func applyTableTheme(tc TableColors) {
	pick := func(c, def color.Color) color.Color {
		if c == nil {
			return def
		}
		return c
	}
	headerStyle = lipgloss.NewStyle().Bold(true).
		Foreground(pick(tc.HeaderFG, defaultHeaderFG)).
		Background(pick(tc.HeaderBG, defaultHeaderBG))
	orderStyle = lipgloss.NewStyle().Foreground(pick(tc.OrderColor, defaultOrderColor))
	valueStyle = lipgloss.NewStyle().Foreground(pick(tc.ValueColor, defaultValueColor))
	separatorStyle = lipgloss.NewStyle().Foreground(pick(tc.SeparatorColor, defaultSeparator))
}

// SetTableTheme overrides the terminal table styles.
func SetTableTheme(tc TableColors) {
	applyTableTheme(tc)
}

//nolint:gochecknoinits // default theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}

// truncate shortens s to maxLen display columns, ending in "..." when there
// is room for it. maxLen <= 0 disables truncation.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// align fits s into width display columns, padding per a.
func align(s string, width int, a column.Align) string {
	s = truncate(s, width)
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case column.AlignRight:
		return strings.Repeat(" ", gap) + s
	case column.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// TextRows flattens the plan to strings, indenting the first data column of
// nested rows.
func TextRows(plan grid.Plan, indent string) [][]string {
	first := firstDataColumn(plan)
	rows := make([][]string, len(plan.Rows))
	for i, r := range plan.Rows {
		row := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			row[j] = c.PlainText()
			if j == first && r.Depth > 0 {
				row[j] = strings.Repeat(indent, r.Depth) + row[j]
			}
		}
		rows[i] = row
	}
	return rows
}

// firstDataColumn returns the index of the first header that is not
// auto-created, or -1.
func firstDataColumn(plan grid.Plan) int {
	for i, h := range plan.Headers {
		if !h.Auto {
			return i
		}
	}
	return -1
}

// Pad fits s into width display columns using the given alignment,
// truncating with an ellipsis when it does not fit.
func Pad(s string, width int, a column.Align) string {
	return align(s, width, a)
}
