// Package grid assembles column descriptors and row data into a render plan.
//
// It stands in for the table engine: auto-created columns come first, keys
// must be unique, and hierarchical rows are flattened with a depth so that
// renderers can tell top-level rows from nested children.
package grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/oakwood-commons/gridcol/pkg/cell"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/logger"
)

// DefaultTreeKey is the row field holding nested child rows.
const DefaultTreeKey = "children"

var (
	// ErrDuplicateKey is returned when two columns share a key.
	ErrDuplicateKey = errors.New("duplicate column key")
	// ErrEmptyKey is returned for a column without a key.
	ErrEmptyKey = errors.New("column key is empty")
)

// Settings configures a Table. The zero value is usable.
type Settings struct {
	Locale string `json:"locale" yaml:"locale"`
	// TreeKey names the row field holding child rows. Empty means
	// DefaultTreeKey.
	TreeKey string `json:"treeKey" yaml:"treeKey"`
	// OrderOffset is added to every top-level row number, for windows that
	// do not start at the first record.
	OrderOffset int `json:"orderOffset" yaml:"orderOffset"`
	// DisableAutoOrder drops the auto-created order column.
	DisableAutoOrder bool `json:"disableAutoOrder" yaml:"disableAutoOrder"`
}

var _ column.Settings = Settings{}

// Language implements column.Settings.
func (s Settings) Language() string { return s.Locale }

func (s Settings) treeKey() string {
	if s.TreeKey == "" {
		return DefaultTreeKey
	}
	return s.TreeKey
}

// Table is an immutable set of resolved columns.
type Table struct {
	settings Settings
	columns  []column.Descriptor
}

// New resolves providers against settings and combines them with the user
// columns. Auto-created columns are placed first in provider order.
func New(settings Settings, providers []column.Provider, userColumns ...column.Descriptor) (*Table, error) {
	var auto, rest []column.Descriptor
	for _, p := range providers {
		d := p.Descriptor(settings)
		if d.Key == column.OrderKey && settings.DisableAutoOrder {
			continue
		}
		if d.IsAutoCreate {
			auto = append(auto, d)
		} else {
			rest = append(rest, d)
		}
	}
	cols := make([]column.Descriptor, 0, len(auto)+len(rest)+len(userColumns))
	cols = append(cols, auto...)
	cols = append(cols, rest...)
	cols = append(cols, userColumns...)

	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		if c.Key == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyKey)
		}
		if seen[c.Key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, c.Key)
		}
		seen[c.Key] = true
	}
	return &Table{settings: settings, columns: cols}, nil
}

// Settings returns the table settings.
func (t *Table) Settings() Settings { return t.settings }

// Columns returns a copy of all columns, hidden ones included.
func (t *Table) Columns() []column.Descriptor {
	return append([]column.Descriptor(nil), t.columns...)
}

// Visible returns the columns with IsShow set.
func (t *Table) Visible() []column.Descriptor {
	out := make([]column.Descriptor, 0, len(t.columns))
	for _, c := range t.columns {
		if c.IsShow {
			out = append(out, c)
		}
	}
	return out
}

// Header is one planned column header.
type Header struct {
	Key   string       `json:"key" yaml:"key"`
	Text  string       `json:"text" yaml:"text"`
	Width column.Width `json:"width" yaml:"width"`
	Align column.Align `json:"align" yaml:"align"`
	Auto  bool         `json:"isAutoCreate" yaml:"isAutoCreate"`
}

// PlannedRow is one flattened row ready for drawing.
type PlannedRow struct {
	// Depth is 0 for top-level rows.
	Depth int         `json:"depth" yaml:"depth"`
	Cells []cell.Cell `json:"cells" yaml:"cells"`
}

// Top reports whether the row is a top-level row.
func (r PlannedRow) Top() bool { return r.Depth == 0 }

// Plan is a table laid out as headers and rows of cells.
type Plan struct {
	Headers []Header     `json:"headers" yaml:"headers"`
	Rows    []PlannedRow `json:"rows" yaml:"rows"`
	// TopLevel counts the top-level rows in the plan.
	TopLevel int `json:"topLevel" yaml:"topLevel"`
	// Offset is the settings' OrderOffset.
	Offset int `json:"offset" yaml:"offset"`
}

// Build renders rows into a plan. Top-level rows are numbered
// OrderOffset+i+1; nested rows are numbered within their parent and
// rendered with isTopLevelRow set to false.
func (t *Table) Build(ctx context.Context, rows []column.Row) Plan {
	lgr := logger.FromContext(ctx)
	visible := t.Visible()

	plan := Plan{
		Headers:  make([]Header, len(visible)),
		TopLevel: len(rows),
		Offset:   t.settings.OrderOffset,
	}
	for i, c := range visible {
		plan.Headers[i] = Header{Key: c.Key, Text: c.Text, Width: c.Width, Align: c.Align, Auto: c.IsAutoCreate}
	}

	treeKey := t.settings.treeKey()
	var walk func(rows []column.Row, depth, base int)
	walk = func(rows []column.Row, depth, base int) {
		for i, row := range rows {
			plan.Rows = append(plan.Rows, t.renderRow(visible, row, i, base+i+1, depth))
			if children := Children(row, treeKey); len(children) > 0 {
				walk(children, depth+1, 0)
			}
		}
	}
	walk(rows, 0, t.settings.OrderOffset)

	lgr.V(1).Info("built table plan",
		logger.LocaleKey, t.settings.Locale,
		logger.ColumnsKey, len(visible),
		logger.RowsKey, len(plan.Rows))
	return plan
}

func (t *Table) renderRow(cols []column.Descriptor, row column.Row, index, order, depth int) PlannedRow {
	top := depth == 0
	pr := PlannedRow{Depth: depth, Cells: make([]cell.Cell, len(cols))}
	for j, c := range cols {
		var value any
		if c.Key == column.OrderKey && c.IsAutoCreate {
			value = order
		} else {
			value = row[c.Key]
		}
		pr.Cells[j] = c.RenderCell(value, row, index, top)
	}
	return pr
}

// Children returns the nested rows stored under key. Values that are not a
// list of objects are ignored.
func Children(row column.Row, key string) []column.Row {
	raw, ok := row[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case []column.Row:
		return v
	case []map[string]any:
		out := make([]column.Row, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []any:
		out := make([]column.Row, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case map[string]any:
				out = append(out, m)
			case column.Row:
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// InferColumns returns data columns for every key found in rows, in first
// seen order, skipping the tree key and any key in skip. Key order within a
// row follows keyOrder when given, otherwise keys are sorted.
func InferColumns(rows []column.Row, treeKey string, keyOrder func(column.Row) []string, skip ...string) []column.Descriptor {
	if treeKey == "" {
		treeKey = DefaultTreeKey
	}
	skipped := map[string]bool{treeKey: true}
	for _, s := range skip {
		skipped[s] = true
	}
	if keyOrder == nil {
		keyOrder = SortedKeys
	}

	var cols []column.Descriptor
	var visit func(rows []column.Row)
	visit = func(rows []column.Row) {
		for _, row := range rows {
			for _, k := range keyOrder(row) {
				if skipped[k] {
					continue
				}
				skipped[k] = true
				cols = append(cols, column.Data(k, ""))
			}
			visit(Children(row, treeKey))
		}
	}
	visit(rows)
	return cols
}
