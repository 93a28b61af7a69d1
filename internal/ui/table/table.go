// Package table wraps the bubbles table for a grid.Plan.
package table

import (
	"fmt"
	"image/color"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/gridcol/internal/formatter"
	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
)

// Re-export common table types so callers can build columns and rows
// without importing bubbles directly.
type Column = bubtable.Column
type Row = bubtable.Row

// charWidthPx converts descriptor pixel widths to terminal columns.
const charWidthPx = 8

// Model shows a plan in a scrollable, focusable table. Cell text is padded
// to the header's alignment before it reaches bubbles, which only
// left-aligns.
type Model struct {
	table   bubtable.Model
	styles  bubtable.Styles
	plan    grid.Plan
	columns []Column
	aligns  []column.Align

	width   int
	height  int
	focused bool
	noColor bool

	headerFG   color.Color
	headerBG   color.Color
	selectedFG color.Color
	selectedBG color.Color
}

// NewModel builds a table model for plan, indenting nested rows by indent
// per level.
func NewModel(plan grid.Plan, indent string) *Model {
	rows := formatter.TextRows(plan, indent)
	cols, aligns := columnsFor(plan, rows)

	t := bubtable.New(
		bubtable.WithColumns(cols),
		bubtable.WithFocused(true),
		bubtable.WithHeight(10),
		bubtable.WithWidth(naturalWidth(cols)),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		PaddingLeft(0).
		PaddingRight(1)
	s.Selected = s.Selected.
		PaddingLeft(0).
		PaddingRight(0)
	s.Cell = lipgloss.NewStyle().
		PaddingLeft(0).
		PaddingRight(1)
	t.SetStyles(s)

	m := &Model{
		table:   t,
		styles:  s,
		plan:    plan,
		columns: cols,
		aligns:  aligns,
		width:   naturalWidth(cols),
		height:  10,
		focused: true,
	}
	m.setRows(rows)
	return m
}

// columnsFor sizes each column to its widest cell, with fixed descriptor
// widths as a floor for auto-created columns.
func columnsFor(plan grid.Plan, rows [][]string) ([]Column, []column.Align) {
	cols := make([]Column, len(plan.Headers))
	aligns := make([]column.Align, len(plan.Headers))
	for i, h := range plan.Headers {
		w := lipgloss.Width(h.Text)
		if fixed := h.Width.Chars(0, charWidthPx); h.Auto && fixed > w {
			w = fixed
		}
		for _, r := range rows {
			if i < len(r) {
				if cw := lipgloss.Width(r[i]); cw > w {
					w = cw
				}
			}
		}
		cols[i] = Column{Title: formatter.Pad(h.Text, w, h.Align), Width: w}
		aligns[i] = h.Align
	}
	return cols, aligns
}

// naturalWidth is the width of all columns plus their right padding.
func naturalWidth(cols []Column) int {
	w := 0
	for _, c := range cols {
		w += c.Width + 1
	}
	return w
}

func (m *Model) setRows(rows [][]string) {
	out := make([]Row, len(rows))
	for i, r := range rows {
		row := make(Row, len(r))
		for j, v := range r {
			if j < len(m.columns) {
				v = formatter.Pad(v, m.columns[j].Width, m.aligns[j])
			}
			row[j] = v
		}
		out[i] = row
	}
	m.table.SetRows(out)
}

// Plan returns the plan shown by the model.
func (m *Model) Plan() grid.Plan {
	return m.plan
}

// Columns returns the bubbles columns derived from the plan headers.
func (m *Model) Columns() []Column {
	return m.columns
}

// Cursor returns the current cursor position.
func (m *Model) Cursor() int {
	return m.table.Cursor()
}

// SetCursor sets the cursor position.
func (m *Model) SetCursor(pos int) {
	m.table.SetCursor(pos)
}

// SelectedRow returns the planned row under the cursor, or nil when the
// plan is empty.
func (m *Model) SelectedRow() *grid.PlannedRow {
	cursor := m.Cursor()
	if cursor < 0 || cursor >= len(m.plan.Rows) {
		return nil
	}
	return &m.plan.Rows[cursor]
}

// SetSize sets the table dimensions. A non-positive width keeps the
// natural width of the columns.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = naturalWidth(m.columns)
	}
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

// Width returns the table width.
func (m *Model) Width() int {
	return m.width
}

// Focus sets the table focus state.
func (m *Model) Focus() {
	m.focused = true
	m.table.Focus()
}

// Blur removes focus from the table.
func (m *Model) Blur() {
	m.focused = false
	m.table.Blur()
}

// Focused returns true if the table has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// SetNoColor enables/disables color output.
func (m *Model) SetNoColor(noColor bool) {
	m.noColor = noColor
	m.applyColorScheme()
}

// SetColors sets custom theme colors.
func (m *Model) SetColors(headerFG, headerBG, selectedFG, selectedBG color.Color) {
	m.headerFG = headerFG
	m.headerBG = headerBG
	m.selectedFG = selectedFG
	m.selectedBG = selectedBG
	m.applyColorScheme()
}

func (m *Model) applyColorScheme() {
	s := m.styles
	if m.noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	} else {
		if m.headerFG != nil {
			s.Header = s.Header.Foreground(m.headerFG)
		}
		if m.headerBG != nil {
			s.Header = s.Header.Background(m.headerBG)
		}
		if m.selectedFG != nil {
			s.Selected = s.Selected.Foreground(m.selectedFG)
		}
		if m.selectedBG != nil {
			s.Selected = s.Selected.Background(m.selectedBG)
		}
	}
	m.table.SetStyles(s)
	m.styles = s
}

// Update handles messages and updates the table state.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table to a string.
func (m *Model) View() string {
	return m.table.View()
}

// Height returns the rendered height of the table (including header).
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}

// String returns a string representation for debugging.
func (m *Model) String() string {
	return fmt.Sprintf("Table[rows=%d, cols=%d, cursor=%d]", len(m.plan.Rows), len(m.columns), m.Cursor())
}
