package table

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/i18n"
)

func makeModel(t *testing.T) *Model {
	t.Helper()
	cat, err := i18n.Embedded()
	require.NoError(t, err)
	tbl, err := grid.New(grid.Settings{Locale: "en"}, []column.Provider{column.NewOrder(cat)}, column.Data("name", "Name"))
	require.NoError(t, err)
	plan := tbl.Build(context.Background(), []column.Row{
		{"name": "apple", "children": []any{map[string]any{"name": "seed"}}},
		{"name": "banana"},
	})
	return NewModel(plan, "  ")
}

func TestTable_ColumnsFromPlan(t *testing.T) {
	m := makeModel(t)
	cols := m.Columns()
	require.Len(t, cols, 2)
	// 50px order column is six terminal columns wide.
	assert.Equal(t, 6, cols[0].Width)
	assert.Equal(t, "order ", cols[0].Title)
	assert.Equal(t, len("banana"), cols[1].Width)
}

func TestTable_CursorSelection(t *testing.T) {
	m := makeModel(t)

	sel := m.SelectedRow()
	require.NotNil(t, sel)
	assert.True(t, sel.Top())
	assert.Equal(t, "apple", sel.Cells[1].PlainText())

	m.SetCursor(1)
	sel = m.SelectedRow()
	require.NotNil(t, sel)
	assert.False(t, sel.Top())
	assert.True(t, sel.Cells[0].IsEmpty())

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.LessOrEqual(t, m.Cursor(), 2, "cursor out of bounds")
}

func TestTable_ViewShowsNumbersAndIndent(t *testing.T) {
	m := makeModel(t)
	m.SetNoColor(true)
	m.SetSize(40, 6)
	view := m.View()
	assert.Contains(t, view, "order")
	assert.Contains(t, view, "apple")
	assert.Contains(t, view, "  seed")
	assert.Contains(t, view, "  1")
	assert.Positive(t, m.Height())
	assert.True(t, strings.Contains(m.String(), "rows=3"))
}

func TestTable_FocusAndColors(t *testing.T) {
	m := makeModel(t)
	m.Blur()
	assert.False(t, m.Focused())
	m.Focus()
	assert.True(t, m.Focused())

	m.SetColors(lipgloss.Color("1"), lipgloss.Color("2"), lipgloss.Color("3"), lipgloss.Color("4"))
	assert.NotEmpty(t, m.View())
}

func TestTable_EmptyPlan(t *testing.T) {
	m := NewModel(grid.Plan{}, "")
	assert.Nil(t, m.SelectedRow())
}

func TestTable_RowsVisibleBeforeAndAfterResize(t *testing.T) {
	m := makeModel(t)
	m.SetNoColor(true)
	assert.Contains(t, m.View(), "banana", "rows must render at the initial width")

	m.SetSize(80, 10)
	assert.Equal(t, 80, m.Width())
	assert.Contains(t, m.View(), "apple")
	assert.Contains(t, m.View(), "banana")

	m.SetSize(0, 10)
	assert.Equal(t, naturalWidth(m.Columns()), m.Width())
	assert.Contains(t, m.View(), "apple")
}
