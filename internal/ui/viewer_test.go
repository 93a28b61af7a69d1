package ui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/i18n"
)

func newViewer(t *testing.T, rows []column.Row) *Viewer {
	t.Helper()
	cat, err := i18n.Embedded()
	require.NoError(t, err)
	tbl, err := grid.New(grid.Settings{Locale: "en"}, []column.Provider{column.NewOrder(cat)}, column.Data("name", ""))
	require.NoError(t, err)
	return NewViewer(tbl.Build(context.Background(), rows), ViewerOptions{
		Title:     "people.json",
		Footer:    "showing 1-2 of 2",
		EmptyText: "No data",
		NoColor:   true,
	})
}

func TestViewerContent(t *testing.T) {
	v := newViewer(t, []column.Row{{"name": "Alice"}, {"name": "Bob"}})
	_, _ = v.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	out := v.Content()
	assert.Contains(t, out, "people.json")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "showing 1-2 of 2")
	assert.Contains(t, out, "q quit")
	assert.NotContains(t, out, "No data")
	assert.True(t, v.View().AltScreen)
}

func TestViewerShowsRowsWithoutResize(t *testing.T) {
	v := newViewer(t, []column.Row{{"name": "apple"}})
	assert.Contains(t, v.Content(), "apple")
}

func TestViewerEmpty(t *testing.T) {
	v := newViewer(t, nil)
	assert.Contains(t, v.Content(), "No data")
}

func TestViewerQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: 'q', Text: "q"},
		{Code: tea.KeyEscape},
		{Code: 'c', Mod: tea.ModCtrl},
	} {
		v := newViewer(t, []column.Row{{"name": "Alice"}})
		_, cmd := v.Update(msg)
		require.NotNil(t, cmd, "key %q should quit", msg.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.Empty(t, v.Content())
	}
}

func TestViewerNavigation(t *testing.T) {
	v := newViewer(t, []column.Row{{"name": "Alice"}, {"name": "Bob"}})
	_, _ = v.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, v.Table().Cursor())
	assert.Nil(t, v.Init())
}
