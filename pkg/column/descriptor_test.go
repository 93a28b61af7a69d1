package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridcol/pkg/cell"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in      string
		want    Width
		wantErr bool
	}{
		{in: "50px", want: Px(50)},
		{in: "50", want: Px(50)},
		{in: " 12.5% ", want: Pct(12.5)},
		{in: "auto", want: Width{}},
		{in: "", want: Width{}},
		{in: "wide", wantErr: true},
		{in: "-3px", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWidth(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWidthStringAndChars(t *testing.T) {
	assert.Equal(t, "auto", Width{}.String())
	assert.Equal(t, "12.5%", Pct(12.5).String())
	assert.Equal(t, 6, Px(50).Chars(100, 8))
	assert.Equal(t, 6, Px(50).Chars(100, 0))
	assert.Equal(t, 1, Px(3).Chars(100, 8))
	assert.Equal(t, 10, Pct(10).Chars(100, 8))
	assert.Equal(t, 0, Width{}.Chars(100, 8))
}

func TestParseAlign(t *testing.T) {
	a, err := ParseAlign("CENTER")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	a, err = ParseAlign("")
	require.NoError(t, err)
	assert.Equal(t, AlignLeft, a)

	_, err = ParseAlign("justify")
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, `a\nb`, Stringify("a\nb"))
	assert.Equal(t, `{"a":1}`, Stringify(map[string]any{"a": 1}))
	assert.Equal(t, `[1,"x"]`, Stringify([]any{1, "x"}))
}

func TestDataDescriptor(t *testing.T) {
	d := Data("name", "")
	assert.Equal(t, "name", d.Text)
	assert.True(t, d.IsShow)
	assert.False(t, d.IsAutoCreate)
	assert.Equal(t, "Alice", d.RenderCell("Alice", Row{"name": "Alice"}, 0, true).PlainText())
	// Data cells render for nested rows too.
	assert.Equal(t, "Bob", d.RenderCell("Bob", Row{}, 0, false).PlainText())
}

func TestDescriptorWithoutRendererFallsBackToField(t *testing.T) {
	d := Descriptor{Key: "k"}
	assert.Equal(t, "v", d.RenderCell("v", nil, 0, true).PlainText())
}

func TestCellRendererFunc(t *testing.T) {
	d := Descriptor{Key: "k", Renderer: CellRendererFunc(func(v any, _ Row, i int, _ bool) cell.Cell {
		return cell.Text("k", Stringify(v)+"!")
	})}
	assert.Equal(t, "v!", d.RenderCell("v", nil, 0, true).PlainText())
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "", Locale(nil))
	assert.Equal(t, "en", Locale(localeSettings("en")))
}
