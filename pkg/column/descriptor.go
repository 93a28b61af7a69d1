// Package column describes table columns to a rendering engine.
//
// A Provider turns engine settings into a header label and a Descriptor.
// Descriptors are plain values: they are rebuilt whenever settings change
// and are never mutated afterwards.
package column

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oakwood-commons/gridcol/pkg/cell"
)

// Settings is the part of the engine's settings a provider looks at.
// A nil Settings, or an empty Language, selects the translator's default
// locale.
type Settings interface {
	Language() string
}

// Locale returns s.Language(), or "" for a nil Settings.
func Locale(s Settings) string {
	if s == nil {
		return ""
	}
	return s.Language()
}

// Row is one record of table data.
type Row map[string]any

// Align is a horizontal text alignment keyword.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign accepts left, center and right (case-insensitive). Empty input
// yields AlignLeft.
func ParseAlign(s string) (Align, error) {
	switch a := Align(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return AlignLeft, nil
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	default:
		return "", fmt.Errorf("unknown alignment %q", s)
	}
}

// Unit is the unit of a Width.
type Unit string

const (
	Pixels  Unit = "px"
	Percent Unit = "%"
)

// Width is a fixed column width. The zero value means "auto".
type Width struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

// Px returns a pixel width.
func Px(v float64) Width { return Width{Value: v, Unit: Pixels} }

// Pct returns a percentage width.
func Pct(v float64) Width { return Width{Value: v, Unit: Percent} }

// IsAuto reports whether no width is set.
func (w Width) IsAuto() bool { return w.Value <= 0 }

// String formats the width the way CSS does, e.g. "50px" or "10%".
func (w Width) String() string {
	if w.IsAuto() {
		return "auto"
	}
	return strconv.FormatFloat(w.Value, 'f', -1, 64) + string(w.Unit)
}

// ParseWidth parses "50px", "50", "12.5%" or "auto". A bare number is pixels.
func ParseWidth(s string) (Width, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return Width{}, nil
	}
	unit := Pixels
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSuffix(s, "%")
		unit = Percent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return Width{}, fmt.Errorf("invalid width %q", s)
	}
	return Width{Value: v, Unit: unit}, nil
}

// Chars converts the width to a terminal column count, assuming charWidthPx
// pixels per character. Percentages are taken of total. Auto widths return 0.
func (w Width) Chars(total, charWidthPx int) int {
	if w.IsAuto() {
		return 0
	}
	switch w.Unit {
	case Percent:
		return int(w.Value * float64(total) / 100)
	default:
		if charWidthPx <= 0 {
			charWidthPx = 8
		}
		n := int(w.Value) / charWidthPx
		if n < 1 {
			n = 1
		}
		return n
	}
}

// CellRenderer produces the content of one cell. Implementations must be
// pure: equal inputs give equal cells.
type CellRenderer interface {
	RenderCell(value any, row Row, rowIndex int, isTopLevelRow bool) cell.Cell
}

// CellRendererFunc adapts a function to CellRenderer. Descriptors holding a
// func renderer do not compare equal with reflect.DeepEqual.
type CellRendererFunc func(value any, row Row, rowIndex int, isTopLevelRow bool) cell.Cell

// RenderCell implements CellRenderer.
func (f CellRendererFunc) RenderCell(value any, row Row, rowIndex int, isTopLevelRow bool) cell.Cell {
	return f(value, row, rowIndex, isTopLevelRow)
}

// Descriptor tells a rendering engine how to label and draw one column.
type Descriptor struct {
	Key              string       `json:"key" yaml:"key"`
	Text             string       `json:"text" yaml:"text"`
	IsAutoCreate     bool         `json:"isAutoCreate" yaml:"isAutoCreate"`
	IsShow           bool         `json:"isShow" yaml:"isShow"`
	DisableCustomize bool         `json:"disableCustomize" yaml:"disableCustomize"`
	Width            Width        `json:"width" yaml:"width"`
	Align            Align        `json:"align" yaml:"align"`
	Renderer         CellRenderer `json:"-" yaml:"-"`
}

// RenderCell runs the descriptor's renderer. Descriptors without one fall
// back to Field.
func (d Descriptor) RenderCell(value any, row Row, rowIndex int, isTopLevelRow bool) cell.Cell {
	if d.Renderer == nil {
		return Field{Key: d.Key}.RenderCell(value, row, rowIndex, isTopLevelRow)
	}
	return d.Renderer.RenderCell(value, row, rowIndex, isTopLevelRow)
}

// Provider builds a column for a given set of settings.
type Provider interface {
	HeaderText(s Settings) string
	Descriptor(s Settings) Descriptor
}
