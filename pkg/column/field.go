package column

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oakwood-commons/gridcol/pkg/cell"
)

// Field renders a row value as plain text. It is the default renderer for
// data columns.
type Field struct {
	Key string
}

// RenderCell implements CellRenderer.
func (f Field) RenderCell(value any, _ Row, _ int, _ bool) cell.Cell {
	return cell.Text(f.Key, Stringify(value))
}

// Stringify formats a row value for a single-line cell. Nil is empty; maps
// and slices become compact JSON; line breaks are escaped.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`).Replace(t)
	case map[string]any, []any, Row:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}

// Data builds a descriptor for a plain data column keyed by key. The label
// defaults to the key.
func Data(key, text string) Descriptor {
	if text == "" {
		text = key
	}
	return Descriptor{
		Key:      key,
		Text:     text,
		IsShow:   true,
		Align:    AlignLeft,
		Renderer: Field{Key: key},
	}
}
