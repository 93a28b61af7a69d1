package column

import (
	"github.com/oakwood-commons/gridcol/pkg/cell"
	"github.com/oakwood-commons/gridcol/pkg/i18n"
)

const (
	// OrderKey identifies the row order column.
	OrderKey = "order"
	// OrderTextKey is the text id of the order column's label.
	OrderTextKey = "order-text"
)

// OrderWidth is the fixed width of the order column.
var OrderWidth = Px(50)

// Order provides the auto-created row number column. Nested rows of a tree
// table get an empty cell; only top-level rows show their number.
type Order struct {
	texts i18n.Translator
}

var _ Provider = (*Order)(nil)

// NewOrder returns an Order column resolving its label through texts.
func NewOrder(texts i18n.Translator) *Order {
	return &Order{texts: texts}
}

// HeaderText returns the localized label of the order column.
func (o *Order) HeaderText(s Settings) string {
	return o.texts.Text(Locale(s), OrderTextKey)
}

// Descriptor returns the order column descriptor for s.
func (o *Order) Descriptor(s Settings) Descriptor {
	return Descriptor{
		Key:              OrderKey,
		Text:             o.HeaderText(s),
		IsAutoCreate:     true,
		IsShow:           true,
		DisableCustomize: true,
		Width:            OrderWidth,
		Align:            AlignCenter,
		Renderer:         orderCell{},
	}
}

// orderCell marks cells with gm-create and gm-order so the engine can tell
// synthesized cells from data cells.
type orderCell struct{}

func (orderCell) RenderCell(value any, _ Row, _ int, isTopLevelRow bool) cell.Cell {
	attrs := []cell.Attr{{Key: "gm-create", Val: "true"}, {Key: "gm-order"}}
	if !isTopLevelRow {
		return cell.Empty(OrderKey, attrs...)
	}
	return cell.Text(OrderKey, Stringify(value), attrs...)
}
