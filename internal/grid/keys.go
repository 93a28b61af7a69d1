package grid

import (
	"sort"

	"github.com/oakwood-commons/gridcol/pkg/column"
)

// SortedKeys returns the row's keys in ascending order.
func SortedKeys(row column.Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
