package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/internal/grid"
)

// RenderJSON writes the plan as indented JSON.
func RenderJSON(w io.Writer, plan grid.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// RenderYAML writes the plan as YAML.
func RenderYAML(w io.Writer, plan grid.Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// RenderCSV writes a header record of column labels followed by the plain
// text of every row. Nested rows are not indented.
func RenderCSV(w io.Writer, plan grid.Plan) error {
	cw := csv.NewWriter(w)
	headers := make([]string, len(plan.Headers))
	for i, h := range plan.Headers {
		headers[i] = h.Text
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range plan.Rows {
		rec := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			rec[i] = c.PlainText()
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
