package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/pkg/cell"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/i18n"
	"github.com/oakwood-commons/gridcol/pkg/settings"
)

// builtinColumns maps a column name to its provider constructor.
var builtinColumns = map[string]func(i18n.Translator) column.Provider{
	column.OrderKey: func(t i18n.Translator) column.Provider { return column.NewOrder(t) },
}

func builtinColumnNames() []string {
	names := make([]string, 0, len(builtinColumns))
	for n := range builtinColumns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// columnView is the printable form of a descriptor.
type columnView struct {
	Key              string       `json:"key" yaml:"key"`
	Text             string       `json:"text" yaml:"text"`
	IsAutoCreate     bool         `json:"isAutoCreate" yaml:"isAutoCreate"`
	IsShow           bool         `json:"isShow" yaml:"isShow"`
	DisableCustomize bool         `json:"disableCustomize" yaml:"disableCustomize"`
	Width            string       `json:"width" yaml:"width"`
	Align            column.Align `json:"align" yaml:"align"`
	Sample           sampleCells  `json:"sample" yaml:"sample"`
}

type sampleCells struct {
	TopLevel string `json:"topLevel" yaml:"topLevel"`
	Nested   string `json:"nested" yaml:"nested"`
}

func newColumnCmd(g *globalOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:       fmt.Sprintf("column <%s>", strings.Join(builtinColumnNames(), "|")),
		Short:     "Print a built-in column descriptor and a sample cell",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builtinColumnNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			newProvider, ok := builtinColumns[args[0]]
			if !ok {
				return fmt.Errorf("unknown column %q (want one of %s)", args[0], strings.Join(builtinColumnNames(), ", "))
			}
			cat, err := g.catalog()
			if err != nil {
				return err
			}
			run := settings.FromContextOrDefault(cmd.Context())
			d := newProvider(cat).Descriptor(grid.Settings{Locale: run.Locale})
			view, err := describeColumn(d)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case "", "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(view); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			default:
				return fmt.Errorf("unsupported column output %q (want yaml|json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|json")
	return cmd
}

func describeColumn(d column.Descriptor) (columnView, error) {
	top, err := cell.HTML(d.RenderCell(1, column.Row{}, 0, true))
	if err != nil {
		return columnView{}, err
	}
	nested, err := cell.HTML(d.RenderCell(1, column.Row{}, 0, false))
	if err != nil {
		return columnView{}, err
	}
	return columnView{
		Key:              d.Key,
		Text:             d.Text,
		IsAutoCreate:     d.IsAutoCreate,
		IsShow:           d.IsShow,
		DisableCustomize: d.DisableCustomize,
		Width:            d.Width.String(),
		Align:            d.Align,
		Sample:           sampleCells{TopLevel: top, Nested: nested},
	}, nil
}
