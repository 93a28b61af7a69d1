package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/gridcol/internal/formatter"
	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/internal/limiter"
	"github.com/oakwood-commons/gridcol/internal/ui"
	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/i18n"
	"github.com/oakwood-commons/gridcol/pkg/loader"
	"github.com/oakwood-commons/gridcol/pkg/logger"
	"github.com/oakwood-commons/gridcol/pkg/settings"
	"github.com/oakwood-commons/gridcol/pkg/term"
)

type renderOptions struct {
	output      string
	treeKey     string
	rowsKey     string
	columns     []string
	noOrder     bool
	width       int
	interactive bool
	limit       limiter.Config
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render rows from a file or stdin",
		Example: `  gridcol render data.yaml
  cat data.json | gridcol render -o html --locale en-us
  gridcol render data.yaml --limit 10 --offset 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.applyConfig(cmd.Flags(), g.cfg)
			run := settings.FromContextOrDefault(cmd.Context())
			if len(args) == 1 {
				run.Input = settings.InputSettings{Path: args[0]}
			}
			run.Output = o.output
			return o.run(cmd, g, run)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", fmt.Sprintf("output format: %s (default from config)", formatList()))
	f.StringVar(&o.treeKey, "tree-key", "", "row field holding nested child rows (default from config)")
	f.StringVar(&o.rowsKey, "rows-key", "", "object field unwrapped as the row array (default from config)")
	f.StringSliceVar(&o.columns, "columns", nil, "data columns to show, in order (default: every key found)")
	f.BoolVar(&o.noOrder, "no-order", false, "drop the auto-created order column")
	f.IntVar(&o.width, "width", 0, "table width in columns (default: terminal width)")
	f.BoolVarP(&o.interactive, "interactive", "i", false, "open the interactive viewer")
	f.IntVar(&o.limit.Limit, "limit", 0, "show at most N top-level rows")
	f.IntVar(&o.limit.Offset, "offset", 0, "skip the first N top-level rows")
	f.IntVar(&o.limit.Tail, "tail", 0, "show only the last N top-level rows")
	return cmd
}

func formatList() string {
	names := make([]string, 0, len(formatter.Formats()))
	for _, f := range formatter.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}

// applyConfig fills options that were not set on the command line.
func (o *renderOptions) applyConfig(flags *pflag.FlagSet, cfg Config) {
	if !flags.Changed("output") {
		o.output = cfg.App.Output
	}
	if !flags.Changed("tree-key") {
		o.treeKey = cfg.App.TreeKey
	}
	if !flags.Changed("rows-key") {
		o.rowsKey = cfg.App.RowsKey
	}
	if !flags.Changed("no-order") {
		o.noOrder = !cfg.AutoOrderEnabled()
	}
}

func (o *renderOptions) run(cmd *cobra.Command, g *globalOptions, run *settings.Run) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	format, err := formatter.ParseFormat(o.output)
	if err != nil {
		return err
	}
	if err := o.limit.Validate(); err != nil {
		return err
	}
	cat, err := g.catalog()
	if err != nil {
		return err
	}

	rows, err := o.readRows(cmd.InOrStdin(), run.Input)
	if err != nil {
		return err
	}
	total := len(rows)
	window, start := limiter.Window(o.limit, rows)

	userColumns := o.dataColumns(window)
	gs := grid.Settings{
		Locale:           run.Locale,
		TreeKey:          o.treeKey,
		OrderOffset:      start,
		DisableAutoOrder: o.noOrder,
	}
	tbl, err := grid.New(gs, []column.Provider{column.NewOrder(cat)}, userColumns...)
	if err != nil {
		return err
	}
	plan := tbl.Build(ctx, window)
	lgr.V(1).Info("plan built", logger.RowsKey, total, logger.ColumnsKey, len(plan.Headers))

	footer := ""
	if o.limit.IsActive() && total > 0 {
		footer = pageInfo(cat, run.Locale, start, len(window), total)
	}
	emptyText := cat.Text(run.Locale, "empty-text")
	formatter.SetTableTheme(g.cfg.TableColors())

	if o.interactive {
		title := settings.CliBinaryName
		if run.Input.Path != "" {
			title = filepath.Base(run.Input.Path)
		}
		return ui.Run(plan, ui.ViewerOptions{
			Title:     title,
			Footer:    footer,
			EmptyText: emptyText,
			NoColor:   run.NoColor,
			Indent:    g.cfg.App.Indent,
		})
	}

	return formatter.Render(ctx, cmd.OutOrStdout(), plan, formatter.Options{
		Format:     format,
		NoColor:    run.NoColor,
		TotalWidth: o.width,
		EmptyText:  emptyText,
		Footer:     footer,
		Indent:     g.cfg.App.Indent,
	})
}

func (o *renderOptions) readRows(stdin io.Reader, in settings.InputSettings) ([]column.Row, error) {
	if in.Path != "" && in.Path != "-" {
		return loader.LoadFile(in.Path, o.rowsKey)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(f) {
		return nil, fmt.Errorf("no input: pass a file or pipe data on stdin")
	}
	return loader.ReadRows(stdin, o.rowsKey)
}

func (o *renderOptions) dataColumns(rows []column.Row) []column.Descriptor {
	if len(o.columns) == 0 {
		// A data field named like the order column only clashes with it
		// while the order column is on.
		var skip []string
		if !o.noOrder {
			skip = append(skip, column.OrderKey)
		}
		return grid.InferColumns(rows, o.treeKey, nil, skip...)
	}
	cols := make([]column.Descriptor, 0, len(o.columns))
	for _, k := range o.columns {
		cols = append(cols, column.Data(k, ""))
	}
	return cols
}

// pageInfo renders the "showing a-b of n" footer. An empty window reports
// its start position as both bounds.
func pageInfo(cat *i18n.Catalog, locale string, start, n, total int) string {
	from, to := start+1, start+n
	if n == 0 {
		from = start
	}
	return cat.Textf(locale, "page-info", from, to, total)
}
