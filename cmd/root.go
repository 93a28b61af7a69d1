// Package cmd implements the gridcol command line.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridcol/pkg/i18n"
	"github.com/oakwood-commons/gridcol/pkg/logger"
	"github.com/oakwood-commons/gridcol/pkg/settings"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configFile  string
	catalogFile string
	locale      string
	noColor     bool
	verbosity   int

	// cfg is loaded in PersistentPreRunE.
	cfg Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           settings.CliBinaryName,
		Short:         "Render row data as tables with an auto-created order column",
		Long:          rootLongHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cliVersionString(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config-file", "", "path to a YAML config file")
	pf.StringVar(&opts.catalogFile, "catalog", "", "path to a YAML text catalog merged over the built-in texts")
	pf.StringVar(&opts.locale, "locale", "", "display locale, e.g. en-us, zh-cn, zh-tw (default from config)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	pf.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newColumnCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

const rootLongHelp = `gridcol renders JSON, YAML or TOML rows as a table.

Every table gets an auto-created, localized order column. Top-level rows
are numbered; rows nested under the tree key (default "children") are
indented and left without a number.`

func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg, err := loadMergedConfig(o.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.cfg = cfg

	run := settings.NewCliParams()
	run.MinLogLevel = int8(-o.verbosity)
	run.NoColor = o.noColor
	run.Locale = o.effectiveLocale()

	lgr := logger.WithValues(logger.Get(run.MinLogLevel), logger.CommandKey, cmd.Name())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)

	lgr.V(1).Info("configuration loaded", "config_file", o.configFile, logger.LocaleKey, run.Locale)
	return nil
}

func (o *globalOptions) effectiveLocale() string {
	if o.locale != "" {
		return o.locale
	}
	return o.cfg.App.Locale
}

// catalog returns the built-in texts merged with the configured catalog
// file and then the --catalog file.
func (o *globalOptions) catalog() (*i18n.Catalog, error) {
	cat, err := i18n.Embedded()
	if err != nil {
		return nil, err
	}
	for _, path := range []string{o.cfg.App.Catalog, o.catalogFile} {
		if path == "" {
			continue
		}
		if err := cat.LoadFile(path); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}
	return cat, nil
}

// cliVersionString builds the version line for --version and `version`.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
