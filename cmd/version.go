package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridcol/pkg/settings"
)

func newVersionCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print gridcol version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch output {
			case "", "text":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
				return err
			case "json":
				v := settings.VersionInformation
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]string{
					"name":       settings.CliBinaryName,
					"version":    v.BuildVersion,
					"commit":     v.Commit,
					"build_time": v.BuildTime,
					"go_version": runtime.Version(),
				})
			default:
				return fmt.Errorf("unsupported version output %q (want text|json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text|json")
	return cmd
}
