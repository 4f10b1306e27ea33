package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gongahkia/calcombo/internal/mcp/tools"
)

func NewLocalesCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List every locale with a known short date pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			all := tools.Locales(e.cfg.Registry())
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Locale\tFamily\tPattern\tShort year\tLong year")
			for _, l := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Tag, l.Family, l.Pattern, l.ShortYear, l.LongYear)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "Output format: text or json")
	return cmd
}
