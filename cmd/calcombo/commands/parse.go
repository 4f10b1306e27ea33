package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gongahkia/calcombo/datehelper"
	calerr "github.com/gongahkia/calcombo/internal/errors"
	"github.com/gongahkia/calcombo/internal/ics"
)

func NewParseCmd() *cobra.Command {
	var strictPattern, outputFormat, icsPath, summary string

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse a date the way the combo field reads typed text",
		Long: `Parse a date typed by a user. Without --strict every strategy is tried
in turn: the locale's short pattern, the same pattern with a four digit
year, the generic pattern, bare digits and finally digit salvage.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")

			var d datehelper.Date
			if strictPattern != "" {
				d, err = e.helper.ParseStrict(text, strictPattern, e.tag)
			} else {
				d, err = e.helper.ParseBestEffortContext(cmd.Context(), text, e.tag)
			}
			if err != nil {
				return err
			}

			if icsPath != "" {
				if summary == "" {
					summary = text
				}
				if err := ics.NewWriter().WriteFile(cmd.Context(), []ics.Event{ics.NewEvent(d, summary)}, icsPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", icsPath)
			}
			return e.printDate(cmd.OutOrStdout(), text, d, outputFormat)
		},
	}

	cmd.Flags().StringVar(&strictPattern, "strict", "", "Parse exactly against this pattern, eg. dd.MM.yyyy")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "Output format: text or json")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Also write the date as an all-day event to this .ics file")
	cmd.Flags().StringVar(&summary, "summary", "", "Summary of the exported event (defaults to the input)")
	return cmd
}

func NewSlashCmd() *cobra.Command {
	var layout, separators, outputFormat string

	cmd := &cobra.Command{
		Use:   "slash <text>",
		Short: "Split delimited text against a delimited pattern",
		Long: `Split text on its separator and assign each piece to the field of the
same position in the pattern. Fields the pattern does not name default to
today. The pattern defaults to the locale's short pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if layout == "" {
				var ok bool
				if layout, ok = e.helper.ShortPattern(e.tag); !ok {
					return fmt.Errorf("no short date pattern for %s; pass --pattern", e.tag)
				}
			}
			seps := e.cfg.SeparatorRunes()
			if separators != "" {
				seps = []rune(separators)
			}
			d, err := e.helper.SlashParseContext(cmd.Context(), args[0], layout, seps, e.tag)
			if err != nil {
				return err
			}
			return e.printDate(cmd.OutOrStdout(), args[0], d, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&layout, "pattern", "p", "", "Delimited pattern, eg. MM/dd/yyyy")
	cmd.Flags().StringVar(&separators, "separators", "", "Accepted separator characters (defaults to the configured set)")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "Output format: text or json")
	return cmd
}

func NewNumericCmd() *cobra.Command {
	var fallback bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "numeric <digits>",
		Short: "Read six or eight bare digits as a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			d, ok := e.helper.ParseNumeric(args[0], e.tag, fallback)
			if !ok {
				return calerr.ParseFailed(args[0], calerr.ReasonExhaustedStrategies, nil)
			}
			return e.printDate(cmd.OutOrStdout(), args[0], d, outputFormat)
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", true, "Fall back to MMddyy[yy] or ddMMyy[yy] by locale family")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "Output format: text or json")
	return cmd
}
