package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/ics"
	"github.com/gongahkia/calcombo/internal/ui"
)

func NewBetweenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "between <start> [end]",
		Short: "Count the days from start to end (end defaults to today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			start, err := e.helper.ParseBestEffortContext(cmd.Context(), args[0], e.tag)
			if err != nil {
				return err
			}
			end := e.helper.Today()
			if len(args) == 2 {
				if end, err = e.helper.ParseBestEffortContext(cmd.Context(), args[1], e.tag); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.helper.DaysBetween(start, end, e.tag))
			return nil
		},
	}
	return cmd
}

func NewSameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "same <a> <b>",
		Short: "Report whether two typed dates name the same day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			a, err := e.helper.ParseBestEffortContext(cmd.Context(), args[0], e.tag)
			if err != nil {
				return err
			}
			b, err := e.helper.ParseBestEffortContext(cmd.Context(), args[1], e.tag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(datehelper.SameDay(a, b)))
			return nil
		},
	}
}

func NewTodayCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today in the locale's short pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			today := e.helper.Today()
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), e.output("", today))
			}
			text := today.String()
			if p, ok := e.helper.ShortPattern(e.tag); ok {
				text = datehelper.Format(today, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", text, ui.Dim(today.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "Output format: text or json")
	return cmd
}

func NewFormatCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "format <date> [pattern]",
		Short: "Render a date with a pattern (defaults to the locale's short pattern)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			d, err := e.helper.ParseBestEffortContext(cmd.Context(), args[0], e.tag)
			if err != nil {
				return err
			}
			var layout string
			if len(args) == 2 {
				layout = args[1]
			} else {
				info, ok := e.helper.LocalePatternInfo(e.tag)
				if !ok {
					return fmt.Errorf("no short date pattern for %s; pass a pattern", e.tag)
				}
				layout = info.ShortYear
				if long {
					layout = info.LongYear
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), datehelper.Format(d, layout))
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Use the four digit year variant of the locale pattern")
	return cmd
}

func NewDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dates <file.ics>",
		Short: "List the start date of every event in an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			events, err := ics.ReadFile(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, ev := range events {
				days := e.helper.DaysBetween(e.helper.Today(), ev.Date, e.tag)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ev.Date, ev.Date.Weekday(), ui.Relative(days), ev.Summary)
			}
			return tw.Flush()
		},
	}
}
