package commands

import (
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/gongahkia/calcombo/internal/config"
)

// NewRootCmd builds the calcombo command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calcombo",
		Short:         "Locale aware date parsing for calendar combo fields",
		Long:          "Parse, format and compare dates the way a locale aware calendar combo box reads what users type",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Log every parse strategy to stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file path")
	rootCmd.PersistentFlags().String("locale", "", "BCP 47 locale tag, overrides the configured locale")
	rootCmd.PersistentFlags().Bool("free-form", false, "Try a free-form parse after every other strategy")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
			config.SetOverridePath(cfgPath)
		}
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	}

	rootCmd.AddCommand(NewParseCmd())
	rootCmd.AddCommand(NewSlashCmd())
	rootCmd.AddCommand(NewNumericCmd())
	rootCmd.AddCommand(NewBetweenCmd())
	rootCmd.AddCommand(NewSameCmd())
	rootCmd.AddCommand(NewTodayCmd())
	rootCmd.AddCommand(NewFormatCmd())
	rootCmd.AddCommand(NewLocalesCmd())
	rootCmd.AddCommand(NewDatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewCompletionCmd())
	rootCmd.AddCommand(NewTUICmd())

	// Launch TUI when invoked with no subcommand
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunTUI(cmd)
	}

	return rootCmd
}
