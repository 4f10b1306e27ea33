package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gongahkia/calcombo/internal/tui"
)

// NewTUICmd creates the 'tui' subcommand.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive date combo",
		Long:  "Type a date and watch it parse live against a month grid; enter prints the accepted date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTUI(cmd)
		},
	}
}

// RunTUI starts the bubbletea program with alt-screen and prints the date
// the user accepted, if any.
func RunTUI(cmd *cobra.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.NewApp(e.helper, e.tag), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(tui.App); ok {
		if d, ok := app.Selected(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
	}
	return nil
}
