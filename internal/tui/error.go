package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	calerr "github.com/gongahkia/calcombo/internal/errors"
)

// errorView renders a parse error with its reason code.
func errorView(err error) string {
	if reason, ok := calerr.ReasonOf(err); ok {
		return ErrorStyle.Render(fmt.Sprintf("✗ no date (%s)", reason))
	}
	var inv *calerr.InvalidDateError
	if errors.As(err, &inv) {
		return ErrorStyle.Render(fmt.Sprintf("✗ %04d-%02d-%02d is not a date", inv.Year, inv.Month, inv.Day))
	}
	return lipgloss.JoinVertical(lipgloss.Left, ErrorStyle.Render("✗ error"), "  "+err.Error())
}
