package tui

import "github.com/charmbracelet/lipgloss"

// Palette, with separate shades for light and dark terminals.
var (
	accent = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	info   = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	good   = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	bad    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	faint  = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	inkOn  = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"}
)

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	SubtitleStyle  = lipgloss.NewStyle().Foreground(info).PaddingLeft(1)
	StatusBarStyle = lipgloss.NewStyle().Foreground(faint).PaddingLeft(1).PaddingTop(1)
	ErrorStyle     = lipgloss.NewStyle().Foreground(bad).PaddingLeft(1)
	SuccessStyle   = lipgloss.NewStyle().Foreground(good).PaddingLeft(1)
	MutedStyle     = lipgloss.NewStyle().Foreground(faint)
	BorderStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
)

// Month grid cells. The picked day is drawn as a filled block so it stays
// visible when it is also today.
var (
	GridHeaderStyle = lipgloss.NewStyle().Foreground(info).Bold(true)
	PickedStyle     = lipgloss.NewStyle().Foreground(inkOn).Background(accent).Bold(true)
	TodayStyle      = lipgloss.NewStyle().Foreground(good).Underline(true)
)
