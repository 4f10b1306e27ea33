package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines global keybindings shared across all TUI views. Printable
// keys are left to the date input.
type KeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Back      key.Binding
	Locale    key.Binding
	Enter     key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

// DefaultKeyMap returns the standard set of keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Locale: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "locale"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "today"),
		),
	}
}
