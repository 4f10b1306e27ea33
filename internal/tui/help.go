package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel displays keybinding reference as a modal overlay.
type HelpModel struct {
	keys KeyMap
}

// NewHelpModel creates a help overlay.
func NewHelpModel() HelpModel {
	return HelpModel{keys: DefaultKeyMap()}
}

func (h HelpModel) Init() tea.Cmd { return nil }

func (h HelpModel) Update(_ tea.Msg) (HelpModel, tea.Cmd) {
	return h, nil
}

func (h HelpModel) View() string {
	k := h.keys
	var b strings.Builder
	for _, bind := range []struct{ key, desc string }{
		{k.Quit.Help().Key, "Quit"},
		{k.Help.Help().Key, "Toggle help"},
		{k.Back.Help().Key, "Back / close"},
		{k.Enter.Help().Key, "Accept the parsed date"},
		{k.Locale.Help().Key, "Choose locale"},
		{k.Today.Help().Key, "Jump to today"},
		{"shift+← / →", "Previous / next day"},
		{"↑ / ↓", "Previous / next week"},
		{"pgup / pgdown", "Previous / next month"},
	} {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", bind.key, bind.desc))
	}

	content := BorderStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render("Keybindings"),
			"",
			b.String(),
		),
	)

	return lipgloss.Place(80, 24, lipgloss.Center, lipgloss.Center, content)
}
