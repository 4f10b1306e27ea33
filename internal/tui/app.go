package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/locale"
)

// View identifies the active TUI view.
type View int

const (
	ViewCombo View = iota
	ViewLocales
)

// App is the root bubbletea model that routes to child views.
type App struct {
	keys       KeyMap
	activeView View
	width      int
	height     int
	combo      ComboModel
	locales    LocalePickerModel
	help       HelpModel
	showHelp   bool
}

// NewApp creates a new root TUI application model.
func NewApp(h *datehelper.Helper, tag language.Tag) App {
	return App{
		keys:       DefaultKeyMap(),
		activeView: ViewCombo,
		combo:      NewComboModel(h, tag),
		help:       NewHelpModel(),
	}
}

func (a App) Init() tea.Cmd {
	return a.combo.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.propagateSize(msg)

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if key.Matches(msg, a.keys.Back) {
			if a.showHelp {
				a.showHelp = false
				return a, nil
			}
			if a.activeView != ViewCombo {
				a.activeView = ViewCombo
				return a, nil
			}
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Locale) && a.activeView == ViewCombo {
			a.activeView = ViewLocales
			a.locales = NewLocalePickerModel(locale.RegistryOf(a.combo.helper.Host()))
			if a.width > 0 {
				a.locales, _ = a.locales.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height - 3})
			}
			return a, a.locales.Init()
		}

	case SelectedMsg:
		return a, tea.Quit

	case LocalePickerMsg:
		a.combo.SetLocale(msg.Tag)
		a.activeView = ViewCombo
		return a, nil
	}

	return a.updateChild(msg)
}

func (a App) View() string {
	if a.showHelp {
		return a.help.View()
	}

	var content string
	switch a.activeView {
	case ViewLocales:
		content = a.locales.View()
	default:
		content = a.combo.View()
	}

	header := TitleStyle.Render("calcombo")
	status := StatusBarStyle.Render("enter accept · ctrl+l locale · f1 help · esc back")

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (a App) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewCombo:
		a.combo, cmd = a.combo.Update(msg)
	case ViewLocales:
		a.locales, cmd = a.locales.Update(msg)
	}
	return a, cmd
}

func (a App) propagateSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Reserve space for header and status bar
	childMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
	return a.updateChild(childMsg)
}

// Selected returns the date accepted in the combo, if any.
func (a App) Selected() (datehelper.Date, bool) {
	return a.combo.Selected()
}
