package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/locale"
)

// LocalePickerMsg is sent when a locale is selected.
type LocalePickerMsg struct {
	Tag language.Tag
}

type localeItem struct {
	tag     language.Tag
	pattern string
}

func (l localeItem) Title() string       { return l.tag.String() }
func (l localeItem) Description() string { return l.pattern }
func (l localeItem) FilterValue() string { return l.tag.String() + " " + l.pattern }

// LocalePickerModel shows a filterable list of locales with a short date
// pattern.
type LocalePickerModel struct {
	list list.Model
	keys KeyMap
}

// NewLocalePickerModel creates a locale picker populated from r.
func NewLocalePickerModel(r *locale.Registry) LocalePickerModel {
	all := r.All()
	items := make([]list.Item, 0, len(all))
	for _, e := range all {
		items = append(items, localeItem{tag: e.Tag, pattern: e.ShortPattern})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 50, 14)
	l.Title = "Select locale"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return LocalePickerModel{list: l, keys: DefaultKeyMap()}
}

func (p LocalePickerModel) Init() tea.Cmd { return nil }

func (p LocalePickerModel) Update(msg tea.Msg) (LocalePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if p.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, p.keys.Enter) {
			if item, ok := p.list.SelectedItem().(localeItem); ok {
				return p, func() tea.Msg { return LocalePickerMsg{Tag: item.tag} }
			}
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p LocalePickerModel) View() string {
	return p.list.View()
}
