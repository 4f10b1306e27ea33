package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/ui"
)

// SelectedMsg is sent when the user accepts a date.
type SelectedMsg struct {
	Date datehelper.Date
}

// ComboModel is a text field that parses as the user types, with a month
// grid showing the date it currently reads.
type ComboModel struct {
	helper   *datehelper.Helper
	tag      language.Tag
	keys     KeyMap
	input    textinput.Model
	date     datehelper.Date
	parsed   bool
	err      error
	selected *datehelper.Date
}

// NewComboModel creates a focused date field for tag.
func NewComboModel(h *datehelper.Helper, tag language.Tag) ComboModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	c := ComboModel{helper: h, tag: tag, keys: DefaultKeyMap(), input: ti}
	c.input.Placeholder = c.placeholder()
	c.reparse()
	return c
}

func (c ComboModel) placeholder() string {
	if p, ok := c.helper.ShortPattern(c.tag); ok {
		return datehelper.Format(c.helper.Today(), p)
	}
	return c.helper.Today().String()
}

// SetLocale switches the locale and parses the current text again.
func (c *ComboModel) SetLocale(tag language.Tag) {
	c.tag = tag
	c.input.Placeholder = c.placeholder()
	c.reparse()
}

func (c *ComboModel) reparse() {
	text := c.input.Value()
	if text == "" {
		c.date, c.parsed, c.err = c.helper.Today(), false, nil
		return
	}
	d, err := c.helper.ParseBestEffort(text, c.tag)
	if err != nil {
		c.parsed, c.err = false, err
		return
	}
	c.date, c.parsed, c.err = d, true, nil
}

// move shifts the shown date and writes it back in the locale's format
// with a four digit year.
func (c *ComboModel) move(d datehelper.Date) {
	text := d.String()
	if info, ok := c.helper.LocalePatternInfo(c.tag); ok {
		text = datehelper.Format(d, info.LongYear)
	}
	c.input.SetValue(text)
	c.input.CursorEnd()
	c.reparse()
}

func (c ComboModel) Init() tea.Cmd {
	return textinput.Blink
}

func (c ComboModel) Update(msg tea.Msg) (ComboModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, c.keys.Enter):
			if !c.parsed {
				return c, nil
			}
			d := c.date
			c.selected = &d
			return c, func() tea.Msg { return SelectedMsg{Date: d} }
		case key.Matches(msg, c.keys.Today):
			c.move(c.helper.Today())
			return c, nil
		case key.Matches(msg, c.keys.PrevDay):
			c.move(c.date.AddDays(-1))
			return c, nil
		case key.Matches(msg, c.keys.NextDay):
			c.move(c.date.AddDays(1))
			return c, nil
		case key.Matches(msg, c.keys.PrevWeek):
			c.move(c.date.AddDays(-7))
			return c, nil
		case key.Matches(msg, c.keys.NextWeek):
			c.move(c.date.AddDays(7))
			return c, nil
		case key.Matches(msg, c.keys.PrevMonth):
			c.move(addMonths(c.date, -1))
			return c, nil
		case key.Matches(msg, c.keys.NextMonth):
			c.move(addMonths(c.date, 1))
			return c, nil
		}
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		c.reparse()
	}
	return c, cmd
}

func (c ComboModel) View() string {
	label := SubtitleStyle.Render(fmt.Sprintf("Date (%s)", c.tag))

	var status string
	switch {
	case c.err != nil:
		status = errorView(c.err)
	case c.parsed:
		days := c.helper.DaysBetween(c.helper.Today(), c.date, c.tag)
		status = SuccessStyle.Render(fmt.Sprintf("%s  %s  %s", c.date, c.date.Weekday(), ui.Relative(days)))
	default:
		status = MutedStyle.PaddingLeft(1).Render("type a date")
	}

	lines := []string{label, " " + c.input.View(), status, ""}
	lines = append(lines, monthGrid(c.date, c.helper.Today(), c.helper.Host().Family(c.tag) == locale.FamilyUS))
	if c.selected != nil {
		lines = append(lines, "", SuccessStyle.Render("Selected "+c.selected.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Selected returns the last accepted date.
func (c ComboModel) Selected() (datehelper.Date, bool) {
	if c.selected == nil {
		return datehelper.Date{}, false
	}
	return *c.selected, true
}
