package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/locale"
)

func testApp(tag language.Tag) App {
	now := time.Date(2015, time.March, 14, 12, 0, 0, 0, time.UTC)
	host := locale.NewHost(
		locale.WithLocation(time.UTC),
		locale.WithClock(func() time.Time { return now }),
	)
	return NewApp(datehelper.New(host), tag)
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a = model.(App)
	}
	return a
}

func TestAppInit(t *testing.T) {
	app := testApp(language.AmericanEnglish)
	if app.activeView != ViewCombo {
		t.Errorf("expected initial view ViewCombo, got %d", app.activeView)
	}
	if app.combo.date != (datehelper.Date{Year: 2015, Month: time.March, Day: 14}) {
		t.Errorf("expected the grid to start on today, got %v", app.combo.date)
	}
}

func TestAppQuit(t *testing.T) {
	app := testApp(language.AmericanEnglish)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected quit command, got nil")
	}
}

func TestTypingParsesLive(t *testing.T) {
	app := typeText(t, testApp(language.MustParse("de-DE")), "1/4/16")
	if !app.combo.parsed {
		t.Fatalf("expected a parsed date, got error %v", app.combo.err)
	}
	if want := (datehelper.Date{Year: 2016, Month: time.April, Day: 1}); app.combo.date != want {
		t.Errorf("got %v, want %v", app.combo.date, want)
	}
	view := app.View()
	if !strings.Contains(view, "April 2016") {
		t.Error("expected the month grid to follow the parsed date")
	}
	if !strings.Contains(view, "in 384 days") {
		t.Errorf("expected the relative day count in view:\n%s", view)
	}
}

func TestTypingGarbageShowsReason(t *testing.T) {
	app := typeText(t, testApp(language.AmericanEnglish), "foo")
	if app.combo.parsed {
		t.Fatal("expected no date")
	}
	if !strings.Contains(app.View(), "exhausted_strategies") {
		t.Error("expected the failure reason in view")
	}
}

func TestEnterSelects(t *testing.T) {
	app := typeText(t, testApp(language.AmericanEnglish), "3/14/15")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok || msg.Date != (datehelper.Date{Year: 2015, Month: time.March, Day: 14}) {
		t.Errorf("unexpected message %+v", msg)
	}
	if d, ok := model.(App).Selected(); !ok || d.Day != 14 {
		t.Errorf("expected the selection to be kept, got %v, %v", d, ok)
	}
}

func TestArrowsMoveDate(t *testing.T) {
	app := testApp(language.AmericanEnglish)
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(App)
	if app.combo.input.Value() != "03/21/2015" {
		t.Errorf("expected the input to show next week, got %q", app.combo.input.Value())
	}
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	app = model.(App)
	if want := (datehelper.Date{Year: 2015, Month: time.April, Day: 21}); app.combo.date != want {
		t.Errorf("got %v, want %v", app.combo.date, want)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	d := datehelper.Date{Year: 2016, Month: time.January, Day: 31}
	if got := addMonths(d, 1); got != (datehelper.Date{Year: 2016, Month: time.February, Day: 29}) {
		t.Errorf("got %v", got)
	}
	if got := addMonths(d, -1); got != (datehelper.Date{Year: 2015, Month: time.December, Day: 31}) {
		t.Errorf("got %v", got)
	}
}

func TestMonthGridWeekStart(t *testing.T) {
	d := datehelper.Date{Year: 2015, Month: time.March, Day: 14}
	if grid := monthGrid(d, d, true); !strings.Contains(grid, "Su Mo Tu") {
		t.Errorf("expected a Sunday first grid:\n%s", grid)
	}
	if grid := monthGrid(d, d, false); !strings.Contains(grid, "Mo Tu We") {
		t.Errorf("expected a Monday first grid:\n%s", grid)
	}
}

func TestLocalePicker(t *testing.T) {
	app := testApp(language.AmericanEnglish)
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(App)
	if app.activeView != ViewLocales {
		t.Fatalf("expected ViewLocales, got %d", app.activeView)
	}

	model, _ = app.Update(LocalePickerMsg{Tag: language.MustParse("de-DE")})
	app = model.(App)
	if app.activeView != ViewCombo || app.combo.tag != language.MustParse("de-DE") {
		t.Errorf("expected the combo to switch locale, got view %d tag %s", app.activeView, app.combo.tag)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if model.(App).activeView != ViewCombo {
		t.Error("expected esc to close the picker")
	}
}

func TestAppHelpToggle(t *testing.T) {
	app := testApp(language.AmericanEnglish)
	msg := tea.KeyMsg{Type: tea.KeyF1}

	model, _ := app.Update(msg)
	a := model.(App)
	if !a.showHelp {
		t.Error("expected showHelp=true after pressing f1")
	}
	if !strings.Contains(a.View(), "Keybindings") {
		t.Error("expected the help overlay")
	}

	model, _ = a.Update(msg)
	a = model.(App)
	if a.showHelp {
		t.Error("expected showHelp=false after pressing f1 again")
	}
}
