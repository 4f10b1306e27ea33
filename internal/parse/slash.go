package parse

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/civil"
	calerr "github.com/gongahkia/calcombo/internal/errors"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// DefaultSeparators are the delimiters the widget accepts between fields.
var DefaultSeparators = []rune{'/', '-', '.'}

// Slash splits s and layout on a common separator and assigns each value
// to the field its layout token names. The separator is the first rune of
// s found in seps; every other separator in layout is rewritten to it, so
// "yyyy/M/d" also reads "2015-3-14". Fields the layout leaves out take
// today's value.
func (p *Parser) Slash(ctx context.Context, s, layout string, seps []rune, tag language.Tag) (civil.Date, error) {
	log := ctxlog.Logger(ctx)
	if strings.TrimSpace(s) == "" {
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonEmptyInput, nil)
	}
	if len(seps) == 0 {
		seps = DefaultSeparators
	}
	active, ok := activeSeparator(s, seps)
	if !ok {
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonNoSeparatorFound, nil)
	}
	layout = strings.Map(func(r rune) rune {
		if isSep(r, seps) {
			return active
		}
		return r
	}, layout)
	values := split(s, active)
	letters := split(layout, active)
	if len(values) != len(letters) {
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonTokenCountMismatch, nil)
	}

	today := civil.Of(p.host.Now())
	f := slashFields{year: today.Year, month: int(today.Month), day: today.Day}
	for i, letter := range letters {
		if letter == "" {
			return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonUnknownFieldLetter, nil)
		}
		c, ok := pattern.ComponentOf(letter[0])
		if !ok {
			return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonUnknownFieldLetter, nil)
		}
		if !allDigits(values[i]) {
			return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonNonNumericToken, nil)
		}
		n, err := strconv.Atoi(values[i])
		if err != nil {
			return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonNonNumericToken, err)
		}
		f.set(c, n)
	}
	d, err := f.date()
	if err != nil {
		log.Debug("separator parse produced no date", "input", s, "layout", layout, "err", err)
		return civil.Date{}, err
	}
	log.Debug("separator parse", "input", s, "layout", layout, "separator", string(active), "date", d.String())
	return d, nil
}

func activeSeparator(s string, seps []rune) (rune, bool) {
	for _, r := range s {
		if isSep(r, seps) {
			return r, true
		}
	}
	return 0, false
}

func isSep(r rune, seps []rune) bool {
	for _, sep := range seps {
		if r == sep {
			return true
		}
	}
	return false
}

// split cuts s on sep, dropping empty pieces and any whitespace within a
// piece.
func split(s string, sep rune) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == sep })
	for i, part := range parts {
		parts[i] = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, part)
	}
	return parts
}

type slashFields struct {
	year, month, day int
	yday             int
	hasMonth, hasDay bool
	hasYday, bc      bool
}

// set stores n into the date component c. Time of day, week and zone
// components are accepted and ignored.
func (f *slashFields) set(c pattern.Component, n int) {
	switch c {
	case pattern.Era:
		f.bc = n == 0
	case pattern.Year:
		f.year = n
	case pattern.Month:
		f.month, f.hasMonth = n, true
	case pattern.DayOfMonth:
		f.day, f.hasDay = n, true
	case pattern.DayOfYear:
		f.yday, f.hasYday = n, true
	}
}

func (f *slashFields) date() (civil.Date, error) {
	year := f.year
	switch {
	case f.bc:
		year = 1 - year
	case year >= 0 && year < 100:
		year += 2000
	}
	if f.hasYday && !f.hasMonth && !f.hasDay {
		days := 365
		if datetime.IsLeap(year) {
			days = 366
		}
		if f.yday < 1 || f.yday > days {
			return civil.Date{}, &calerr.InvalidDateError{Year: year, Month: 1, Day: f.yday}
		}
		return civil.FromYearDay(year, f.yday), nil
	}
	return civil.New(year, time.Month(f.month), f.day)
}
