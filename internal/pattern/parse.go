package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"

	"github.com/gongahkia/calcombo/internal/civil"
	calerr "github.com/gongahkia/calcombo/internal/errors"
)

// Mode selects how forgiving Parse is.
type Mode int

const (
	// Strict requires literals to match exactly and every field to be in
	// range; the fields must form a real date.
	Strict Mode = iota
	// Lenient ignores surrounding whitespace, lets any run of punctuation
	// stand in for a punctuation literal and rolls out of range months and
	// days over into the following month or year.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// ErrMismatch is wrapped by every error reporting input that does not fit
// the pattern.
var ErrMismatch = errors.New("input does not match pattern")

// maxDigits bounds a greedy numeric field so that it cannot overflow.
const maxDigits = 9

// Parse compiles src and parses s against it.
func Parse(s, src string, mode Mode) (civil.Date, error) {
	p, err := Compile(src)
	if err != nil {
		return civil.Date{}, err
	}
	return p.Parse(s, mode)
}

// Parse reads a date from s. Fields absent from the pattern default to
// 1970-01-01. Years are returned as typed, so "15" against "yy" yields the
// year 15. A lenient parse ignores whatever follows the date, such as a
// time of day, unless it continues a number the pattern stopped reading.
func (p Pattern) Parse(s string, mode Mode) (civil.Date, error) {
	in := s
	if mode == Lenient {
		in = strings.TrimSpace(s)
	}
	sc := scanner{in: in, pattern: p.src, mode: mode}
	f := fields{year: 1970, month: 1, day: 1}
	for i, t := range p.tokens {
		var err error
		if t.Kind == Literal {
			err = sc.literal(t.Text)
		} else {
			abut := i+1 < len(p.tokens) && p.tokens[i+1].numeric()
			err = f.read(&sc, t, abut)
		}
		if err != nil {
			return civil.Date{}, err
		}
	}
	if sc.pos != len(in) && (mode == Strict || isDigit(in[sc.pos])) {
		return civil.Date{}, sc.mismatch("unexpected trailing input %q", in[sc.pos:])
	}
	return f.date(mode)
}

type scanner struct {
	in      string
	pos     int
	pattern string
	mode    Mode
}

func (sc *scanner) mismatch(format string, args ...any) error {
	return fmt.Errorf("%w %q: %s at offset %d of %q", ErrMismatch, sc.pattern,
		fmt.Sprintf(format, args...), sc.pos, sc.in)
}

func (sc *scanner) rest() string {
	return sc.in[sc.pos:]
}

func (sc *scanner) literal(lit string) error {
	if sc.mode == Strict {
		if !strings.HasPrefix(sc.rest(), lit) {
			return sc.mismatch("expected %q", lit)
		}
		sc.pos += len(lit)
		return nil
	}
	if isSeparators(lit) {
		j := sc.pos
		for j < len(sc.in) && !isAlnum(sc.in[j]) {
			j++
		}
		if j == sc.pos && strings.TrimSpace(lit) != "" {
			return sc.mismatch("expected separator %q", lit)
		}
		sc.pos = j
		return nil
	}
	want := strings.TrimSpace(lit)
	j := sc.pos
	for j < len(sc.in) && sc.in[j] == ' ' {
		j++
	}
	if len(sc.in)-j < len(want) || !strings.EqualFold(sc.in[j:j+len(want)], want) {
		return sc.mismatch("expected %q", lit)
	}
	j += len(want)
	for j < len(sc.in) && sc.in[j] == ' ' {
		j++
	}
	sc.pos = j
	return nil
}

// number reads a decimal field. A field followed directly by another
// numeric field takes exactly width digits; otherwise it takes up to limit
// digits.
func (sc *scanner) number(width, limit int, abut bool) (int, error) {
	end := sc.pos
	if abut {
		end = sc.pos + width
		if end > len(sc.in) {
			return 0, sc.mismatch("expected %d digits", width)
		}
		for i := sc.pos; i < end; i++ {
			if !isDigit(sc.in[i]) {
				return 0, sc.mismatch("expected %d digits", width)
			}
		}
	} else {
		for end < len(sc.in) && isDigit(sc.in[end]) && end-sc.pos < limit {
			end++
		}
		if end == sc.pos {
			return 0, sc.mismatch("expected a number")
		}
	}
	n, err := strconv.Atoi(sc.in[sc.pos:end])
	if err != nil {
		return 0, sc.mismatch("%v", err)
	}
	sc.pos = end
	return n, nil
}

// name matches one of names, full or as a three letter abbreviation,
// ignoring case.
func (sc *scanner) name(names []string) (int, error) {
	rest := sc.rest()
	for i, n := range names {
		if len(rest) >= len(n) && strings.EqualFold(rest[:len(n)], n) {
			sc.pos += len(n)
			return i, nil
		}
	}
	for i, n := range names {
		if len(n) > 3 && len(rest) >= 3 && strings.EqualFold(rest[:3], n[:3]) {
			sc.pos += 3
			return i, nil
		}
	}
	return 0, sc.mismatch("expected one of %s", strings.Join(names, ", "))
}

func (sc *scanner) zone() error {
	j := sc.pos
	for j < len(sc.in) && (isAlnum(sc.in[j]) || strings.IndexByte("+-:", sc.in[j]) >= 0) {
		j++
	}
	if j == sc.pos {
		return sc.mismatch("expected a zone")
	}
	sc.pos = j
	return nil
}

var (
	monthNames   = make([]string, 12)
	weekdayNames = make([]string, 7)
	ampmNames    = []string{"AM", "PM"}
	eraNames     = []string{"BC", "AD"}
)

func init() {
	for i := range monthNames {
		monthNames[i] = time.Month(i + 1).String()
	}
	for i := range weekdayNames {
		weekdayNames[i] = time.Weekday(i).String()
	}
}

type fields struct {
	year, month, day, yday int
	hasMonth, hasDay       bool
	hasYday                bool
	bc                     bool
}

func (f *fields) read(sc *scanner, t Token, abut bool) error {
	if t.numeric() {
		n, err := sc.number(t.Width, digitLimit(t), abut)
		if err != nil {
			return err
		}
		switch t.Letter {
		case 'y':
			f.year = n
		case 'M':
			f.month, f.hasMonth = n, true
		case 'd':
			f.day, f.hasDay = n, true
		case 'D':
			f.yday, f.hasYday = n, true
		}
		return nil
	}
	switch t.Letter {
	case 'M':
		i, err := sc.name(monthNames)
		if err != nil {
			return err
		}
		f.month, f.hasMonth = i+1, true
	case 'E':
		_, err := sc.name(weekdayNames)
		return err
	case 'a':
		_, err := sc.name(ampmNames)
		return err
	case 'G':
		i, err := sc.name(eraNames)
		if err != nil {
			return err
		}
		f.bc = i == 0
	case 'z':
		return sc.zone()
	}
	return nil
}

// digitLimit bounds how many digits a free standing field may consume.
// Only years are unbounded, so "2015-03-14" cannot be read as month 2015
// against "M/d/yy".
func digitLimit(t Token) int {
	limit := 2
	switch t.Letter {
	case 'y':
		return maxDigits
	case 'D', 'S':
		limit = 3
	}
	return max(limit, t.Width)
}

func (f *fields) date(mode Mode) (civil.Date, error) {
	year := f.year
	if f.bc {
		year = 1 - year
	}
	if f.hasYday && !f.hasMonth && !f.hasDay {
		if mode == Strict && (f.yday < 1 || f.yday > daysInYear(year)) {
			return civil.Date{}, &calerr.InvalidDateError{Year: year, Month: 1, Day: f.yday}
		}
		return civil.FromYearDay(year, f.yday), nil
	}
	if mode == Lenient {
		return civil.Rollover(year, f.month, f.day), nil
	}
	if f.month < 1 || f.month > 12 || f.day < 1 ||
		f.day > int(datetime.DaysInMonth(year, datetime.Month(f.month))) {
		return civil.Date{}, &calerr.InvalidDateError{Year: year, Month: f.month, Day: f.day}
	}
	return civil.New(year, time.Month(f.month), f.day)
}

func daysInYear(year int) int {
	if datetime.IsLeap(year) {
		return 366
	}
	return 365
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c) || c >= 0x80
}

func isSeparators(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if isAlnum(lit[i]) {
			return false
		}
	}
	return true
}
