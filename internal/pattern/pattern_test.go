package pattern

import (
	"errors"
	"testing"
	"time"

	"github.com/gongahkia/calcombo/internal/civil"
	calerr "github.com/gongahkia/calcombo/internal/errors"
)

func TestCompileTokens(t *testing.T) {
	p, err := Compile("M/d/yy")
	if err != nil {
		t.Fatal(err)
	}
	toks := p.Tokens()
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Letter != 'M' || toks[0].Width != 1 {
		t.Errorf("unexpected first token %v", toks[0])
	}
	if toks[1].Kind != Literal || toks[1].Text != "/" {
		t.Errorf("unexpected separator %v", toks[1])
	}
	if toks[4].Letter != 'y' || toks[4].Width != 2 {
		t.Errorf("unexpected year token %v", toks[4])
	}
	if p.FieldsOnly() != "Mdyy" {
		t.Errorf("expected Mdyy, got %s", p.FieldsOnly())
	}
}

func TestCompileQuotes(t *testing.T) {
	p, err := Compile("d 'de' MMMM 'o''clock'")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Format(civil.MustNew(2015, time.March, 14)); got != "14 de March o'clock" {
		t.Errorf("got %q", got)
	}
	if _, err := Compile("d 'de"); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestCompileRejectsUnknownLetters(t *testing.T) {
	if _, err := Compile("yyyy-MM-dd'T'HH:mm"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := Compile("yyyy-MM-ddQ"); err == nil {
		t.Error("expected error for Q")
	}
	if p := MustCompile("--"); p.HasFields() {
		t.Error("literal-only pattern has no fields")
	}
}

func TestComponentOf(t *testing.T) {
	for letter, want := range map[byte]Component{
		'G': Era, 'y': Year, 'M': Month, 'd': DayOfMonth, 'E': DayOfWeek,
		'D': DayOfYear, 'F': DayOfWeekInMonth, 'h': Hour, 'm': Minute,
		's': Second, 'S': Millisecond, 'w': WeekOfYear, 'W': WeekOfMonth,
		'a': AmPm, 'k': HourOfDay, 'z': ZoneOffset,
	} {
		got, ok := ComponentOf(letter)
		if !ok || got != want {
			t.Errorf("%c: got %v, %v", letter, got, ok)
		}
	}
	if _, ok := ComponentOf('K'); ok {
		t.Error("K has no component")
	}
	if _, ok := ComponentOf('x'); ok {
		t.Error("x has no component")
	}
}

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"M/d/yy":      "MM/dd/yy",
		"dd.MM.yy":    "dd.MM.yy",
		"d.M.yyyy":    "dd.MM.yyyy",
		"yy. M. d":    "yy. MM. dd",
		"MMM d, y":    "MMM dd, yy",
		"yyyy-MM-dd":  "yyyy-MM-dd",
		"Mdyy":        "MMddyy",
		"yyyy.MM.dd.": "yyyy.MM.dd.",
	} {
		got := Normalize(in)
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent on %q: %q", got, again)
		}
	}
}

func TestDerive(t *testing.T) {
	info := Derive("Mdyy")
	if info.ShortYear != "MMddyy" || info.LongYear != "MMddyyyy" {
		t.Errorf("unexpected variants %+v", info)
	}
	info = Derive("ddMMyyyy")
	if info.ShortYear != "ddMMyy" || info.LongYear != "ddMMyyyy" {
		t.Errorf("unexpected variants %+v", info)
	}
	if info.ForLength(6) != "ddMMyy" || info.ForLength(8) != "ddMMyyyy" {
		t.Errorf("ForLength picked the wrong variant")
	}
}

func TestWidenYear(t *testing.T) {
	if got, ok := WidenYear("M/d/yy"); !ok || got != "M/d/yyyy" {
		t.Errorf("got %q, %v", got, ok)
	}
	if _, ok := WidenYear("yyyy-MM-dd"); ok {
		t.Error("four-digit year must not be widened")
	}
}

func TestFormat(t *testing.T) {
	d := civil.MustNew(2015, time.March, 4)
	for src, want := range map[string]string{
		"M/d/yy":         "3/4/15",
		"MM/dd/yyyy":     "03/04/2015",
		"dd.MM.yy":       "04.03.15",
		"EEE, MMM d y":   "Wed, Mar 4 2015",
		"EEEE MMMM dd G": "Wednesday March 04 AD",
		"D":              "63",
		"yyyy-MM-dd":     "2015-03-04",
	} {
		if got := Format(d, src); got != want {
			t.Errorf("Format(%q) = %q, want %q", src, got, want)
		}
	}
	if got := Format(d, "yyyy/MM/dd Q"); got != "2015/03/04 Q" {
		t.Errorf("unknown letters should pass through, got %q", got)
	}
}

func TestParseStrict(t *testing.T) {
	want := civil.MustNew(2015, time.March, 14)
	for _, tc := range []struct{ in, src string }{
		{"03/14/2015", "MM/dd/yyyy"},
		{"3/14/2015", "M/d/yy"},
		{"03142015", "MMddyyyy"},
		{"14032015", "ddMMyyyy"},
		{"2015-03-14", "yyyy-MM-dd"},
		{"Sat, Mar 14 2015", "EEE, MMM d yyyy"},
		{"14 March 2015", "d MMMM yyyy"},
	} {
		got, err := Parse(tc.in, tc.src, Strict)
		if err != nil {
			t.Errorf("Parse(%q, %q): %v", tc.in, tc.src, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q, %q) = %v", tc.in, tc.src, got)
		}
	}
}

func TestParseStrictKeepsTwoDigitYear(t *testing.T) {
	got, err := Parse("031415", "MMddyy", Strict)
	if err != nil {
		t.Fatal(err)
	}
	if got != civil.MustNew(15, time.March, 14) {
		t.Errorf("got %v", got)
	}
}

func TestParseStrictFailures(t *testing.T) {
	for _, tc := range []struct{ in, src string }{
		{"03-14-2015", "MM/dd/yyyy"},
		{"03/14/2015 ", "MM/dd/yyyy"},
		{"0314", "MMddyyyy"},
		{"", "MM/dd/yyyy"},
		{"03/14/", "MM/dd/yyyy"},
	} {
		if _, err := Parse(tc.in, tc.src, Strict); !errors.Is(err, ErrMismatch) {
			t.Errorf("Parse(%q, %q): expected mismatch, got %v", tc.in, tc.src, err)
		}
	}
}

func TestParseStrictInvalidDate(t *testing.T) {
	for _, tc := range []struct{ in, src string }{
		{"14032015", "MMddyyyy"},
		{"02/30/2015", "MM/dd/yyyy"},
		{"02/29/2015", "MM/dd/yyyy"},
		{"2015-366", "yyyy-D"},
	} {
		_, err := Parse(tc.in, tc.src, Strict)
		if !errors.Is(err, calerr.ErrInvalidDate) {
			t.Errorf("Parse(%q, %q): expected invalid date, got %v", tc.in, tc.src, err)
		}
	}
}

func TestParseLenientRollsOver(t *testing.T) {
	for _, tc := range []struct {
		in, src string
		want    civil.Date
	}{
		{"13/1/2015", "M/d/yy", civil.MustNew(2016, time.January, 1)},
		{"2/30/2015", "M/d/yy", civil.MustNew(2015, time.March, 2)},
		{"  3/14/2015  ", "M/d/yy", civil.MustNew(2015, time.March, 14)},
		{"14/03/15", "dd.MM.yy", civil.MustNew(15, time.March, 14)},
		{"14 - 03 - 15", "dd.MM.yy", civil.MustNew(15, time.March, 14)},
		{"15. 3. 14", "yy. M. d", civil.MustNew(15, time.March, 14)},
		{"2015-060", "yyyy-DDD", civil.MustNew(2015, time.March, 1)},
	} {
		got, err := Parse(tc.in, tc.src, Lenient)
		if err != nil {
			t.Errorf("Parse(%q, %q): %v", tc.in, tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q, %q) = %v, want %v", tc.in, tc.src, got, tc.want)
		}
	}
}

func TestParseLenientStillRejectsGarbage(t *testing.T) {
	for _, tc := range []struct{ in, src string }{
		{"03142015", "M/d/yy"},
		{"foo-14-03-2015-bar", "M/d/yy"},
		{"20150314", "yyMMdd"},
		{"3x14x2015", "M/d/yy"},
		{"2015-03-14", "M/d/yy"},
	} {
		if _, err := Parse(tc.in, tc.src, Lenient); err == nil {
			t.Errorf("Parse(%q, %q): expected an error", tc.in, tc.src)
		}
	}
}

func TestParseLenientIgnoresTrailingText(t *testing.T) {
	want := civil.MustNew(2015, time.March, 14)
	for _, in := range []string{"3/14/2015 10:30", "3/14/15 foo", "3/14/2015, 9am"} {
		got, err := Parse(in, "M/d/yy", Lenient)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got.PromoteTwoDigitYear() != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := Parse("3/14/2015 10:30", "M/d/yyyy", Strict); err == nil {
		t.Error("expected a strict parse to reject trailing input")
	}
}

func TestParseEra(t *testing.T) {
	got, err := Parse("44 BC", "y G", Strict)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year != -43 {
		t.Errorf("expected astronomical year -43, got %d", got.Year)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, src := range []string{"MM/dd/yyyy", "dd.MM.yyyy", "yyyy-MM-dd", "d MMMM yyyy", "EEE d MMM yyyy"} {
		p := MustCompile(src)
		d := civil.MustNew(1999, time.December, 31)
		for i := 0; i < 800; i += 7 {
			want := d.AddDays(i)
			got, err := p.Parse(p.Format(want), Strict)
			if err != nil {
				t.Fatalf("%s: %v", src, err)
			}
			if got != want {
				t.Errorf("%s: got %v, want %v", src, got, want)
			}
		}
	}
}
