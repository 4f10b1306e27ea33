// Package datehelper is the date logic behind a calendar combo box: it
// counts days between civil dates, formats them, and turns whatever the user
// typed into a date using the conventions of their locale.
//
// The package level functions use a Helper built on the default host, which
// reads the process time zone and the built-in locale table. Build your own
// Helper with New to inject a clock, a time zone or a fake host.
package datehelper

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/civil"
	"github.com/gongahkia/calcombo/internal/daycalc"
	calerr "github.com/gongahkia/calcombo/internal/errors"
	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/parse"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// Date is a proleptic Gregorian calendar day with no time or zone.
type Date = civil.Date

// PatternInfo is a locale's short-date pattern with its normalized
// two-digit and four-digit year variants.
type PatternInfo = pattern.Info

// Host supplies locale patterns and the wall clock.
type Host = locale.Host

type (
	ParseFailedError = calerr.ParseFailedError
	InvalidDateError = calerr.InvalidDateError
	Reason           = calerr.Reason
)

const (
	ReasonEmptyInput          = calerr.ReasonEmptyInput
	ReasonNoSeparatorFound    = calerr.ReasonNoSeparatorFound
	ReasonTokenCountMismatch  = calerr.ReasonTokenCountMismatch
	ReasonUnknownFieldLetter  = calerr.ReasonUnknownFieldLetter
	ReasonNonNumericToken     = calerr.ReasonNonNumericToken
	ReasonExhaustedStrategies = calerr.ReasonExhaustedStrategies
)

var (
	ErrParseFailed = calerr.ErrParseFailed
	ErrInvalidDate = calerr.ErrInvalidDate
)

// DefaultSeparators are the field delimiters SlashParse uses when none are
// given.
var DefaultSeparators = parse.DefaultSeparators

// NewDate returns the date year-month-day or an *InvalidDateError.
func NewDate(year int, month time.Month, day int) (Date, error) {
	return civil.New(year, month, day)
}

// Helper binds the date operations to a host.
type Helper struct {
	host   locale.Host
	parser *parse.Parser
}

// Option configures a Helper.
type Option func(*options)

type options struct {
	freeForm bool
}

// WithFreeForm adds a final free-form strategy to ParseBestEffort that
// accepts inputs such as "March 14, 2015".
func WithFreeForm(enabled bool) Option {
	return func(o *options) {
		o.freeForm = enabled
	}
}

// New returns a Helper for host. A nil host selects the default one.
func New(host Host, opts ...Option) *Helper {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := parse.New(host, parse.WithFreeForm(o.freeForm))
	return &Helper{host: p.Host(), parser: p}
}

// Host returns the host h was built with.
func (h *Helper) Host() Host {
	return h.host
}

// DaysBetween returns end minus start in civil days. The count is taken on
// the proleptic Gregorian calendar, so neither daylight saving nor a zone
// skipping a whole day can shift it, and the locale does not change it.
func (h *Helper) DaysBetween(start, end Date, _ language.Tag) int64 {
	return daycalc.DaysBetween(start, end, h.host.Now().Location())
}

// DaysBetweenTimes is DaysBetween for the civil dates of two instants, each
// taken in its own location.
func (h *Helper) DaysBetweenTimes(start, end time.Time) int64 {
	return daycalc.DaysBetween(civil.Of(start), civil.Of(end), h.host.Now().Location())
}

// IsToday reports whether d is today in the host time zone.
func (h *Helper) IsToday(d Date, _ language.Tag) bool {
	return daycalc.IsToday(d, h.host.Now())
}

// Today returns the current date in the host time zone.
func (h *Helper) Today() Date {
	return civil.Of(h.host.Now())
}

// ParseStrict parses s against layout exactly: literals must match, no
// input may be left over and the fields must form a real date.
func (h *Helper) ParseStrict(s, layout string, _ language.Tag) (Date, error) {
	return h.parser.Strict(s, layout)
}

// ParseBestEffort tries, in order, the locale's short pattern, the same
// pattern with a four-digit year, the host's generic pattern, a strict
// digits-only pass and finally the digits salvaged from s.
func (h *Helper) ParseBestEffort(s string, tag language.Tag) (Date, error) {
	return h.parser.BestEffort(context.Background(), s, tag)
}

// ParseBestEffortContext is ParseBestEffort logging each strategy to the
// ctxlog logger carried by ctx.
func (h *Helper) ParseBestEffortContext(ctx context.Context, s string, tag language.Tag) (Date, error) {
	return h.parser.BestEffort(ctx, s, tag)
}

// ParseNumeric parses a six or eight digit string. With usEUFallback set it
// falls back to month-first order for en-US and day-first order otherwise.
func (h *Helper) ParseNumeric(s string, tag language.Tag, usEUFallback bool) (Date, bool) {
	return h.parser.Numeric(s, tag, usEUFallback)
}

// SlashParse splits s and layout on the first of separators found in s.
// A nil separators slice means DefaultSeparators.
func (h *Helper) SlashParse(s, layout string, separators []rune, tag language.Tag) (Date, error) {
	return h.parser.Slash(context.Background(), s, layout, separators, tag)
}

// SlashParseContext is SlashParse with logging through ctx.
func (h *Helper) SlashParseContext(ctx context.Context, s, layout string, separators []rune, tag language.Tag) (Date, error) {
	return h.parser.Slash(ctx, s, layout, separators, tag)
}

// ShortPattern returns the host's short-date pattern for tag.
func (h *Helper) ShortPattern(tag language.Tag) (string, bool) {
	return h.host.ShortPattern(tag)
}

// LocalePatternInfo derives the normalized short- and long-year patterns
// for tag.
func (h *Helper) LocalePatternInfo(tag language.Tag) (PatternInfo, bool) {
	short, ok := h.host.ShortPattern(tag)
	if !ok {
		return PatternInfo{}, false
	}
	return pattern.Derive(short), true
}

// SameDay reports whether a and b are the same calendar day.
func SameDay(a, b Date) bool {
	return daycalc.SameDay(a, b)
}

// Format renders d with layout. Letters it does not know are copied
// through unchanged.
func Format(d Date, layout string) string {
	return pattern.Format(d, layout)
}

// Normalize widens single letter month, day and year fields to two
// letters.
func Normalize(layout string) string {
	return pattern.Normalize(layout)
}
