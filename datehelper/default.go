package datehelper

import (
	"context"
	"time"

	"golang.org/x/text/language"
)

var std = New(nil)

// Default returns the Helper behind the package level functions.
func Default() *Helper {
	return std
}

// DaysBetween is Helper.DaysBetween on the default helper.
func DaysBetween(start, end Date, tag language.Tag) int64 {
	return std.DaysBetween(start, end, tag)
}

// DaysBetweenTimes is Helper.DaysBetweenTimes on the default helper.
func DaysBetweenTimes(start, end time.Time) int64 {
	return std.DaysBetweenTimes(start, end)
}

// IsToday reports whether d is today in the process time zone.
func IsToday(d Date, tag language.Tag) bool {
	return std.IsToday(d, tag)
}

// ParseStrict is Helper.ParseStrict on the default helper.
func ParseStrict(s, layout string, tag language.Tag) (Date, error) {
	return std.ParseStrict(s, layout, tag)
}

// ParseBestEffort is Helper.ParseBestEffort on the default helper.
func ParseBestEffort(s string, tag language.Tag) (Date, error) {
	return std.ParseBestEffort(s, tag)
}

// ParseBestEffortContext is Helper.ParseBestEffortContext on the default helper.
func ParseBestEffortContext(ctx context.Context, s string, tag language.Tag) (Date, error) {
	return std.ParseBestEffortContext(ctx, s, tag)
}

// ParseNumeric is Helper.ParseNumeric on the default helper.
func ParseNumeric(s string, tag language.Tag, usEUFallback bool) (Date, bool) {
	return std.ParseNumeric(s, tag, usEUFallback)
}

// SlashParse is Helper.SlashParse on the default helper.
func SlashParse(s, layout string, separators []rune, tag language.Tag) (Date, error) {
	return std.SlashParse(s, layout, separators, tag)
}

// SlashParseContext is Helper.SlashParseContext on the default helper.
func SlashParseContext(ctx context.Context, s, layout string, separators []rune, tag language.Tag) (Date, error) {
	return std.SlashParseContext(ctx, s, layout, separators, tag)
}

// ShortPattern returns the built-in short-date pattern for tag.
func ShortPattern(tag language.Tag) (string, bool) {
	return std.ShortPattern(tag)
}

// LocalePatternInfo is Helper.LocalePatternInfo on the default helper.
func LocalePatternInfo(tag language.Tag) (PatternInfo, bool) {
	return std.LocalePatternInfo(tag)
}
