package parse

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/civil"
	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// Digit-only layouts tried when the locale's own layout does not fit.
var (
	usLayouts    = map[int]string{6: "MMddyy", 8: "MMddyyyy"}
	otherLayouts = map[int]string{6: "ddMMyy", 8: "ddMMyyyy"}
)

var errNoMatch = errors.New("no numeric layout matched")

// Numeric parses a six or eight digit string. It first tries the locale's
// short-date pattern with its separators removed, picking the two- or
// four-digit year variant by length, and then, if usEUFallback is set,
// MMddyy[yy] for en-US or ddMMyy[yy] for everyone else. Any other length
// never matches.
func (p *Parser) Numeric(s string, tag language.Tag, usEUFallback bool) (civil.Date, bool) {
	d, err := p.numeric(s, tag, usEUFallback)
	return d, err == nil
}

func (p *Parser) numeric(s string, tag language.Tag, usEUFallback bool) (civil.Date, error) {
	if (len(s) != 6 && len(s) != 8) || !allDigits(s) {
		return civil.Date{}, errNoMatch
	}
	var errs []error
	if layout, ok := p.localeDigitLayout(tag, len(s)); ok {
		d, err := pattern.Parse(s, layout, pattern.Strict)
		if err == nil {
			return d.PromoteTwoDigitYear(), nil
		}
		errs = append(errs, err)
	}
	if usEUFallback {
		layouts := otherLayouts
		if p.host.Family(tag) == locale.FamilyUS {
			layouts = usLayouts
		}
		d, err := pattern.Parse(s, layouts[len(s)], pattern.Strict)
		if err == nil {
			return d.PromoteTwoDigitYear(), nil
		}
		errs = append(errs, err)
	}
	return civil.Date{}, errors.Join(append([]error{errNoMatch}, errs...)...)
}

// localeDigitLayout returns the locale's short-date pattern reduced to its
// fields, normalized and sized for an n digit input.
func (p *Parser) localeDigitLayout(tag language.Tag, n int) (string, bool) {
	short, ok := p.host.ShortPattern(tag)
	if !ok {
		return "", false
	}
	compiled, err := pattern.Compile(short)
	if err != nil || !compiled.HasFields() {
		return "", false
	}
	return pattern.Derive(compiled.FieldsOnly()).ForLength(n), true
}
