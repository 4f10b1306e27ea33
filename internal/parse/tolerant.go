package parse

import (
	"context"
	"errors"
	"time"

	cerrors "cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/araddon/dateparse"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/civil"
	calerr "github.com/gongahkia/calcombo/internal/errors"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// errNotApplicable marks a strategy that declined to run for this input.
var errNotApplicable = errors.New("strategy not applicable")

type strategy struct {
	name string
	run  func(p *Parser, in string, tag language.Tag) (civil.Date, error)
}

var strategies = []strategy{
	{"locale-short", (*Parser).localeShort},
	{"locale-long-year", (*Parser).localeLongYear},
	{"generic", (*Parser).generic},
	{"all-digits", (*Parser).digitString},
	{"digit-salvage", (*Parser).salvage},
	{"free-form", (*Parser).freeFormParse},
}

// BestEffort parses s using the strategies in order and returns the first
// date produced. Intermediate failures are collected and reported only if
// every strategy fails.
func (p *Parser) BestEffort(ctx context.Context, s string, tag language.Tag) (civil.Date, error) {
	log := ctxlog.Logger(ctx)
	in := clean(s)
	if in == "" {
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonEmptyInput, nil)
	}
	errs := &cerrors.M{}
	for _, st := range strategies {
		d, err := st.run(p, in, tag)
		if errors.Is(err, errNotApplicable) {
			continue
		}
		if err != nil {
			log.Debug("strategy failed", "strategy", st.name, "input", in, "locale", tag.String(), "err", err)
			errs.Append(err)
			continue
		}
		d = d.PromoteTwoDigitYear()
		log.Debug("strategy matched", "strategy", st.name, "input", in, "locale", tag.String(), "date", d.String())
		return d, nil
	}
	log.Debug("strategies exhausted", "input", in, "locale", tag.String())
	return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonExhaustedStrategies, errs.Err())
}

func (p *Parser) localeShort(in string, tag language.Tag) (civil.Date, error) {
	short, ok := p.host.ShortPattern(tag)
	if !ok {
		return civil.Date{}, errNotApplicable
	}
	return pattern.Parse(in, short, pattern.Lenient)
}

func (p *Parser) localeLongYear(in string, tag language.Tag) (civil.Date, error) {
	short, ok := p.host.ShortPattern(tag)
	if !ok {
		return civil.Date{}, errNotApplicable
	}
	long, widened := pattern.WidenYear(short)
	if !widened {
		return civil.Date{}, errNotApplicable
	}
	return pattern.Parse(in, long, pattern.Lenient)
}

func (p *Parser) generic(in string, _ language.Tag) (civil.Date, error) {
	return pattern.Parse(in, p.host.GenericPattern(), pattern.Lenient)
}

func (p *Parser) digitString(in string, tag language.Tag) (civil.Date, error) {
	if !allDigits(in) {
		return civil.Date{}, errNotApplicable
	}
	if d, err := pattern.Parse(in, p.host.GenericPattern(), pattern.Strict); err == nil {
		return d, nil
	}
	return p.numeric(in, tag, true)
}

func (p *Parser) salvage(in string, tag language.Tag) (civil.Date, error) {
	if allDigits(in) {
		return civil.Date{}, errNotApplicable
	}
	digits := onlyDigits(in)
	if digits == "" {
		return civil.Date{}, errNotApplicable
	}
	return p.numeric(digits, tag, true)
}

func (p *Parser) freeFormParse(in string, _ language.Tag) (civil.Date, error) {
	if !p.freeForm {
		return civil.Date{}, errNotApplicable
	}
	t, err := dateparse.ParseIn(in, time.UTC)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.Of(t), nil
}
