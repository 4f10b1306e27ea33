// Package parse turns user typed text into civil dates. BestEffort runs an
// ordered list of strategies and returns the first date any of them
// produces; Numeric handles bare digit strings; Slash splits delimited input
// against a delimited pattern.
package parse

import (
	"errors"
	"strings"

	"golang.org/x/text/width"

	"github.com/gongahkia/calcombo/internal/civil"
	calerr "github.com/gongahkia/calcombo/internal/errors"
	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// Parser holds the host services used by every parse. It carries no
// mutable state and is safe for concurrent use.
type Parser struct {
	host     locale.Host
	freeForm bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithFreeForm enables a final free-form strategy after digit salvage.
func WithFreeForm(enabled bool) Option {
	return func(p *Parser) {
		p.freeForm = enabled
	}
}

// New returns a Parser using host. A nil host means locale.NewHost().
func New(host locale.Host, opts ...Option) *Parser {
	if host == nil {
		host = locale.NewHost()
	}
	p := &Parser{host: host}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Host returns the parser's host services.
func (p *Parser) Host() locale.Host {
	return p.host
}

// Strict parses s against layout with no leniency at all.
func (p *Parser) Strict(s, layout string) (civil.Date, error) {
	in := clean(s)
	if in == "" {
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonEmptyInput, nil)
	}
	d, err := pattern.Parse(in, layout, pattern.Strict)
	if err != nil {
		var inv *calerr.InvalidDateError
		if errors.As(err, &inv) {
			return civil.Date{}, err
		}
		return civil.Date{}, calerr.ParseFailed(s, calerr.ReasonExhaustedStrategies, err)
	}
	return d.PromoteTwoDigitYear(), nil
}

// clean trims s and folds full-width digits and punctuation to ASCII.
func clean(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func onlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
