// Package locale supplies the host services the date parser relies on: a
// locale's short-date pattern, the locale-independent fallback pattern, the
// US/rest-of-world split used for all-digit input, and the wall clock.
package locale

import (
	"time"

	"golang.org/x/text/language"
)

// Family splits locales by the order in which they write month and day.
type Family int

const (
	// FamilyOther writes the day first.
	FamilyOther Family = iota
	// FamilyUS writes the month first.
	FamilyUS
)

func (f Family) String() string {
	if f == FamilyUS {
		return "us"
	}
	return "other"
}

// DefaultGenericPattern is used when no generic pattern is configured.
const DefaultGenericPattern = "yyyy-MM-dd"

// Host is the capability the parser needs from its environment. It is an
// interface so that tests can supply a fixed clock and pattern table.
type Host interface {
	// ShortPattern returns the short-date pattern for tag.
	ShortPattern(tag language.Tag) (string, bool)
	// GenericPattern returns the host's locale-independent date pattern.
	GenericPattern() string
	// Family reports whether tag writes dates month first.
	Family(tag language.Tag) Family
	// Now returns the current time in the host's time zone.
	Now() time.Time
}

// FamilyOf returns FamilyUS for exactly en-US and FamilyOther for every
// other tag, including a bare "en".
func FamilyOf(tag language.Tag) Family {
	base, bconf := tag.Base()
	region, rconf := tag.Region()
	if bconf == language.Exact && rconf == language.Exact &&
		base.String() == "en" && region.String() == "US" {
		return FamilyUS
	}
	return FamilyOther
}

type host struct {
	registry *Registry
	generic  string
	loc      *time.Location
	clock    func() time.Time
}

// Option configures the host returned by NewHost.
type Option func(*host)

// WithGenericPattern sets the locale-independent pattern.
func WithGenericPattern(p string) Option {
	return func(h *host) {
		if p != "" {
			h.generic = p
		}
	}
}

// WithLocation sets the time zone used to decide what today is.
func WithLocation(loc *time.Location) Option {
	return func(h *host) {
		if loc != nil {
			h.loc = loc
		}
	}
}

// WithRegistry makes the host read short-date patterns from r instead of
// the default registry.
func WithRegistry(r *Registry) Option {
	return func(h *host) {
		if r != nil {
			h.registry = r
		}
	}
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(h *host) {
		h.clock = clock
	}
}

// NewHost returns a Host backed by the package registry.
func NewHost(opts ...Option) Host {
	h := &host{registry: defaultRegistry, generic: DefaultGenericPattern, loc: time.Local, clock: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *host) ShortPattern(tag language.Tag) (string, bool) {
	e, ok := h.registry.Lookup(tag)
	if !ok {
		return "", false
	}
	return e.ShortPattern, true
}

// Registry returns the registry the host reads patterns from.
func (h *host) Registry() *Registry {
	return h.registry
}

// RegistryOf returns the registry behind h, or the default registry when
// h does not expose one.
func RegistryOf(h Host) *Registry {
	if rh, ok := h.(interface{ Registry() *Registry }); ok {
		return rh.Registry()
	}
	return defaultRegistry
}

func (h *host) GenericPattern() string {
	return h.generic
}

func (h *host) Family(tag language.Tag) Family {
	return FamilyOf(tag)
}

func (h *host) Now() time.Time {
	return h.clock().In(h.loc)
}

// Fake is a Host with a fixed pattern table and clock.
type Fake struct {
	Patterns map[string]string
	Generic  string
	Clock    time.Time
}

func (f *Fake) ShortPattern(tag language.Tag) (string, bool) {
	p, ok := f.Patterns[tag.String()]
	return p, ok
}

func (f *Fake) GenericPattern() string {
	if f.Generic == "" {
		return DefaultGenericPattern
	}
	return f.Generic
}

func (f *Fake) Family(tag language.Tag) Family {
	return FamilyOf(tag)
}

func (f *Fake) Now() time.Time {
	return f.Clock
}
