package locale

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestLookupExact(t *testing.T) {
	e, ok := Lookup(language.AmericanEnglish)
	if !ok {
		t.Fatal("expected en-US to be registered")
	}
	if e.ShortPattern != "M/d/yy" {
		t.Errorf("expected M/d/yy, got %s", e.ShortPattern)
	}
}

func TestLookupFallsBackWithinLanguage(t *testing.T) {
	e, ok := Lookup(language.German)
	if !ok {
		t.Fatal("expected de to match a registered German locale")
	}
	if e.ShortPattern != "dd.MM.yy" {
		t.Errorf("expected dd.MM.yy, got %s", e.ShortPattern)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, tag := range []string{"zu-ZA", "sw-KE", "ar-EG", "th-TH", "vi-VN"} {
		if e, ok := Lookup(language.MustParse(tag)); ok {
			t.Errorf("expected no match for %s, got %+v", tag, e)
		}
	}
}

func TestLookupSiblingRegion(t *testing.T) {
	r := NewRegistry(nil, map[language.Tag]string{
		language.MustParse("de-DE"): "dd.MM.yy",
		language.MustParse("en-AU"): "d/MM/yy",
	})
	e, ok := r.Lookup(language.MustParse("de-AT"))
	if !ok || e.ShortPattern != "dd.MM.yy" {
		t.Errorf("expected de-AT to fall back to de-DE, got %+v, %v", e, ok)
	}
	if e, ok := r.Lookup(language.MustParse("zu-ZA")); ok {
		t.Errorf("expected no match for zu-ZA, got %+v", e)
	}
}

func TestNewRegistryIsIndependent(t *testing.T) {
	tag := language.MustParse("is-IS")
	r := NewRegistry(Default(), map[language.Tag]string{tag: "d.M.yyyy"})
	if e, ok := r.Lookup(tag); !ok || e.ShortPattern != "d.M.yyyy" {
		t.Fatalf("unexpected entry %+v, %v", e, ok)
	}
	if _, ok := Lookup(tag); ok {
		t.Error("expected the default registry to be unchanged")
	}
	if _, ok := r.Lookup(language.AmericanEnglish); !ok {
		t.Error("expected the built-in patterns to be inherited")
	}
	h := NewHost(WithRegistry(r))
	if p, ok := h.ShortPattern(tag); !ok || p != "d.M.yyyy" {
		t.Errorf("expected the host to read from its registry, got %q, %v", p, ok)
	}
	if RegistryOf(h) != r || RegistryOf(&Fake{}) != Default() {
		t.Error("RegistryOf returned the wrong registry")
	}
}

func TestRegisterOverrides(t *testing.T) {
	tag := language.MustParse("eo")
	Register(tag, "yyyy-MM-dd")
	e, ok := Lookup(tag)
	if !ok || e.ShortPattern != "yyyy-MM-dd" {
		t.Fatalf("unexpected entry %+v, %v", e, ok)
	}
	Register(tag, "d/M/yyyy")
	e, _ = Lookup(tag)
	if e.ShortPattern != "d/M/yyyy" {
		t.Errorf("expected override, got %s", e.ShortPattern)
	}
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	if len(all) < len(builtin) {
		t.Fatalf("expected at least %d entries, got %d", len(builtin), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Tag.String() > all[i].Tag.String() {
			t.Errorf("entries out of order: %s > %s", all[i-1].Tag, all[i].Tag)
		}
	}
}

func TestFamilyOf(t *testing.T) {
	for tag, want := range map[string]Family{
		"en-US": FamilyUS,
		"en":    FamilyOther,
		"en-GB": FamilyOther,
		"de-DE": FamilyOther,
		"es-US": FamilyOther,
	} {
		if got := FamilyOf(language.MustParse(tag)); got != want {
			t.Errorf("FamilyOf(%s) = %v, want %v", tag, got, want)
		}
	}
}

func TestHostClockAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	instant := time.Date(2015, 3, 14, 2, 0, 0, 0, time.UTC)
	h := NewHost(WithLocation(loc), WithClock(func() time.Time { return instant }))
	now := h.Now()
	if now.Location() != loc {
		t.Errorf("expected host location, got %v", now.Location())
	}
	if now.Day() != 13 {
		t.Errorf("expected the 13th in UTC-5, got %d", now.Day())
	}
	if h.GenericPattern() != DefaultGenericPattern {
		t.Errorf("unexpected generic pattern %s", h.GenericPattern())
	}
	if NewHost(WithGenericPattern("dd MMM yyyy")).GenericPattern() != "dd MMM yyyy" {
		t.Error("generic pattern option ignored")
	}
}

func TestFake(t *testing.T) {
	f := &Fake{Patterns: map[string]string{"en-US": "M/d/yy"}}
	if p, ok := f.ShortPattern(language.AmericanEnglish); !ok || p != "M/d/yy" {
		t.Errorf("got %q, %v", p, ok)
	}
	if _, ok := f.ShortPattern(language.German); ok {
		t.Error("unexpected pattern for de")
	}
	if f.GenericPattern() != DefaultGenericPattern {
		t.Error("expected default generic pattern")
	}
}
