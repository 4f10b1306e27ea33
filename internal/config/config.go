package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/pattern"
)

type Config struct {
	Locale         string            `toml:"locale"`
	Separators     string            `toml:"separators"`
	GenericPattern string            `toml:"generic_pattern"`
	Timezone       string            `toml:"timezone"`
	FreeForm       bool              `toml:"free_form"`
	Patterns       map[string]string `toml:"patterns"`
}

func DefaultConfig() *Config {
	return &Config{
		Locale:         "en-US",
		Separators:     "/-.",
		GenericPattern: locale.DefaultGenericPattern,
		Timezone:       "Local",
		Patterns:       map[string]string{},
	}
}

var overridePath string

// SetOverridePath makes Load read path instead of the XDG location.
func SetOverridePath(path string) {
	overridePath = path
}

func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		fmt.Fprintf(os.Stderr, "Warning: unknown config key '%s'\n", key)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale '%s': %w", cfg.Locale, err)
	}
	if cfg.Separators == "" {
		return fmt.Errorf("separators must not be empty")
	}
	if _, err := pattern.Compile(cfg.GenericPattern); err != nil {
		return fmt.Errorf("invalid generic_pattern: %w", err)
	}
	if _, err := loadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", cfg.Timezone, err)
	}
	for tag, p := range cfg.Patterns {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("invalid locale '%s' in [patterns]: %w", tag, err)
		}
		compiled, err := pattern.Compile(p)
		if err != nil {
			return fmt.Errorf("invalid pattern for '%s': %w", tag, err)
		}
		if !compiled.HasFields() {
			fmt.Fprintf(os.Stderr, "Warning: pattern '%s' for '%s' has no date fields\n", p, tag)
		}
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Tag returns the configured locale. validate has already checked it.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// SeparatorRunes returns the separators for the separator parser.
func (c *Config) SeparatorRunes() []rune {
	return []rune(c.Separators)
}

// Location returns the time zone used to decide what today is.
func (c *Config) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Registry returns the built-in patterns with the [patterns] overrides
// layered on top. The default registry is left untouched.
func (c *Config) Registry() *locale.Registry {
	overrides := make(map[language.Tag]string, len(c.Patterns))
	for tag, p := range c.Patterns {
		if t, err := language.Parse(tag); err == nil {
			overrides[t] = p
		}
	}
	return locale.NewRegistry(locale.Default(), overrides)
}

// Host returns a host using the configured patterns, generic pattern and
// time zone.
func (c *Config) Host(opts ...locale.Option) locale.Host {
	opts = append([]locale.Option{
		locale.WithRegistry(c.Registry()),
		locale.WithGenericPattern(c.GenericPattern),
		locale.WithLocation(c.Location()),
	}, opts...)
	return locale.NewHost(opts...)
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Init writes the default configuration to path unless a file is already
// there.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := DefaultConfig().Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "calcombo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calcombo")
}

func ConfigPath() string {
	if overridePath != "" {
		return overridePath
	}
	return filepath.Join(ConfigDir(), "config.toml")
}
