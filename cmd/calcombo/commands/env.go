package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/config"
	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/ui"
)

// hostOptions are appended to the configured host; tests pin the clock
// through it.
var hostOptions []locale.Option

// env is the per-invocation state every command works from.
type env struct {
	cfg    *config.Config
	helper *datehelper.Helper
	tag    language.Tag
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	tag := cfg.Tag()
	if s, _ := cmd.Flags().GetString("locale"); s != "" {
		if tag, err = language.Parse(s); err != nil {
			return nil, fmt.Errorf("invalid locale '%s': %w", s, err)
		}
	}

	freeForm := cfg.FreeForm
	if f, _ := cmd.Flags().GetBool("free-form"); f {
		freeForm = true
	}

	return &env{
		cfg:    cfg,
		helper: datehelper.New(cfg.Host(hostOptions...), datehelper.WithFreeForm(freeForm)),
		tag:    tag,
	}, nil
}

// dateOutput is the JSON shape of a single parsed date.
type dateOutput struct {
	Input         string `json:"input,omitempty"`
	Locale        string `json:"locale"`
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	DaysFromToday int64  `json:"days_from_today"`
	Relative      string `json:"relative"`
}

func (e *env) output(input string, d datehelper.Date) dateOutput {
	days := e.helper.DaysBetween(e.helper.Today(), d, e.tag)
	return dateOutput{
		Input:         input,
		Locale:        e.tag.String(),
		Date:          d.String(),
		Weekday:       d.Weekday().String(),
		DaysFromToday: days,
		Relative:      ui.Relative(days),
	}
}

// printDate writes d as one line of text or as indented JSON.
func (e *env) printDate(w io.Writer, input string, d datehelper.Date, format string) error {
	out := e.output(input, d)
	switch format {
	case "json":
		return writeJSON(w, out)
	case "", "text":
		_, err := fmt.Fprintf(w, "%s  %-9s  %s\n", ui.Bold(out.Date), out.Weekday, ui.RelativeColored(out.DaysFromToday))
		return err
	default:
		return fmt.Errorf("unknown output format '%s' (text or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
