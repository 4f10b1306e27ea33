package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/ui"
)

// Env carries what every tool handler needs: the date helper and the
// defaults taken from the configuration.
type Env struct {
	Helper     *datehelper.Helper
	Locale     language.Tag
	Separators []rune
}

// dateResult is the JSON shape every date-producing tool returns.
type dateResult struct {
	Input         string `json:"input,omitempty"`
	Locale        string `json:"locale"`
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	DaysFromToday int64  `json:"days_from_today"`
	Relative      string `json:"relative"`
}

func (e *Env) locale(args map[string]any) (language.Tag, error) {
	s, _ := args["locale"].(string)
	if s == "" {
		return e.Locale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// date reads an argument as an ISO date, falling back to a best-effort
// parse in tag.
func (e *Env) date(args map[string]any, key string, tag language.Tag) (datehelper.Date, error) {
	s, _ := args[key].(string)
	if s == "" {
		return datehelper.Date{}, fmt.Errorf("%s is required", key)
	}
	return e.Helper.ParseBestEffort(s, tag)
}

func (e *Env) result(input string, tag language.Tag, d datehelper.Date) *mcp.CallToolResult {
	days := e.Helper.DaysBetween(e.Helper.Today(), d, tag)
	return jsonResult(dateResult{
		Input:         input,
		Locale:        tag.String(),
		Date:          d.String(),
		Weekday:       d.Weekday().String(),
		DaysFromToday: days,
		Relative:      ui.Relative(days),
	})
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(data))
}
