package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"

	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/pattern"
)

const LocaleURIPrefix = "calcombo://locale/"

type localeState struct {
	Requested string `json:"requested"`
	Matched   string `json:"matched"`
	Family    string `json:"family"`
	pattern.Info
}

// LocaleHandler returns a handler reporting the short date patterns r
// holds for the tag named in the resource URI.
func LocaleHandler(r *locale.Registry) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return readLocale(r, request)
	}
}

func readLocale(r *locale.Registry, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	raw := strings.TrimPrefix(uri, LocaleURIPrefix)

	tag, err := language.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", raw, err)
	}
	e, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("no short date pattern for %s", tag)
	}

	state := localeState{
		Requested: tag.String(),
		Matched:   e.Tag.String(),
		Family:    locale.FamilyOf(tag).String(),
		Info:      pattern.Derive(e.ShortPattern),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
