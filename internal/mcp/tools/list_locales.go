package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/pattern"
)

// ListLocalesTool returns the MCP tool definition for list_locales.
func ListLocalesTool() mcp.Tool {
	return mcp.NewTool("list_locales",
		mcp.WithDescription("List every locale with a known short date pattern"),
	)
}

// LocaleInfo describes one registered locale.
type LocaleInfo struct {
	Tag    string `json:"tag"`
	Family string `json:"family"`
	pattern.Info
}

// Locales returns every locale in r ordered by tag.
func Locales(r *locale.Registry) []LocaleInfo {
	all := r.All()
	out := make([]LocaleInfo, 0, len(all))
	for _, e := range all {
		out = append(out, LocaleInfo{
			Tag:    e.Tag.String(),
			Family: locale.FamilyOf(e.Tag).String(),
			Info:   pattern.Derive(e.ShortPattern),
		})
	}
	return out
}

// HandleListLocales handles the list_locales tool call.
func (e *Env) HandleListLocales(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(Locales(locale.RegistryOf(e.Helper.Host()))), nil
}

var _ server.ToolHandlerFunc = (&Env{}).HandleListLocales
