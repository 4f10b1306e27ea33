package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gongahkia/calcombo/datehelper"
)

// FormatDateTool returns the MCP tool definition for format_date.
func FormatDateTool() mcp.Tool {
	return mcp.NewTool("format_date",
		mcp.WithDescription("Render a date with a pattern or with a locale's short date pattern"),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date to render, ISO or as typed in the locale")),
		mcp.WithString("pattern", mcp.Description("Pattern, eg. EEEE d MMMM yyyy; defaults to the locale's short pattern")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale tag")),
	)
}

// HandleFormatDate handles the format_date tool call.
func (e *Env) HandleFormatDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	tag, err := e.locale(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := e.date(args, "date", tag)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	layout, _ := args["pattern"].(string)
	if layout == "" {
		var ok bool
		if layout, ok = e.Helper.ShortPattern(tag); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no short date pattern for %s; pass pattern", tag)), nil
		}
	}
	return mcp.NewToolResultText(datehelper.Format(d, layout)), nil
}

var _ server.ToolHandlerFunc = (&Env{}).HandleFormatDate
