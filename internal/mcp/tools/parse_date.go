package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ParseDateTool returns the MCP tool definition for parse_date.
func ParseDateTool() mcp.Tool {
	return mcp.NewTool("parse_date",
		mcp.WithDescription("Parse a date typed by a user, the way a locale aware date picker would"),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to parse")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale tag, defaults to the configured locale")),
		mcp.WithString("mode", mcp.Description("best_effort (default), strict or numeric")),
		mcp.WithString("pattern", mcp.Description("Pattern for strict mode, eg. dd.MM.yyyy")),
		mcp.WithBoolean("us_eu_fallback", mcp.Description("Numeric mode: fall back to MMddyy[yy] or ddMMyy[yy]")),
	)
}

// HandleParseDate handles the parse_date tool call.
func (e *Env) HandleParseDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	text, _ := args["text"].(string)
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	tag, err := e.locale(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode, _ := args["mode"].(string)
	switch mode {
	case "", "best_effort":
		d, err := e.Helper.ParseBestEffortContext(ctx, text, tag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return e.result(text, tag, d), nil
	case "strict":
		layout, _ := args["pattern"].(string)
		if layout == "" {
			var ok bool
			if layout, ok = e.Helper.ShortPattern(tag); !ok {
				return mcp.NewToolResultError(fmt.Sprintf("no short date pattern for %s; pass pattern", tag)), nil
			}
		}
		d, err := e.Helper.ParseStrict(text, layout, tag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return e.result(text, tag, d), nil
	case "numeric":
		fallback, _ := args["us_eu_fallback"].(bool)
		d, ok := e.Helper.ParseNumeric(text, tag, fallback)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no numeric layout matches %q", text)), nil
		}
		return e.result(text, tag, d), nil
	}
	return mcp.NewToolResultError(fmt.Sprintf("unknown mode %q: must be best_effort, strict or numeric", mode)), nil
}

var _ server.ToolHandlerFunc = (&Env{}).HandleParseDate
