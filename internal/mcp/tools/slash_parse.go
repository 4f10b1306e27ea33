package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SlashParseTool returns the MCP tool definition for slash_parse.
func SlashParseTool() mcp.Tool {
	return mcp.NewTool("slash_parse",
		mcp.WithDescription("Parse delimited input against a delimited pattern such as yyyy/M/d"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Delimited input, eg. 15-3-14")),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("Delimited field pattern, eg. yyyy/M/d")),
		mcp.WithString("separators", mcp.Description("Accepted separators, defaults to the configured ones")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale tag")),
	)
}

// HandleSlashParse handles the slash_parse tool call.
func (e *Env) HandleSlashParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	text, _ := args["text"].(string)
	layout, _ := args["pattern"].(string)
	if text == "" || layout == "" {
		return mcp.NewToolResultError("text and pattern are required"), nil
	}
	tag, err := e.locale(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	seps := e.Separators
	if s, _ := args["separators"].(string); s != "" {
		seps = []rune(s)
	}

	d, err := e.Helper.SlashParseContext(ctx, text, layout, seps, tag)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return e.result(text, tag, d), nil
}

var _ server.ToolHandlerFunc = (&Env{}).HandleSlashParse
