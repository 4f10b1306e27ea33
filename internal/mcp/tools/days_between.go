package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gongahkia/calcombo/datehelper"
)

// DaysBetweenTool returns the MCP tool definition for days_between.
func DaysBetweenTool() mcp.Tool {
	return mcp.NewTool("days_between",
		mcp.WithDescription("Count the days from start to end; negative when end is earlier"),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start date, ISO or as typed in the locale")),
		mcp.WithString("end", mcp.Description("End date, defaults to today")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale tag")),
	)
}

type daysResult struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Days    int64  `json:"days"`
	SameDay bool   `json:"same_day"`
}

// HandleDaysBetween handles the days_between tool call.
func (e *Env) HandleDaysBetween(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	tag, err := e.locale(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start, err := e.date(args, "start", tag)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end := e.Helper.Today()
	if s, _ := args["end"].(string); s != "" {
		if end, err = e.date(args, "end", tag); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	return jsonResult(daysResult{
		Start:   start.String(),
		End:     end.String(),
		Days:    e.Helper.DaysBetween(start, end, tag),
		SameDay: datehelper.SameDay(start, end),
	}), nil
}

var _ server.ToolHandlerFunc = (&Env{}).HandleDaysBetween
