package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gongahkia/calcombo/internal/locale"
	"github.com/gongahkia/calcombo/internal/mcp/resources"
	"github.com/gongahkia/calcombo/internal/mcp/tools"
)

// NewServer creates and configures the MCP server with all tools and resources.
func NewServer(version string, env *tools.Env) *server.MCPServer {
	srv := server.NewMCPServer(
		"calcombo",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	srv.AddTool(tools.ParseDateTool(), env.HandleParseDate)
	srv.AddTool(tools.SlashParseTool(), env.HandleSlashParse)
	srv.AddTool(tools.DaysBetweenTool(), env.HandleDaysBetween)
	srv.AddTool(tools.FormatDateTool(), env.HandleFormatDate)
	srv.AddTool(tools.ListLocalesTool(), env.HandleListLocales)

	srv.AddResource(
		mcp.NewResource(resources.ConfigURI, "Configuration",
			mcp.WithResourceDescription("Current calcombo configuration"),
			mcp.WithMIMEType("application/json"),
		),
		resources.HandleConfig,
	)
	srv.AddResourceTemplate(
		mcp.NewResourceTemplate(resources.LocaleURIPrefix+"{tag}", "Locale Patterns",
			mcp.WithTemplateDescription("Short date pattern and its normalized variants for a locale"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		resources.LocaleHandler(locale.RegistryOf(env.Helper.Host())),
	)

	return srv
}
