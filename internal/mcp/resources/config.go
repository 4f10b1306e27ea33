package resources

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gongahkia/calcombo/internal/config"
)

const ConfigURI = "calcombo://config"

// HandleConfig returns the current calcombo configuration as JSON.
func HandleConfig(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConfigURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
