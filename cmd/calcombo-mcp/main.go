package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gongahkia/calcombo/datehelper"
	"github.com/gongahkia/calcombo/internal/config"
	mcpserver "github.com/gongahkia/calcombo/internal/mcp"
	"github.com/gongahkia/calcombo/internal/mcp/tools"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func newEnv(cfg *config.Config) *tools.Env {
	return &tools.Env{
		Helper:     datehelper.New(cfg.Host(), datehelper.WithFreeForm(cfg.FreeForm)),
		Locale:     cfg.Tag(),
		Separators: cfg.SeparatorRunes(),
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv := mcpserver.NewServer(version, newEnv(cfg))
	stdio := server.NewStdioServer(srv)

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
