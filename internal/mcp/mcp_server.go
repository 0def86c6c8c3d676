// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Branchscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Branchscope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: analyze_branches ---
	s.AddTool(mcp.NewTool("analyze_branches",
		mcp.WithDescription("Analyze git branches and report which are stale, active or merged, with cleanup candidates."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the server's working directory if not specified).")),
		mcp.WithNumber("stale_days", mcp.Description("Consider branches stale after this many days. Defaults to 30.")),
		mcp.WithBoolean("include_remotes", mcp.Description("Include remote-tracking branches in the analysis.")),
	), h.handleAnalyzeBranches)

	return s
}

// StartMCPServer starts the Branchscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
