package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/huangsam/branchscope/core"
	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleAnalyzeBranches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		resolved, err := filepath.Abs(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid repo_path: %v", err)), nil
		}
		cfg.RepoPath = filepath.Clean(resolved)
		// The base path was verified at startup; an override must be too
		if err := h.client.CheckRepository(ctx, cfg.RepoPath); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid repo_path: %v", err)), nil
		}
	}
	if d := request.GetInt("stale_days", 0); d > 0 {
		cfg.StaleDays = d
	}
	cfg.IncludeRemotes = request.GetBool("include_remotes", cfg.IncludeRemotes)

	analysis := core.AnalyzeBranches(ctx, cfg, h.client)
	report := schema.BuildBranchReport(analysis)

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
