// Package core has core logic for branch discovery, inspection and bucketing.
package core

import (
	"context"
	"time"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/internal/outwriter"
	"github.com/huangsam/branchscope/schema"
)

// ExecuteBranchAnalysis runs the branch analysis and renders the results in
// the configured output format. It serves as the main entry point for the CLI.
func ExecuteBranchAnalysis(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	start := time.Now()
	analysis := AnalyzeBranches(ctx, cfg, client)
	duration := time.Since(start)
	return outwriter.WriteBranchAnalysis(analysis, cfg, duration)
}

// AnalyzeBranches walks every branch of the configured repository and returns
// the bucketed analysis. It is shared by the CLI and MCP entry points.
func AnalyzeBranches(ctx context.Context, cfg *contract.Config, client contract.GitClient) *schema.BranchAnalysis {
	analyzer := NewBranchAnalyzer(ctx, client, cfg)
	return analyzer.Analyze(ctx)
}
