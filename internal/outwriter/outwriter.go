// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/schema"
	"golang.org/x/term"
)

// WriteBranchAnalysis renders a branch analysis, dispatching based on the
// output format configured.
func WriteBranchAnalysis(analysis *schema.BranchAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeBranchJSONResults(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeBranchCSVResults(analysis, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBranchTable(analysis, cfg, duration, w)
		}, "Wrote table")
	case schema.ParquetOut:
		if err := writeBranchParquetResults(analysis, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to the human-readable report
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextReport(analysis, cfg, w)
		}, "Wrote report")
	}
	return nil
}

// getMaxTableBranchWidth calculates the maximum width for branch names in
// table output based on terminal width.
func getMaxTableBranchWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, state, age, commits, merge
	// status, position) plus table borders, separators, and padding
	const baseWidth = 58

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable branch name width
		return 12
	}
	if available > 60 {
		// Maximum width to keep rows compact on wide terminals
		return 60
	}
	return available
}
