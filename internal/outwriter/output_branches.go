package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/internal/parquet"
	"github.com/huangsam/branchscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeBranchJSONResults handles opening the file and calling the JSON writer.
func writeBranchJSONResults(analysis *schema.BranchAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, schema.BuildBranchReport(analysis))
	}, "Wrote JSON")
}

// writeBranchCSVResults handles opening the file and calling the CSV writer.
func writeBranchCSVResults(analysis *schema.BranchAnalysis, cfg *contract.Config) error {
	header := []string{
		"rank",
		"branch",
		"state",
		"last_commit_date",
		"last_commit_sha",
		"author",
		"commit_count",
		"merged",
		"ahead",
		"behind",
		"days_since_update",
		"last_commit_msg",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForBranches(csvWriter, analysis)
		})
	}, "Wrote CSV")
}

// writeCSVRowsForBranches writes one row per analyzed branch, newest first.
// Commit subjects are not truncated in CSV output.
func writeCSVRowsForBranches(w *csv.Writer, analysis *schema.BranchAnalysis) error {
	staleDays := analysis.Summary.StaleDays
	for i, branch := range analysis.All {
		ahead, behind := "", ""
		if branch.AheadBehind != nil {
			ahead = strconv.Itoa(branch.AheadBehind.Ahead())
			behind = strconv.Itoa(branch.AheadBehind.Behind())
		}
		rec := []string{
			strconv.Itoa(i + 1), // Rank
			branch.Name,
			string(branch.State(analysis.GeneratedAt, staleDays)),
			branch.LastCommitDate.Format(time.RFC3339),
			branch.LastCommitSHA,
			branch.Author,
			strconv.Itoa(branch.CommitCount),
			strconv.FormatBool(branch.IsMerged),
			ahead,
			behind,
			strconv.Itoa(branch.AgeDays(analysis.GeneratedAt)),
			branch.LastCommitMsg,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeBranchTable generates and writes the human-readable table.
func writeBranchTable(analysis *schema.BranchAnalysis, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Rank", "Branch", "State", "Age", "Commits", "Merged", "Ahead", "Behind", "Author"})

	// 2. Right-align rows so the numeric columns stay scannable
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxBranchWidth := getMaxTableBranchWidth(cfg)
	staleDays := analysis.Summary.StaleDays
	var data [][]string
	for i, branch := range analysis.All {
		ahead, behind := "-", "-"
		if branch.AheadBehind != nil {
			ahead = strconv.Itoa(branch.AheadBehind.Ahead())
			behind = strconv.Itoa(branch.AheadBehind.Behind())
		}
		data = append(data, []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateSubject(branch.Name, maxBranchWidth),
			string(branch.State(analysis.GeneratedAt, staleDays)),
			strconv.Itoa(branch.AgeDays(analysis.GeneratedAt)),
			strconv.Itoa(branch.CommitCount),
			mergeLabel(branch.IsMerged, cfg.UseColors),
			ahead,
			behind,
			branch.Author,
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := analysis.Summary
	if _, err := fmt.Fprintf(writer, "Showing %d branches (%d active, %d stale, %d merged)\n",
		summary.TotalBranches, summary.ActiveBranches, summary.StaleBranches, summary.MergedBranches); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with a %d day threshold\n",
		duration, summary.StaleDays); err != nil {
		return err
	}
	return nil
}

// writeBranchParquetResults persists the full branch set to a Parquet file.
// Parquet is a binary columnar format, so an explicit output file is required.
func writeBranchParquetResults(analysis *schema.BranchAnalysis, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}

	rows := parquet.ConvertBranchRecords(analysis)
	if err := parquet.WriteBranchRowsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
