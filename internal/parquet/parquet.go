// Package parquet provides data structures and functions for exporting branch
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/branchscope/schema"
	"github.com/parquet-go/parquet-go"
)

// BranchRow represents a single analyzed branch in a Parquet export.
type BranchRow struct {
	// Rank is the 1-based position in the newest-first ordering
	Rank int32 `parquet:"rank,snappy"`

	// Name is the branch name as listed, without any remote-tracking prefix
	Name string `parquet:"name,snappy"`

	// State is the staleness classification, active or stale
	State string `parquet:"state,snappy"`

	// LastCommitDate is the author date of the branch tip (stored as TIMESTAMP with nanosecond precision)
	LastCommitDate time.Time `parquet:"last_commit_date,snappy"`

	// LastCommitSHA is the full hash of the branch tip
	LastCommitSHA string `parquet:"last_commit_sha,snappy"`

	// LastCommitMsg is the untruncated subject line of the branch tip
	LastCommitMsg string `parquet:"last_commit_msg,snappy"`

	// Author is the author name of the branch tip
	Author string `parquet:"author,snappy"`

	// CommitCount is the number of commits reachable from the branch
	CommitCount int32 `parquet:"commit_count,snappy"`

	// IsMerged reports whether the branch is merged into the default branch
	IsMerged bool `parquet:"is_merged,snappy"`

	// Ahead is the number of commits unique to the branch (nullable)
	Ahead *int32 `parquet:"ahead,optional,snappy"`

	// Behind is the number of commits unique to the default branch (nullable)
	Behind *int32 `parquet:"behind,optional,snappy"`

	// DaysSinceUpdate is the branch age in whole days at analysis time
	DaysSinceUpdate int32 `parquet:"days_since_update,snappy"`

	// AnalyzedAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	AnalyzedAt time.Time `parquet:"analyzed_at,snappy"`
}

// ConvertBranchRecords converts a branch analysis to flat rows for Parquet
// export. Rows follow the analysis ordering, newest first.
func ConvertBranchRecords(analysis *schema.BranchAnalysis) []BranchRow {
	result := make([]BranchRow, len(analysis.All))
	for i, record := range analysis.All {
		row := BranchRow{
			Rank:            int32(i + 1),
			Name:            record.Name,
			State:           string(record.State(analysis.GeneratedAt, analysis.Summary.StaleDays)),
			LastCommitDate:  record.LastCommitDate,
			LastCommitSHA:   record.LastCommitSHA,
			LastCommitMsg:   record.LastCommitMsg,
			Author:          record.Author,
			CommitCount:     int32(record.CommitCount),
			IsMerged:        record.IsMerged,
			DaysSinceUpdate: int32(record.AgeDays(analysis.GeneratedAt)),
			AnalyzedAt:      analysis.GeneratedAt,
		}
		if record.AheadBehind != nil {
			ahead := int32(record.AheadBehind.Ahead())
			behind := int32(record.AheadBehind.Behind())
			row.Ahead = &ahead
			row.Behind = &behind
		}
		result[i] = row
	}
	return result
}

// WriteBranchRowsParquet writes a slice of BranchRow structs to a Parquet file.
func WriteBranchRowsParquet(data []BranchRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the BranchRow struct tags
	writer := parquet.NewGenericWriter[BranchRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
