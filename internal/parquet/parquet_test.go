package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/branchscope/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalysis() *schema.BranchAnalysis {
	generatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	main := &schema.BranchRecord{
		Name:           "main",
		LastCommitDate: generatedAt,
		LastCommitSHA:  "aaa111",
		LastCommitMsg:  "Initial commit",
		Author:         "Sam",
		CommitCount:    12,
		IsMerged:       true,
	}
	featureX := &schema.BranchRecord{
		Name:           "feature-x",
		LastCommitDate: generatedAt.AddDate(0, 0, -45),
		LastCommitSHA:  "bbb222",
		LastCommitMsg:  "Add feature x",
		Author:         "Alex",
		CommitCount:    3,
		IsMerged:       true,
		AheadBehind:    &schema.AheadBehind{0, 2},
	}
	return &schema.BranchAnalysis{
		Summary: schema.Summary{
			TotalBranches:  2,
			ActiveBranches: 1,
			StaleBranches:  1,
			MergedBranches: 2,
			CurrentBranch:  "main",
			DefaultBranch:  "main",
			StaleDays:      30,
		},
		GeneratedAt: generatedAt,
		All:         []*schema.BranchRecord{main, featureX},
		Stale:       []*schema.BranchRecord{featureX},
		Active:      []*schema.BranchRecord{main},
		Merged:      []*schema.BranchRecord{main, featureX},
	}
}

func TestBranchRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(BranchRow))
	require.NotNil(t, rowSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"rank",
		"name",
		"state",
		"last_commit_date",
		"last_commit_sha",
		"last_commit_msg",
		"author",
		"commit_count",
		"is_merged",
		"ahead",
		"behind",
		"days_since_update",
		"analyzed_at",
	}

	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertBranchRecords(t *testing.T) {
	rows := ConvertBranchRecords(testAnalysis())
	require.Len(t, rows, 2)

	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "main", rows[0].Name)
	assert.Equal(t, "active", rows[0].State)
	assert.Equal(t, int32(0), rows[0].DaysSinceUpdate)
	assert.Nil(t, rows[0].Ahead, "default branch should have no position pair")
	assert.Nil(t, rows[0].Behind, "default branch should have no position pair")

	assert.Equal(t, int32(2), rows[1].Rank)
	assert.Equal(t, "feature-x", rows[1].Name)
	assert.Equal(t, "stale", rows[1].State)
	assert.Equal(t, int32(45), rows[1].DaysSinceUpdate)
	require.NotNil(t, rows[1].Ahead)
	require.NotNil(t, rows[1].Behind)
	assert.Equal(t, int32(0), *rows[1].Ahead)
	assert.Equal(t, int32(2), *rows[1].Behind)
}

func TestWriteBranchRowsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "branches.parquet")

	data := ConvertBranchRecords(testAnalysis())
	require.NotEmpty(t, data)

	// Write data to Parquet file
	err := WriteBranchRowsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[BranchRow](file)
	defer reader.Close()

	readData := make([]BranchRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].Rank, readData[i].Rank, "Rank should match")
		assert.Equal(t, data[i].Name, readData[i].Name, "Name should match")
		assert.Equal(t, data[i].State, readData[i].State, "State should match")
		assert.Equal(t, data[i].CommitCount, readData[i].CommitCount, "CommitCount should match")
		assert.Equal(t, data[i].IsMerged, readData[i].IsMerged, "IsMerged should match")
		assert.WithinDuration(t, data[i].LastCommitDate, readData[i].LastCommitDate, time.Nanosecond, "LastCommitDate should match within nanosecond precision")
		assert.WithinDuration(t, data[i].AnalyzedAt, readData[i].AnalyzedAt, time.Nanosecond, "AnalyzedAt should match within nanosecond precision")

		// Check nullable position fields
		if data[i].Ahead == nil {
			assert.Nil(t, readData[i].Ahead, "Ahead should be nil")
			assert.Nil(t, readData[i].Behind, "Behind should be nil")
		} else {
			require.NotNil(t, readData[i].Ahead, "Ahead should not be nil")
			require.NotNil(t, readData[i].Behind, "Behind should not be nil")
			assert.Equal(t, *data[i].Ahead, *readData[i].Ahead, "Ahead should match")
			assert.Equal(t, *data[i].Behind, *readData[i].Behind, "Behind should match")
		}
	}
}

func TestWriteBranchRowsParquet_EmptyData(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_branches.parquet")

	// Write empty data
	err := WriteBranchRowsParquet([]BranchRow{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteBranchRowsParquet_InvalidPath(t *testing.T) {
	// Try to write to invalid path
	data := ConvertBranchRecords(testAnalysis())
	err := WriteBranchRowsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
