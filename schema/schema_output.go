package schema

import "time"

// EnrichedBranchRecord adds the derived age to a BranchRecord.
type EnrichedBranchRecord struct {
	BranchRecord
	DaysSinceUpdate int `json:"days_since_update"` // Whole days since the last commit
}

// Summary aggregates counts for a single analysis run.
type Summary struct {
	TotalBranches  int    `json:"total_branches"`
	ActiveBranches int    `json:"active_branches"`
	StaleBranches  int    `json:"stale_branches"`
	MergedBranches int    `json:"merged_branches"`
	CurrentBranch  string `json:"current_branch"`
	DefaultBranch  string `json:"default_branch"`
	StaleDays      int    `json:"stale_threshold_days"`
}

// BranchAnalysis is the aggregate produced by one analysis run. The bucket
// slices share pointers with All. Stale and Active partition All exactly,
// while Merged is an independent overlay that may overlap both.
type BranchAnalysis struct {
	Summary     Summary
	GeneratedAt time.Time       // Reference time for all staleness math in this run
	All         []*BranchRecord // Every analyzed branch, newest first
	Stale       []*BranchRecord
	Active      []*BranchRecord
	Merged      []*BranchRecord
}

// BranchReport is the serializable form of a BranchAnalysis.
type BranchReport struct {
	Summary        Summary                `json:"summary"`
	StaleBranches  []EnrichedBranchRecord `json:"stale_branches"`
	ActiveBranches []EnrichedBranchRecord `json:"active_branches"`
	MergedBranches []EnrichedBranchRecord `json:"merged_branches"`
}

// EnrichBranches adds the derived age to a list of branch records.
func EnrichBranches(records []*BranchRecord, now time.Time) []EnrichedBranchRecord {
	output := make([]EnrichedBranchRecord, len(records))
	for i, b := range records {
		output[i] = EnrichedBranchRecord{
			BranchRecord:    *b,
			DaysSinceUpdate: b.AgeDays(now),
		}
	}
	return output
}

// BuildBranchReport expands a BranchAnalysis into its serializable form.
func BuildBranchReport(analysis *BranchAnalysis) *BranchReport {
	return &BranchReport{
		Summary:        analysis.Summary,
		StaleBranches:  EnrichBranches(analysis.Stale, analysis.GeneratedAt),
		ActiveBranches: EnrichBranches(analysis.Active, analysis.GeneratedAt),
		MergedBranches: EnrichBranches(analysis.Merged, analysis.GeneratedAt),
	}
}
