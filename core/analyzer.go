package core

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/schema"
)

// BranchAnalyzer walks the branches of one repository and assembles a
// BranchRecord per branch. All repository access goes through the injected
// GitClient, which keeps the analysis logic testable without a real repo.
type BranchAnalyzer struct {
	client         contract.GitClient
	repoPath       string
	staleDays      int
	includeRemotes bool

	currentBranch string
	defaultBranch string
}

// NewBranchAnalyzer builds an analyzer and resolves the current and default
// branch names once up front, so every later query works against a stable
// merge target.
func NewBranchAnalyzer(ctx context.Context, client contract.GitClient, cfg *contract.Config) *BranchAnalyzer {
	a := &BranchAnalyzer{
		client:         client,
		repoPath:       cfg.RepoPath,
		staleDays:      cfg.StaleDays,
		includeRemotes: cfg.IncludeRemotes,
	}
	a.currentBranch = text(client.CurrentBranch(ctx, a.repoPath))
	a.defaultBranch = detectDefaultBranch(text(client.ListBranches(ctx, a.repoPath, true)))
	return a
}

// Analyze inspects every listed branch and buckets the survivors by
// staleness and merge status. The reference time for all staleness math is
// captured once, so the stale and active buckets form an exact partition.
func (a *BranchAnalyzer) Analyze(ctx context.Context) *schema.BranchAnalysis {
	names := parseBranchListing(text(a.client.ListBranches(ctx, a.repoPath, a.includeRemotes)))

	records := make([]*schema.BranchRecord, 0, len(names))
	for _, name := range names {
		record, err := a.inspectBranch(ctx, name)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Cannot inspect branch %q", name), err)
			continue
		}
		if record == nil {
			continue // branch resolves to no commit
		}
		records = append(records, record)
	}

	// Newest first; ties keep listing order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].LastCommitDate.After(records[j].LastCommitDate)
	})

	now := time.Now()
	analysis := &schema.BranchAnalysis{
		GeneratedAt: now,
		All:         records,
		Stale:       []*schema.BranchRecord{},
		Active:      []*schema.BranchRecord{},
		Merged:      []*schema.BranchRecord{},
	}
	for _, record := range records {
		if record.State(now, a.staleDays) == schema.StaleState {
			analysis.Stale = append(analysis.Stale, record)
		} else {
			analysis.Active = append(analysis.Active, record)
		}
		if record.IsMerged {
			analysis.Merged = append(analysis.Merged, record)
		}
	}

	analysis.Summary = schema.Summary{
		TotalBranches:  len(records),
		ActiveBranches: len(analysis.Active),
		StaleBranches:  len(analysis.Stale),
		MergedBranches: len(analysis.Merged),
		CurrentBranch:  a.currentBranch,
		DefaultBranch:  a.defaultBranch,
		StaleDays:      a.staleDays,
	}
	return analysis
}

// CurrentBranch returns the checked-out branch name resolved at construction.
func (a *BranchAnalyzer) CurrentBranch() string { return a.currentBranch }

// DefaultBranch returns the merge target resolved at construction.
func (a *BranchAnalyzer) DefaultBranch() string { return a.defaultBranch }

// inspectBranch assembles the record for a single branch. A branch that no
// longer resolves to any commit yields (nil, nil); a branch whose metadata
// cannot be parsed yields an error. Either way the caller drops the branch.
func (a *BranchAnalyzer) inspectBranch(ctx context.Context, branch string) (*schema.BranchRecord, error) {
	// 1. Last commit metadata, pipe-delimited as sha|date|author|subject.
	// The subject is the final segment so embedded pipes survive.
	commitInfo := text(a.client.LastCommit(ctx, a.repoPath, branch))
	if commitInfo == "" {
		return nil, nil
	}
	parts := strings.SplitN(commitInfo, "|", 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("malformed log entry %q", commitInfo)
	}
	commitDate, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return nil, fmt.Errorf("parse commit date %q: %w", parts[1], err)
	}

	// 2. Total reachable commits; no output counts as zero
	commitCount := 0
	if countStr := text(a.client.CommitCount(ctx, a.repoPath, branch)); countStr != "" {
		commitCount, err = strconv.Atoi(countStr)
		if err != nil {
			return nil, fmt.Errorf("parse commit count %q: %w", countStr, err)
		}
	}

	// 3. Merge status against the default branch. The check is textual
	// containment per listing line, so e.g. "feature" also matches a line
	// naming "feature-x".
	mergedListing := text(a.client.MergedInto(ctx, a.repoPath, a.defaultBranch))
	isMerged := false
	for line := range strings.SplitSeq(mergedListing, "\n") {
		if strings.Contains(line, branch) {
			isMerged = true
			break
		}
	}

	record := &schema.BranchRecord{
		Name:           branch,
		LastCommitDate: commitDate,
		LastCommitSHA:  parts[0],
		LastCommitMsg:  parts[3],
		Author:         parts[2],
		CommitCount:    commitCount,
		IsMerged:       isMerged,
	}

	// 4. Position relative to the default branch, for every other branch
	if branch != a.defaultBranch {
		record.AheadBehind = a.aheadBehind(ctx, branch)
	}
	return record, nil
}

// aheadBehind resolves the commit counts separating a branch from the
// default branch. The client reports behind before ahead; the stored pair is
// (ahead, behind). Any failure or unexpected shape leaves the pair unset.
func (a *BranchAnalyzer) aheadBehind(ctx context.Context, branch string) *schema.AheadBehind {
	out := text(a.client.AheadBehind(ctx, a.repoPath, a.defaultBranch, branch))
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return nil
	}
	behind, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	ahead, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil
	}
	return &schema.AheadBehind{ahead, behind}
}

// detectDefaultBranch scans a full branch listing for a name containing
// "main" and falls back to "master". The match is a substring check, so a
// symbolic line like "origin/HEAD -> origin/main" also selects main.
func detectDefaultBranch(listing string) string {
	for line := range strings.SplitSeq(listing, "\n") {
		branch := strings.ReplaceAll(strings.TrimSpace(line), "* ", "")
		if strings.Contains(branch, "main") {
			return "main"
		}
	}
	return "master"
}

// parseBranchListing extracts branch names from a raw listing. The current
// branch marker and remote-tracking prefix are stripped, and symbolic
// reference lines (those containing "->") are dropped.
func parseBranchListing(listing string) []string {
	branches := []string{}
	for line := range strings.SplitSeq(listing, "\n") {
		name := strings.TrimSpace(line)
		name = strings.ReplaceAll(name, "* ", "")
		name = strings.ReplaceAll(name, "remotes/", "")
		if name != "" && !strings.Contains(name, "->") {
			branches = append(branches, name)
		}
	}
	return branches
}

// text unwraps a client query, degrading a failure to an empty string after
// logging it. Downstream parsing cannot tell a failed command apart from one
// that produced no output.
func text(out string, err error) string {
	if err != nil {
		contract.LogWarn("Cannot run git command", err)
		return ""
	}
	return out
}
