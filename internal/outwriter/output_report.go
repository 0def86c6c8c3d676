package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/huangsam/branchscope/internal/contract"
	"github.com/huangsam/branchscope/schema"
)

const (
	// reportRuleWidth is the width of the horizontal rules in the report.
	reportRuleWidth = 70

	// maxSubjectWidth bounds commit subjects in the stale branch section.
	maxSubjectWidth = 50

	// maxListedBranches caps each recommendation list before the remainder
	// is collapsed into a count.
	maxListedBranches = 5

	// maxContributors caps the active contributor leaderboard.
	maxContributors = 5
)

// writeTextReport renders the fixed-layout report with a summary, the stale
// branch details and cleanup recommendations.
func writeTextReport(analysis *schema.BranchAnalysis, cfg *contract.Config, w io.Writer) error {
	report := schema.BuildBranchReport(analysis)
	summary := report.Summary

	rule := strings.Repeat("=", reportRuleWidth)
	sub := strings.Repeat("-", reportRuleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("  GIT BRANCH ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "%s\n", rule)

	fmt.Fprintf(&b, "\nCurrent Branch: %s\n", summary.CurrentBranch)
	fmt.Fprintf(&b, "Default Branch: %s\n", summary.DefaultBranch)
	fmt.Fprintf(&b, "Stale Threshold: %d days\n", summary.StaleDays)

	fmt.Fprintf(&b, "\n%s\nSUMMARY\n%s\n", sub, sub)
	fmt.Fprintf(&b, "Total Branches:   %d\n", summary.TotalBranches)
	fmt.Fprintf(&b, "Active Branches:  %d\n", summary.ActiveBranches)
	fmt.Fprintf(&b, "Stale Branches:   %d\n", summary.StaleBranches)
	fmt.Fprintf(&b, "Merged Branches:  %d\n", summary.MergedBranches)

	if len(report.StaleBranches) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sub)
		fmt.Fprintf(&b, "STALE BRANCHES (>%d days)\n", summary.StaleDays)
		fmt.Fprintf(&b, "%s\n", sub)

		for i := range report.StaleBranches {
			branch := &report.StaleBranches[i]
			fmt.Fprintf(&b, "\n• %s\n", branch.Name)
			fmt.Fprintf(&b, "  Last updated: %d days ago\n", branch.DaysSinceUpdate)
			fmt.Fprintf(&b, "  Author: %s\n", branch.Author)
			fmt.Fprintf(&b, "  Status: %s\n", mergeLabel(branch.IsMerged, cfg.UseColors))
			fmt.Fprintf(&b, "  Last commit: %s\n", contract.TruncateSubject(branch.LastCommitMsg, maxSubjectWidth))
			if branch.AheadBehind != nil {
				fmt.Fprintf(&b, "  Position: %d ahead, %d behind\n", branch.AheadBehind.Ahead(), branch.AheadBehind.Behind())
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\nRECOMMENDATIONS\n%s\n", sub, sub)

	deletable := []string{}
	unmerged := []string{}
	for i := range report.StaleBranches {
		if report.StaleBranches[i].IsMerged {
			deletable = append(deletable, report.StaleBranches[i].Name)
		} else {
			unmerged = append(unmerged, report.StaleBranches[i].Name)
		}
	}

	if len(deletable) > 0 {
		fmt.Fprintf(&b, "\n✓ %d branches can be safely deleted (stale + merged):\n", len(deletable))
		writeCappedNames(&b, deletable)
	}

	if len(unmerged) > 0 {
		fmt.Fprintf(&b, "\n⚠ %d stale branches are NOT merged:\n", len(unmerged))
		writeCappedNames(&b, unmerged)
		b.WriteString("\n  Review these branches before deleting!\n")
	}

	if len(report.ActiveBranches) > 0 {
		b.WriteString("\n📊 Most active contributors:\n")
		for _, c := range topContributors(report.ActiveBranches, maxContributors) {
			fmt.Fprintf(&b, "  - %s: %d active branch(es)\n", c.Author, c.Branches)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeCappedNames lists names up to the recommendation cap, then collapses
// the remainder into a count.
func writeCappedNames(b *strings.Builder, names []string) {
	for i, name := range names {
		if i == maxListedBranches {
			fmt.Fprintf(b, "  ... and %d more\n", len(names)-maxListedBranches)
			break
		}
		fmt.Fprintf(b, "  - %s\n", name)
	}
}

// mergeLabel picks the colored or plain merge marker.
func mergeLabel(merged, useColors bool) string {
	if useColors {
		return contract.GetColorMergeLabel(merged)
	}
	return contract.GetPlainMergeLabel(merged)
}

// contributorCount pairs an author with the number of active branches they own.
type contributorCount struct {
	Author   string
	Branches int
}

// topContributors counts active branches per author and returns the top n by
// count. Authors with equal counts keep their first-seen order.
func topContributors(active []schema.EnrichedBranchRecord, n int) []contributorCount {
	counts := map[string]int{}
	order := []string{}
	for i := range active {
		author := active[i].Author
		if _, seen := counts[author]; !seen {
			order = append(order, author)
		}
		counts[author]++
	}

	ranked := make([]contributorCount, len(order))
	for i, author := range order {
		ranked[i] = contributorCount{Author: author, Branches: counts[author]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Branches > ranked[j].Branches
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
