// Package schema has configs, models and global variables for all parts of branchscope.
package schema

import "time"

// AheadBehind holds the commit counts separating a branch from the default
// branch. Index 0 is the ahead count, index 1 is the behind count.
type AheadBehind [2]int

// Ahead returns the number of commits on the branch that the default branch lacks.
func (ab AheadBehind) Ahead() int { return ab[0] }

// Behind returns the number of commits on the default branch that the branch lacks.
func (ab AheadBehind) Behind() int { return ab[1] }

// BranchRecord represents the Git metadata collected for a single branch.
// It includes last commit info, activity counts, merge status, and the
// branch's position relative to the default branch.
type BranchRecord struct {
	Name           string       `json:"name"`             // Branch name without listing markers or remote prefixes
	LastCommitDate time.Time    `json:"last_commit_date"` // Author date of the most recent commit
	LastCommitSHA  string       `json:"last_commit_sha"`  // Full hash of the most recent commit
	LastCommitMsg  string       `json:"last_commit_msg"`  // Subject line of the most recent commit
	Author         string       `json:"author"`           // Author name of the most recent commit
	CommitCount    int          `json:"commit_count"`     // Total commits reachable from the branch tip
	IsMerged       bool         `json:"is_merged"`        // Whether the branch is merged into the default branch
	AheadBehind    *AheadBehind `json:"ahead_behind"`     // Position vs the default branch, nil when unknown
}

// AgeDays returns the whole days elapsed between the last commit and now.
func (b *BranchRecord) AgeDays(now time.Time) int {
	return int(now.Sub(b.LastCommitDate).Hours() / 24)
}

// State classifies the branch against the stale threshold. A branch is
// stale only when its age strictly exceeds the threshold.
func (b *BranchRecord) State(now time.Time, staleDays int) BranchState {
	if b.AgeDays(now) > staleDays {
		return StaleState
	}
	return ActiveState
}
