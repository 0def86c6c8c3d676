// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
)

// ErrNotRepository indicates that a path is not inside a Git repository.
var ErrNotRepository = errors.New("not a git repository")

// GitClient defines the necessary operations for branch analysis.
// This allows the core analysis logic to be tested without needing a real git executable.
// Every query returns the trimmed textual output of the underlying command;
// parsing stays in the analysis layer.
type GitClient interface {
	// --- Repository / Reference Resolution ---

	// CheckRepository verifies that the given path is inside a Git repository.
	CheckRepository(ctx context.Context, repoPath string) error

	// CurrentBranch returns the name of the currently checked-out branch.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// --- Branch Listings ---

	// ListBranches returns the raw branch listing, local-only or including remotes.
	ListBranches(ctx context.Context, repoPath string, includeRemotes bool) (string, error)

	// MergedInto returns the raw listing of branches already merged into the target branch.
	MergedInto(ctx context.Context, repoPath string, target string) (string, error)

	// --- Per-Branch Queries ---

	// LastCommit returns a single formatted log entry (hash|date|author|subject)
	// for the tip of the given branch.
	LastCommit(ctx context.Context, repoPath string, branch string) (string, error)

	// CommitCount returns the number of commits reachable from the branch tip.
	CommitCount(ctx context.Context, repoPath string, branch string) (string, error)

	// AheadBehind returns the left-right commit counts between base and branch,
	// in the order the underlying tool reports them (behind then ahead).
	AheadBehind(ctx context.Context, repoPath string, base string, branch string) (string, error)
}
