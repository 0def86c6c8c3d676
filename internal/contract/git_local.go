package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// run executes a git command and returns its trimmed stdout output.
// The context is accepted for interface symmetry but not applied to the
// subprocess; invocations block until the external tool exits.
func (c *LocalGitClient) run(_ context.Context, repoPath string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return "", fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return "", fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckRepository implements the GitClient interface.
func (c *LocalGitClient) CheckRepository(ctx context.Context, repoPath string) error {
	if _, err := c.run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return fmt.Errorf("%w: %s", ErrNotRepository, repoPath)
	}
	return nil
}

// CurrentBranch implements the GitClient interface.
func (c *LocalGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	return c.run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
}

// ListBranches implements the GitClient interface.
func (c *LocalGitClient) ListBranches(ctx context.Context, repoPath string, includeRemotes bool) (string, error) {
	flag := "-l"
	if includeRemotes {
		flag = "-a"
	}
	return c.run(ctx, repoPath, "branch", flag)
}

// MergedInto implements the GitClient interface.
func (c *LocalGitClient) MergedInto(ctx context.Context, repoPath string, target string) (string, error) {
	return c.run(ctx, repoPath, "branch", "--merged", target)
}

// LastCommit implements the GitClient interface.
func (c *LocalGitClient) LastCommit(ctx context.Context, repoPath string, branch string) (string, error) {
	return c.run(ctx, repoPath, "log", "-1", "--format=%H|%aI|%an|%s", branch)
}

// CommitCount implements the GitClient interface.
func (c *LocalGitClient) CommitCount(ctx context.Context, repoPath string, branch string) (string, error) {
	return c.run(ctx, repoPath, "rev-list", "--count", branch)
}

// AheadBehind implements the GitClient interface.
func (c *LocalGitClient) AheadBehind(ctx context.Context, repoPath string, base string, branch string) (string, error) {
	return c.run(ctx, repoPath, "rev-list", "--left-right", "--count", base+"..."+branch)
}
