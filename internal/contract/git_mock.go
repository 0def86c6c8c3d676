package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is an autogenerated mock type for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// CheckRepository provides a mock function with given fields: ctx, repoPath
func (m *MockGitClient) CheckRepository(ctx context.Context, repoPath string) error {
	ret := m.Called(ctx, repoPath)
	return ret.Error(0)
}

// CurrentBranch provides a mock function with given fields: ctx, repoPath
func (m *MockGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	return ret.String(0), ret.Error(1)
}

// ListBranches provides a mock function with given fields: ctx, repoPath, includeRemotes
func (m *MockGitClient) ListBranches(ctx context.Context, repoPath string, includeRemotes bool) (string, error) {
	ret := m.Called(ctx, repoPath, includeRemotes)
	return ret.String(0), ret.Error(1)
}

// MergedInto provides a mock function with given fields: ctx, repoPath, target
func (m *MockGitClient) MergedInto(ctx context.Context, repoPath string, target string) (string, error) {
	ret := m.Called(ctx, repoPath, target)
	return ret.String(0), ret.Error(1)
}

// LastCommit provides a mock function with given fields: ctx, repoPath, branch
func (m *MockGitClient) LastCommit(ctx context.Context, repoPath string, branch string) (string, error) {
	ret := m.Called(ctx, repoPath, branch)
	return ret.String(0), ret.Error(1)
}

// CommitCount provides a mock function with given fields: ctx, repoPath, branch
func (m *MockGitClient) CommitCount(ctx context.Context, repoPath string, branch string) (string, error) {
	ret := m.Called(ctx, repoPath, branch)
	return ret.String(0), ret.Error(1)
}

// AheadBehind provides a mock function with given fields: ctx, repoPath, base, branch
func (m *MockGitClient) AheadBehind(ctx context.Context, repoPath string, base string, branch string) (string, error) {
	ret := m.Called(ctx, repoPath, base, branch)
	return ret.String(0), ret.Error(1)
}
