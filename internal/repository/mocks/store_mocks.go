// Package mocks provides hand-written testify mocks for the store
// interfaces, used by the usecase tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wimdy/wimdy/internal/domain"
)

// UserStore mock
type UserStore struct {
	mock.Mock
}

func (m *UserStore) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStore) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

// RepositoryStore mock
type RepositoryStore struct {
	mock.Mock
}

func (m *RepositoryStore) CreateRepository(ctx context.Context, repo *domain.Repository) error {
	args := m.Called(ctx, repo)
	return args.Error(0)
}

func (m *RepositoryStore) RepositoryBySlug(ctx context.Context, slug string) (*domain.Repository, error) {
	args := m.Called(ctx, slug)
	var repo *domain.Repository
	if v := args.Get(0); v != nil {
		repo = v.(*domain.Repository)
	}
	return repo, args.Error(1)
}

func (m *RepositoryStore) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *RepositoryStore) VisibleRepositories(ctx context.Context, viewerID *uint, page, perPage int) ([]domain.Repository, int64, error) {
	args := m.Called(ctx, viewerID, page, perPage)
	var repos []domain.Repository
	if v := args.Get(0); v != nil {
		repos = v.([]domain.Repository)
	}
	return repos, args.Get(1).(int64), args.Error(2)
}

func (m *RepositoryStore) RepositoriesByOwner(ctx context.Context, userID uint, limit int) ([]domain.Repository, error) {
	args := m.Called(ctx, userID, limit)
	var repos []domain.Repository
	if v := args.Get(0); v != nil {
		repos = v.([]domain.Repository)
	}
	return repos, args.Error(1)
}

func (m *RepositoryStore) TopPublicRepositories(ctx context.Context, limit int) ([]domain.Repository, error) {
	args := m.Called(ctx, limit)
	var repos []domain.Repository
	if v := args.Get(0); v != nil {
		repos = v.([]domain.Repository)
	}
	return repos, args.Error(1)
}

func (m *RepositoryStore) CountPublicRepositories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepositoryStore) UpdateRepository(ctx context.Context, repo *domain.Repository) error {
	args := m.Called(ctx, repo)
	return args.Error(0)
}

func (m *RepositoryStore) DeleteRepository(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// IssueStore mock
type IssueStore struct {
	mock.Mock
}

func (m *IssueStore) CreateIssue(ctx context.Context, issue *domain.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *IssueStore) IssueByID(ctx context.Context, repositoryID, id uint) (*domain.Issue, error) {
	args := m.Called(ctx, repositoryID, id)
	var issue *domain.Issue
	if v := args.Get(0); v != nil {
		issue = v.(*domain.Issue)
	}
	return issue, args.Error(1)
}

func (m *IssueStore) IssuesByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.Issue, int64, error) {
	args := m.Called(ctx, repositoryID, page, perPage)
	var issues []domain.Issue
	if v := args.Get(0); v != nil {
		issues = v.([]domain.Issue)
	}
	return issues, args.Get(1).(int64), args.Error(2)
}

func (m *IssueStore) CountIssues(ctx context.Context, repositoryID uint, status *domain.IssueStatus) (int64, error) {
	args := m.Called(ctx, repositoryID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *IssueStore) OpenIssuesForUser(ctx context.Context, userID uint, limit int) ([]domain.Issue, error) {
	args := m.Called(ctx, userID, limit)
	var issues []domain.Issue
	if v := args.Get(0); v != nil {
		issues = v.([]domain.Issue)
	}
	return issues, args.Error(1)
}

func (m *IssueStore) RecentOpenPublicIssues(ctx context.Context, limit int) ([]domain.Issue, error) {
	args := m.Called(ctx, limit)
	var issues []domain.Issue
	if v := args.Get(0); v != nil {
		issues = v.([]domain.Issue)
	}
	return issues, args.Error(1)
}

func (m *IssueStore) CountPublicIssues(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *IssueStore) UpdateIssue(ctx context.Context, issue *domain.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *IssueStore) DeleteIssue(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PullRequestStore mock
type PullRequestStore struct {
	mock.Mock
}

func (m *PullRequestStore) CreatePullRequest(ctx context.Context, pr *domain.PullRequest) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func (m *PullRequestStore) PullRequestByID(ctx context.Context, repositoryID, id uint) (*domain.PullRequest, error) {
	args := m.Called(ctx, repositoryID, id)
	var pr *domain.PullRequest
	if v := args.Get(0); v != nil {
		pr = v.(*domain.PullRequest)
	}
	return pr, args.Error(1)
}

func (m *PullRequestStore) PullRequestsByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.PullRequest, int64, error) {
	args := m.Called(ctx, repositoryID, page, perPage)
	var prs []domain.PullRequest
	if v := args.Get(0); v != nil {
		prs = v.([]domain.PullRequest)
	}
	return prs, args.Get(1).(int64), args.Error(2)
}

func (m *PullRequestStore) CountPullRequests(ctx context.Context, repositoryID uint, status *domain.PullRequestStatus) (int64, error) {
	args := m.Called(ctx, repositoryID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PullRequestStore) OpenPullRequestsByAuthor(ctx context.Context, userID uint, limit int) ([]domain.PullRequest, error) {
	args := m.Called(ctx, userID, limit)
	var prs []domain.PullRequest
	if v := args.Get(0); v != nil {
		prs = v.([]domain.PullRequest)
	}
	return prs, args.Error(1)
}

func (m *PullRequestStore) RecentOpenPublicPullRequests(ctx context.Context, limit int) ([]domain.PullRequest, error) {
	args := m.Called(ctx, limit)
	var prs []domain.PullRequest
	if v := args.Get(0); v != nil {
		prs = v.([]domain.PullRequest)
	}
	return prs, args.Error(1)
}

func (m *PullRequestStore) CountPublicPullRequests(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PullRequestStore) UpdatePullRequest(ctx context.Context, pr *domain.PullRequest) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func (m *PullRequestStore) DeletePullRequest(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PullRequestStore) LinkCommit(ctx context.Context, pullRequestID, commitID uint) error {
	args := m.Called(ctx, pullRequestID, commitID)
	return args.Error(0)
}

// CommitStore mock
type CommitStore struct {
	mock.Mock
}

func (m *CommitStore) CreateCommit(ctx context.Context, commit *domain.Commit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

func (m *CommitStore) CommitByHash(ctx context.Context, hash string) (*domain.Commit, error) {
	args := m.Called(ctx, hash)
	var commit *domain.Commit
	if v := args.Get(0); v != nil {
		commit = v.(*domain.Commit)
	}
	return commit, args.Error(1)
}

func (m *CommitStore) RecentCommitsByRepository(ctx context.Context, repositoryID uint, limit int) ([]domain.Commit, error) {
	args := m.Called(ctx, repositoryID, limit)
	var commits []domain.Commit
	if v := args.Get(0); v != nil {
		commits = v.([]domain.Commit)
	}
	return commits, args.Error(1)
}

func (m *CommitStore) RecentCommitsByRepositories(ctx context.Context, repositoryIDs []uint, limit int) ([]domain.Commit, error) {
	args := m.Called(ctx, repositoryIDs, limit)
	var commits []domain.Commit
	if v := args.Get(0); v != nil {
		commits = v.([]domain.Commit)
	}
	return commits, args.Error(1)
}

func (m *CommitStore) RecentPublicCommits(ctx context.Context, limit int) ([]domain.Commit, error) {
	args := m.Called(ctx, limit)
	var commits []domain.Commit
	if v := args.Get(0); v != nil {
		commits = v.([]domain.Commit)
	}
	return commits, args.Error(1)
}

func (m *CommitStore) CountPublicCommits(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
