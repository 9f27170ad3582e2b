package dtos

import (
	"github.com/wimdy/wimdy/internal/domain"
)

// PagingInfo describes the page of a list response.
type PagingInfo struct {
	TotalCount  int64 `json:"total_count"`
	Page        int   `json:"page"`
	PerPage     int   `json:"per_page"`
	HasNextPage bool  `json:"has_next_page"`
}

// NewPagingInfo derives paging metadata from the request and total count.
func NewPagingInfo(page, perPage int, total int64) PagingInfo {
	if page < 1 {
		page = 1
	}
	return PagingInfo{
		TotalCount:  total,
		Page:        page,
		PerPage:     perPage,
		HasNextPage: int64(page*perPage) < total,
	}
}

// RepositoryCounts are the derived aggregates shown on a repository page.
// They are computed on read, never maintained incrementally.
type RepositoryCounts struct {
	Issues           int64 `json:"issues_count"`
	PullRequests     int64 `json:"pull_requests_count"`
	OpenIssues       int64 `json:"open_issues_count"`
	OpenPullRequests int64 `json:"open_pull_requests_count"`
}

// RepositoryList is the paginated public repository index.
type RepositoryList struct {
	Repositories []domain.Repository `json:"repositories"`
	PageInfo     PagingInfo          `json:"page_info"`
}

// RepositoryDetail is the repository page: the entity plus its recent
// commits and aggregate counts.
type RepositoryDetail struct {
	Repository    domain.Repository `json:"repository"`
	RecentCommits []domain.Commit   `json:"recent_commits"`
	Counts        RepositoryCounts  `json:"counts"`
}

// IssueList is a repository's paginated issue index.
type IssueList struct {
	Issues   []domain.Issue `json:"issues"`
	PageInfo PagingInfo     `json:"page_info"`
}

// PullRequestList is a repository's paginated pull request index.
type PullRequestList struct {
	PullRequests []domain.PullRequest `json:"pull_requests"`
	PageInfo     PagingInfo           `json:"page_info"`
}

// DashboardView is the signed-in activity feed.
type DashboardView struct {
	Repositories  []domain.Repository  `json:"repositories"`
	RecentCommits []domain.Commit      `json:"recent_commits"`
	PullRequests  []domain.PullRequest `json:"pull_requests"`
	Issues        []domain.Issue       `json:"issues"`
}

// HomeStats are the global counters on the public landing page. Private
// repositories and everything in them are excluded.
type HomeStats struct {
	Repositories int64 `json:"repositories"`
	Issues       int64 `json:"issues"`
	PullRequests int64 `json:"pull_requests"`
	Commits      int64 `json:"commits"`
}

// HomeView is the public landing page feed.
type HomeView struct {
	TrendingRepositories []domain.Repository  `json:"trending_repositories"`
	RecentCommits        []domain.Commit      `json:"recent_commits"`
	OpenPullRequests     []domain.PullRequest `json:"open_pull_requests"`
	RecentIssues         []domain.Issue       `json:"recent_issues"`
	Stats                HomeStats            `json:"stats"`
}
